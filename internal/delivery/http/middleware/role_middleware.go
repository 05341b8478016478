package middleware

import (
	"net/http"

	"lifelink/internal/domain/entity"
	"lifelink/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDonor is a convenience middleware for donor-only endpoints
func RequireDonor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDonor)(next)
}

// RequireHospital is a convenience middleware for hospital-only endpoints
func RequireHospital(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDHospital)(next)
}

// RequireVolunteer is a convenience middleware for volunteer-only endpoints
func RequireVolunteer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDVolunteer)(next)
}

// RequireHospitalOrAdmin is a convenience middleware for hospital or admin endpoints
func RequireHospitalOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDHospital, entity.RoleIDAdmin)(next)
}
