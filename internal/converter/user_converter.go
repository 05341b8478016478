package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		FullName:           user.FullName,
		Role:               roleName(user.RoleID),
		PhoneNumber:        user.PhoneNumber,
		BloodType:          string(user.BloodType),
		Location:           user.Location,
		AvailabilityStatus: string(user.AvailabilityStatus),
		ApplicationStatus:  string(user.ApplicationStatus),
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}

	if user.DateOfBirth != nil {
		response.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return response
}

func roleName(roleID int) string {
	switch roleID {
	case entity.RoleIDAdmin:
		return entity.RoleAdmin
	case entity.RoleIDDonor:
		return entity.RoleDonor
	case entity.RoleIDHospital:
		return entity.RoleHospital
	case entity.RoleIDVolunteer:
		return entity.RoleVolunteer
	default:
		return ""
	}
}
