package handler

import (
	"encoding/json"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/infrastructure/geocoding"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// GetHistory handles a donor viewing their completed donations
// @Summary Get donation history
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /donors/me/history [get]
func (h *DonorHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	donorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.donorUsecase.GetDonationHistory(r.Context(), donorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get donation history")
		return
	}

	response.Success(w, http.StatusOK, "Donation history retrieved successfully", result)
}

// GetProfile handles a donor viewing their own profile
// @Summary Get donor profile
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /donors/me [get]
func (h *DonorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	donorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.donorUsecase.GetProfile(r.Context(), donorID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Donor not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", result)
}

// UpdateProfile handles a donor updating availability, contact or location
// @Summary Update donor profile
// @Description Partial update. A changed location is re-geocoded and must resolve.
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDonorProfileRequest true "Update Profile"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /donors/me [put]
func (h *DonorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	donorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDonorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.donorUsecase.UpdateProfile(r.Context(), donorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrInvalidAvailability:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrLocationUnresolvable:
			response.UnprocessableEntity(w, "Location could not be resolved to coordinates")
		case geocoding.ErrServiceUnavailable:
			response.Error(w, http.StatusServiceUnavailable, "Geocoding service unavailable, try again later", nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", result)
}
