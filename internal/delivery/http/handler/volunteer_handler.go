package handler

import (
	"net/http"

	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VolunteerHandler struct {
	volunteerUsecase usecase.VolunteerUsecase
}

func NewVolunteerHandler(volunteerUsecase usecase.VolunteerUsecase) *VolunteerHandler {
	return &VolunteerHandler{volunteerUsecase: volunteerUsecase}
}

// Signup handles a volunteer signing up for a campaign
// @Summary Sign up for a campaign
// @Tags Volunteers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /campaigns/{id}/signup [post]
func (h *VolunteerHandler) Signup(w http.ResponseWriter, r *http.Request) {
	volunteerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	campaignID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campaign ID", nil)
		return
	}

	result, err := h.volunteerUsecase.SignupForCampaign(r.Context(), volunteerID, campaignID)
	if err != nil {
		switch err {
		case usecase.ErrCampaignNotFound:
			response.NotFound(w, "Campaign not found")
		case usecase.ErrAlreadySignedUp:
			response.Conflict(w, "You have already signed up for this campaign")
		default:
			response.InternalServerError(w, "Failed to sign up for campaign")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Signed up for campaign successfully", result)
}

// MySignups handles a volunteer listing their campaign signups
// @Summary List my campaign signups
// @Tags Volunteers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /volunteers/me/signups [get]
func (h *VolunteerHandler) MySignups(w http.ResponseWriter, r *http.Request) {
	volunteerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.volunteerUsecase.GetMySignups(r.Context(), volunteerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list signups")
		return
	}

	response.Success(w, http.StatusOK, "Signups retrieved successfully", result)
}
