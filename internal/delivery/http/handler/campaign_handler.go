package handler

import (
	"encoding/json"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CampaignHandler struct {
	campaignUsecase usecase.CampaignUsecase
	validator       *validator.CustomValidator
}

func NewCampaignHandler(campaignUsecase usecase.CampaignUsecase, validator *validator.CustomValidator) *CampaignHandler {
	return &CampaignHandler{
		campaignUsecase: campaignUsecase,
		validator:       validator,
	}
}

// Create handles campaign creation by an admin
// @Summary Create a campaign
// @Tags Campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCampaignRequest true "Create Campaign"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.campaignUsecase.CreateCampaign(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCampaignTitleTaken:
			response.Conflict(w, "A campaign with this title already exists")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create campaign")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Campaign created successfully", result)
}

// List handles listing all campaigns
// @Summary List campaigns
// @Tags Campaigns
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.campaignUsecase.ListCampaigns(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list campaigns")
		return
	}

	response.Success(w, http.StatusOK, "Campaigns retrieved successfully", result)
}

// Get handles fetching a single campaign
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campaign ID", nil)
		return
	}

	result, err := h.campaignUsecase.GetCampaign(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCampaignNotFound:
			response.NotFound(w, "Campaign not found")
		default:
			response.InternalServerError(w, "Failed to get campaign")
		}
		return
	}

	response.Success(w, http.StatusOK, "Campaign retrieved successfully", result)
}

// Update handles editing a campaign
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campaign ID", nil)
		return
	}

	var req dto.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.campaignUsecase.UpdateCampaign(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCampaignNotFound:
			response.NotFound(w, "Campaign not found")
		case usecase.ErrCampaignTitleTaken:
			response.Conflict(w, "A campaign with this title already exists")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update campaign")
		}
		return
	}

	response.Success(w, http.StatusOK, "Campaign updated successfully", result)
}

// Delete handles removing a campaign and its signups
// @Summary Delete a campaign
// @Tags Campaigns
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campaign ID", nil)
		return
	}

	if err := h.campaignUsecase.DeleteCampaign(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrCampaignNotFound:
			response.NotFound(w, "Campaign not found")
		default:
			response.InternalServerError(w, "Failed to delete campaign")
		}
		return
	}

	response.Success(w, http.StatusOK, "Campaign and all associated signups deleted", nil)
}
