package handler

import (
	"encoding/json"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/domain/entity"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ResponseHandler struct {
	workflowUsecase usecase.ResponseWorkflowUsecase
	validator       *validator.CustomValidator
}

func NewResponseHandler(workflowUsecase usecase.ResponseWorkflowUsecase, validator *validator.CustomValidator) *ResponseHandler {
	return &ResponseHandler{
		workflowUsecase: workflowUsecase,
		validator:       validator,
	}
}

// Respond handles a donor responding to a blood request
// @Summary Respond to a blood request
// @Description Commit to donate (receives a confirmation token) or decline. One response per donor per request.
// @Tags Responses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.SubmitResponseRequest true "Submit Response"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /requests/{id}/respond [post]
func (h *ResponseHandler) Respond(w http.ResponseWriter, r *http.Request) {
	donorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	commitment := entity.ResponseStatus(req.CommitmentStatus)
	if req.CommitmentStatus == "" {
		commitment = entity.ResponseStatusCommitted
	}

	result, err := h.workflowUsecase.SubmitResponse(r.Context(), donorID, requestID, commitment)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrRequestNotActive:
			response.Conflict(w, "Blood request is no longer active")
		case usecase.ErrAlreadyResponded:
			response.Conflict(w, "You have already responded to this request")
		case usecase.ErrInvalidCommitment:
			response.Error(w, http.StatusBadRequest, "Commitment status must be committed or declined", nil)
		default:
			response.InternalServerError(w, "Failed to submit response")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Response submitted successfully", result)
}

// ListForRequest handles listing all responses to a request
// @Summary List responses for a blood request
// @Tags Responses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/responses [get]
func (h *ResponseHandler) ListForRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	result, err := h.workflowUsecase.GetResponsesForRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to list responses")
		}
		return
	}

	response.Success(w, http.StatusOK, "Responses retrieved successfully", result)
}

// MarkInProgress handles the hospital moving a committed response to in progress
// @Summary Mark a response as in progress
// @Description Transition a committed response once an appointment is agreed. Repeating the call is a no-op.
// @Tags Responses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /responses/{id}/in-progress [patch]
func (h *ResponseHandler) MarkInProgress(w http.ResponseWriter, r *http.Request) {
	responseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid response ID", nil)
		return
	}

	if err := h.workflowUsecase.MarkInProgress(r.Context(), responseID); err != nil {
		switch err {
		case usecase.ErrResponseNotFound:
			response.NotFound(w, "Donation response not found")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Response status does not allow this transition")
		default:
			response.InternalServerError(w, "Failed to update response")
		}
		return
	}

	response.Success(w, http.StatusOK, "Response marked as in progress", nil)
}

// Confirm handles the hospital confirming a completed donation
// @Summary Confirm a donation
// @Description Validate the donor's confirmation token, record the donation and fulfill the request
// @Tags Responses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Response ID"
// @Param request body dto.ConfirmDonationRequest true "Confirm Donation"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /responses/{id}/confirm [post]
func (h *ResponseHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	responseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid response ID", nil)
		return
	}

	var req dto.ConfirmDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.workflowUsecase.ConfirmDonation(r.Context(), responseID, hospitalID, &req); err != nil {
		switch err {
		case usecase.ErrResponseNotFound:
			response.NotFound(w, "Donation response not found")
		case usecase.ErrInvalidConfirmationToken:
			response.Unauthorized(w, "Invalid confirmation token")
		case usecase.ErrRecordAlreadyExists:
			response.Conflict(w, "A donation record for this response already exists")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to confirm donation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donation confirmed successfully", nil)
}
