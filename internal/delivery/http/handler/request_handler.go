package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/domain/entity"
	"lifelink/internal/service"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RequestHandler struct {
	requestUsecase usecase.RequestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.RequestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// Create handles blood request creation by a hospital
// @Summary Create a blood request
// @Description Create a request and run an immediate match pass around the hospital
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.requestUsecase.CreateRequest(r.Context(), hospitalID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create blood request")
		return
	}

	response.Success(w, http.StatusCreated, "Blood request created successfully", result)
}

// List handles browsing blood requests with optional filters
// @Summary List blood requests
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search in patient condition"
// @Param blood_type query string false "Filter by blood type"
// @Param status query string false "Filter by status (active, fulfilled)"
// @Param quantity_min query int false "Minimum quantity"
// @Param quantity_max query int false "Maximum quantity"
// @Param limit query int false "Page size (default 10)"
// @Param skip query int false "Offset"
// @Success 200 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &entity.RequestFilter{
		Search:    query.Get("search"),
		BloodType: query.Get("blood_type"),
		Status:    query.Get("status"),
	}

	if v := query.Get("quantity_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.QuantityMin = &n
		}
	}
	if v := query.Get("quantity_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.QuantityMax = &n
		}
	}

	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	filter.Skip, _ = strconv.Atoi(query.Get("skip"))

	result, err := h.requestUsecase.ListRequests(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list blood requests")
		return
	}

	response.Success(w, http.StatusOK, "Blood requests retrieved successfully", result)
}

// Get handles fetching a single blood request
// @Summary Get a blood request
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	result, err := h.requestUsecase.GetRequest(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to get blood request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood request retrieved successfully", result)
}

// Update handles editing a blood request
// @Summary Update a blood request
// @Description Update quantity, blood type or patient condition; status is managed by the donation workflow
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [put]
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.UpdateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.requestUsecase.UpdateRequest(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to update blood request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood request updated successfully", result)
}

// Delete handles removing a blood request and its responses
// @Summary Delete a blood request
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	if err := h.requestUsecase.DeleteRequest(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to delete blood request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood request and all associated responses deleted", nil)
}

// FindMatches handles on-demand donor matching for a request
// @Summary Find compatible donors near the issuing hospital
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Param radius_km query number false "Search radius in kilometers (default 50)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /requests/{id}/matches [get]
func (h *RequestHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	radiusKM := 0.0
	if v := r.URL.Query().Get("radius_km"); v != "" {
		radiusKM, err = strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid radius", nil)
			return
		}
	}

	result, err := h.requestUsecase.FindMatchesForRequest(r.Context(), id, radiusKM)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrHospitalUnlocated:
			response.UnprocessableEntity(w, "Hospital location has no coordinates, matching unavailable")
		case service.ErrInvalidRadius:
			response.Error(w, http.StatusBadRequest, "Search radius out of range", nil)
		default:
			response.InternalServerError(w, "Failed to find matching donors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Matching donors retrieved successfully", result)
}
