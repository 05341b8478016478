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

type ResourceHandler struct {
	resourceUsecase usecase.ResourceUsecase
	validator       *validator.CustomValidator
}

func NewResourceHandler(resourceUsecase usecase.ResourceUsecase, validator *validator.CustomValidator) *ResourceHandler {
	return &ResourceHandler{
		resourceUsecase: resourceUsecase,
		validator:       validator,
	}
}

// Create handles publishing an educational resource
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.resourceUsecase.CreateResource(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create resource")
		return
	}

	response.Success(w, http.StatusCreated, "Resource created successfully", result)
}

// List handles browsing educational resources, optionally by category
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result, err := h.resourceUsecase.ListResources(r.Context(), category)
	if err != nil {
		response.InternalServerError(w, "Failed to list resources")
		return
	}

	response.Success(w, http.StatusOK, "Resources retrieved successfully", result)
}

// Get handles fetching a single resource
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resource ID", nil)
		return
	}

	result, err := h.resourceUsecase.GetResource(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrResourceNotFound:
			response.NotFound(w, "Resource not found")
		default:
			response.InternalServerError(w, "Failed to get resource")
		}
		return
	}

	response.Success(w, http.StatusOK, "Resource retrieved successfully", result)
}

// Update handles editing a resource
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resource ID", nil)
		return
	}

	var req dto.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.resourceUsecase.UpdateResource(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrResourceNotFound:
			response.NotFound(w, "Resource not found")
		default:
			response.InternalServerError(w, "Failed to update resource")
		}
		return
	}

	response.Success(w, http.StatusOK, "Resource updated successfully", result)
}

// Delete handles removing a resource
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid resource ID", nil)
		return
	}

	if err := h.resourceUsecase.DeleteResource(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrResourceNotFound:
			response.NotFound(w, "Resource not found")
		default:
			response.InternalServerError(w, "Failed to delete resource")
		}
		return
	}

	response.Success(w, http.StatusOK, "Resource deleted successfully", nil)
}
