package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestToResponse converts a BloodRequest entity to RequestResponse DTO
func RequestToResponse(request *entity.BloodRequest) *dto.RequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.RequestResponse{
		ID:               request.ID,
		HospitalID:       request.HospitalID,
		BloodType:        string(request.BloodType),
		Quantity:         request.Quantity,
		PatientCondition: request.PatientCondition,
		Status:           string(request.Status),
		CreatedAt:        request.CreatedAt,
		UpdatedAt:        request.UpdatedAt,
	}

	// Include hospital name if preloaded
	if request.Hospital.ID != uuid.Nil {
		response.HospitalName = request.Hospital.FullName
	}

	return response
}

// RequestsToResponses converts a slice of BloodRequest entities to RequestResponse DTOs
func RequestsToResponses(requests []entity.BloodRequest) []dto.RequestResponse {
	responses := make([]dto.RequestResponse, len(requests))
	for i, request := range requests {
		resp := RequestToResponse(&request)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
