package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// ResourceToResponse converts an EducationalResource entity to ResourceResponse DTO
func ResourceToResponse(resource *entity.EducationalResource) *dto.ResourceResponse {
	if resource == nil {
		return nil
	}

	return &dto.ResourceResponse{
		ID:        resource.ID,
		Title:     resource.Title,
		Category:  resource.Category,
		Content:   resource.Content,
		CreatedAt: resource.CreatedAt,
		UpdatedAt: resource.UpdatedAt,
	}
}

// ResourcesToResponses converts a slice of EducationalResource entities to ResourceResponse DTOs
func ResourcesToResponses(resources []entity.EducationalResource) []dto.ResourceResponse {
	responses := make([]dto.ResourceResponse, len(resources))
	for i, resource := range resources {
		resp := ResourceToResponse(&resource)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
