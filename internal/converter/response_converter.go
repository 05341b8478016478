package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
)

// ResponseToSummary converts a DonationResponse entity to ResponseSummary
// DTO. The confirmation token is deliberately never included.
func ResponseToSummary(response *entity.DonationResponse) *dto.ResponseSummary {
	if response == nil {
		return nil
	}

	summary := &dto.ResponseSummary{
		ID:          response.ID,
		RequestID:   response.RequestID,
		DonorID:     response.DonorID,
		Status:      string(response.Status),
		RespondedAt: response.RespondedAt,
	}

	// Include donor contact info if preloaded
	if response.Donor.ID != uuid.Nil {
		summary.DonorName = response.Donor.FullName
		summary.DonorPhone = response.Donor.PhoneNumber
	}

	return summary
}

// ResponsesToResponses converts a slice of DonationResponse entities to ResponseSummary DTOs
func ResponsesToResponses(responses []entity.DonationResponse) []dto.ResponseSummary {
	summaries := make([]dto.ResponseSummary, len(responses))
	for i, response := range responses {
		summary := ResponseToSummary(&response)
		if summary != nil {
			summaries[i] = *summary
		}
	}
	return summaries
}
