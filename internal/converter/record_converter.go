package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// RecordToResponse converts a DonationRecord entity to DonationRecordResponse DTO
func RecordToResponse(record *entity.DonationRecord) *dto.DonationRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.DonationRecordResponse{
		ID:            record.ID,
		HospitalName:  record.HospitalName,
		DonationDate:  record.DonationDate.Format("2006-01-02"),
		RecipientInfo: record.RecipientInfo,
		Status:        string(record.Status),
		CreatedAt:     record.CreatedAt,
	}
}

// RecordsToResponses converts a slice of DonationRecord entities to DonationRecordResponse DTOs
func RecordsToResponses(records []entity.DonationRecord) []dto.DonationRecordResponse {
	responses := make([]dto.DonationRecordResponse, len(records))
	for i, record := range records {
		resp := RecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
