package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateDonorProfileRequest struct {
	FullName           string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber        string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	BloodType          string `json:"blood_type" validate:"omitempty"`
	Location           string `json:"location" validate:"omitempty,min=2"`
	AvailabilityStatus string `json:"availability_status" validate:"omitempty,oneof=available unavailable"`
}

// Response DTOs

type DonationRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	HospitalName  string    `json:"hospital_name"`
	DonationDate  string    `json:"donation_date"`
	RecipientInfo string    `json:"recipient_info,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type DonationHistoryResponse struct {
	Records []DonationRecordResponse `json:"records"`
	Total   int                      `json:"total"`
}
