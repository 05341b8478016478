package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SubmitResponseRequest struct {
	// A donor either commits to donate or declines the request outright.
	CommitmentStatus string `json:"commitment_status" validate:"omitempty,oneof=committed declined"`
}

type ConfirmDonationRequest struct {
	ConfirmationToken string `json:"confirmation_token" validate:"required,len=4"`
	DonationDate      string `json:"donation_date" validate:"required"` // Format: YYYY-MM-DD
	RecipientInfo     string `json:"recipient_info" validate:"omitempty,max=500"`
}

// Response DTOs

// SubmitResponseResult is returned to the submitting donor. The
// confirmation token appears only here; it is never listed back out.
type SubmitResponseResult struct {
	ResponseID        uuid.UUID `json:"response_id"`
	Status            string    `json:"status"`
	ConfirmationToken *string   `json:"confirmation_token,omitempty"`
	RespondedAt       time.Time `json:"responded_at"`
}

type ResponseSummary struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	DonorID       uuid.UUID `json:"donor_id"`
	DonorName     string    `json:"donor_name,omitempty"`
	DonorPhone    string    `json:"donor_phone,omitempty"`
	Status        string    `json:"status"`
	RespondedAt   time.Time `json:"responded_at"`
}

type ResponseListResponse struct {
	Responses []ResponseSummary `json:"responses"`
	Total     int               `json:"total"`
}
