package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResponseStatus represents a donor's commitment state for a request.
// Committed responses advance monotonically: committed -> in progress ->
// completed. Declined is terminal and never carries a token.
type ResponseStatus string

const (
	ResponseStatusCommitted  ResponseStatus = "committed"
	ResponseStatusInProgress ResponseStatus = "in progress"
	ResponseStatusCompleted  ResponseStatus = "completed"
	ResponseStatusDeclined   ResponseStatus = "declined"
)

// DonationResponse links a donor to a blood request. At most one response
// exists per (request, donor) pair, backed by a unique index.
type DonationResponse struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RequestID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_responses_request_donor" json:"request_id"`
	DonorID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_responses_request_donor" json:"donor_id"`
	Status            ResponseStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ConfirmationToken *string        `gorm:"type:varchar(4)" json:"-"`
	RespondedAt       time.Time      `gorm:"not null" json:"responded_at"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Request BloodRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Donor   User         `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (DonationResponse) TableName() string {
	return "donation_responses"
}

// IsCommitted checks if the response awaits the hospital's appointment step
func (r *DonationResponse) IsCommitted() bool {
	return r.Status == ResponseStatusCommitted
}

// IsInProgress checks if the hospital has scheduled the donation
func (r *DonationResponse) IsInProgress() bool {
	return r.Status == ResponseStatusInProgress
}

// IsCompleted checks if the donation was confirmed
func (r *DonationResponse) IsCompleted() bool {
	return r.Status == ResponseStatusCompleted
}

// TokenMatches compares a supplied confirmation token against the stored
// one. A response without a token never matches.
func (r *DonationResponse) TokenMatches(token string) bool {
	return r.ConfirmationToken != nil && *r.ConfirmationToken == token
}
