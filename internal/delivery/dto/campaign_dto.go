package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCampaignRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	StartDate   string `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate     string `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
}

type UpdateCampaignRequest struct {
	Title       string `json:"title" validate:"omitempty,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	StartDate   string `json:"start_date" validate:"omitempty"`
	EndDate     string `json:"end_date" validate:"omitempty"`
}

// Response DTOs

type CampaignResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int                `json:"total"`
}

type SignupResponse struct {
	ID            uuid.UUID `json:"id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title,omitempty"`
	SignedUpAt    time.Time `json:"signed_up_at"`
}

type SignupListResponse struct {
	Signups []SignupResponse `json:"signups"`
	Total   int              `json:"total"`
}
