package dto

import (
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/service"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRequestRequest struct {
	BloodType        string `json:"blood_type" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gte=1"`
	PatientCondition string `json:"patient_condition" validate:"omitempty,max=500"`
}

type UpdateRequestRequest struct {
	BloodType        string `json:"blood_type" validate:"omitempty"`
	Quantity         *int   `json:"quantity" validate:"omitempty,gte=1"`
	PatientCondition string `json:"patient_condition" validate:"omitempty,max=500"`
}

// Response DTOs

type RequestResponse struct {
	ID               uuid.UUID `json:"id"`
	HospitalID       uuid.UUID `json:"hospital_id"`
	HospitalName     string    `json:"hospital_name,omitempty"`
	BloodType        string    `json:"blood_type"`
	Quantity         int       `json:"quantity"`
	PatientCondition string    `json:"patient_condition,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

type MatchListResponse struct {
	RequestID uuid.UUID                `json:"request_id"`
	BloodType entity.BloodType         `json:"blood_type"`
	RadiusKM  float64                  `json:"radius_km"`
	Matches   []service.MatchCandidate `json:"matches"`
	Total     int                      `json:"total"`
}
