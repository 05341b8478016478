package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a blood request
type RequestStatus string

const (
	RequestStatusActive    RequestStatus = "active"
	RequestStatusFulfilled RequestStatus = "fulfilled"
)

// BloodRequest represents a hospital's request for blood of a given type.
// Status only moves forward: active -> fulfilled.
type BloodRequest struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"hospital_id"`
	BloodType        BloodType     `gorm:"type:varchar(5);not null;index" json:"blood_type"`
	Quantity         int           `gorm:"not null" json:"quantity"`
	PatientCondition string        `gorm:"type:text" json:"patient_condition"`
	Status           RequestStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital  User               `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Responses []DonationResponse `gorm:"foreignKey:RequestID" json:"responses,omitempty"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// IsActive checks if the request still accepts donor responses
func (r *BloodRequest) IsActive() bool {
	return r.Status == RequestStatusActive
}

// IsFulfilled checks if a donation was confirmed against this request
func (r *BloodRequest) IsFulfilled() bool {
	return r.Status == RequestStatusFulfilled
}
