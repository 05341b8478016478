package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterDonorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	BloodType   string `json:"blood_type" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Location    string `json:"location" validate:"required,min=2"`
}

type RegisterHospitalRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	HospitalName string `json:"hospital_name" validate:"required,min=2"`
	PhoneNumber  string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Location     string `json:"location" validate:"required,min=2"`
}

type RegisterVolunteerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Role               string    `json:"role"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	BloodType          string    `json:"blood_type,omitempty"`
	DateOfBirth        string    `json:"date_of_birth,omitempty"`
	Location           string    `json:"location,omitempty"`
	AvailabilityStatus string    `json:"availability_status,omitempty"`
	ApplicationStatus  string    `json:"application_status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
