package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateResourceRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=255"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"required"`
}

type UpdateResourceRequest struct {
	Title    string `json:"title" validate:"omitempty,min=2,max=255"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"omitempty"`
}

// Response DTOs

type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Total     int                `json:"total"`
}
