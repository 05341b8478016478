package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(db *gorm.DB, response *entity.DonationResponse) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationResponse, error)
	FindByRequestAndDonor(db *gorm.DB, requestID, donorID uuid.UUID) (*entity.DonationResponse, error)
	FindByRequestID(db *gorm.DB, requestID uuid.UUID) ([]entity.DonationResponse, error)
	// FindDonorIDsByRequestID lists donors already engaged with a request,
	// used to exclude them from subsequent match passes.
	FindDonorIDsByRequestID(db *gorm.DB, requestID uuid.UUID) ([]uuid.UUID, error)
	// TransitionStatus atomically moves a response from one status to
	// another. Returns affected rows: 1 = transitioned, 0 = response was not
	// in the source status.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.ResponseStatus) (int64, error)
	SetStatus(db *gorm.DB, id uuid.UUID, status entity.ResponseStatus) error
	DeleteByRequestID(db *gorm.DB, requestID uuid.UUID) error
}
