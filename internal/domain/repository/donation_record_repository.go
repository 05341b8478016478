package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationRecordRepository interface {
	Create(db *gorm.DB, record *entity.DonationRecord) error
	FindByResponseID(db *gorm.DB, responseID uuid.UUID) (*entity.DonationRecord, error)
	FindCompletedByDonorID(db *gorm.DB, donorID uuid.UUID) ([]entity.DonationRecord, error)
}
