package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(db *gorm.DB, request *entity.BloodRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error)
	FindAll(db *gorm.DB, filter *entity.RequestFilter) ([]entity.BloodRequest, error)
	Update(db *gorm.DB, request *entity.BloodRequest) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
