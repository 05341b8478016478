package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(db *gorm.DB, resource *entity.EducationalResource) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.EducationalResource, error)
	FindAll(db *gorm.DB, category string) ([]entity.EducationalResource, error)
	Update(db *gorm.DB, resource *entity.EducationalResource) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
