package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	// FindAvailableDonors returns available donor accounts whose blood type
	// is in bloodTypes, excluding the given donor ids.
	FindAvailableDonors(db *gorm.DB, bloodTypes []entity.BloodType, exclude []uuid.UUID) ([]entity.User, error)
}
