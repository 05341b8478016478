package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(db *gorm.DB, campaign *entity.Campaign) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Campaign, error)
	FindByTitle(db *gorm.DB, title string) (*entity.Campaign, error)
	FindAll(db *gorm.DB) ([]entity.Campaign, error)
	Update(db *gorm.DB, campaign *entity.Campaign) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
