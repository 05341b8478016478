package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type campaignRepository struct{}

func NewCampaignRepository() domainRepo.CampaignRepository {
	return &campaignRepository{}
}

func (r *campaignRepository) Create(db *gorm.DB, campaign *entity.Campaign) error {
	return db.Create(campaign).Error
}

func (r *campaignRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Campaign, error) {
	var campaign entity.Campaign
	err := db.Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) FindByTitle(db *gorm.DB, title string) (*entity.Campaign, error) {
	var campaign entity.Campaign
	err := db.Where("title = ?", title).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) FindAll(db *gorm.DB) ([]entity.Campaign, error) {
	var campaigns []entity.Campaign
	err := db.Order("start_date ASC").Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(db *gorm.DB, campaign *entity.Campaign) error {
	return db.Omit("Signups").Save(campaign).Error
}

func (r *campaignRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Campaign{})
	return result.RowsAffected, result.Error
}
