package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type volunteerSignupRepository struct{}

func NewVolunteerSignupRepository() domainRepo.VolunteerSignupRepository {
	return &volunteerSignupRepository{}
}

func (r *volunteerSignupRepository) Create(db *gorm.DB, signup *entity.VolunteerSignup) error {
	return db.Create(signup).Error
}

func (r *volunteerSignupRepository) FindByCampaignAndVolunteer(db *gorm.DB, campaignID, volunteerID uuid.UUID) (*entity.VolunteerSignup, error) {
	var signup entity.VolunteerSignup
	err := db.Where("campaign_id = ? AND volunteer_id = ?", campaignID, volunteerID).First(&signup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &signup, nil
}

func (r *volunteerSignupRepository) FindByVolunteerID(db *gorm.DB, volunteerID uuid.UUID) ([]entity.VolunteerSignup, error) {
	var signups []entity.VolunteerSignup
	err := db.Preload("Campaign").
		Where("volunteer_id = ?", volunteerID).
		Order("signed_up_at DESC").
		Find(&signups).Error
	if err != nil {
		return nil, err
	}
	return signups, nil
}

func (r *volunteerSignupRepository) DeleteByCampaignID(db *gorm.DB, campaignID uuid.UUID) error {
	return db.Where("campaign_id = ?", campaignID).Delete(&entity.VolunteerSignup{}).Error
}
