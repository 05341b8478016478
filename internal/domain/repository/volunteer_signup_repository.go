package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolunteerSignupRepository interface {
	Create(db *gorm.DB, signup *entity.VolunteerSignup) error
	FindByCampaignAndVolunteer(db *gorm.DB, campaignID, volunteerID uuid.UUID) (*entity.VolunteerSignup, error)
	FindByVolunteerID(db *gorm.DB, volunteerID uuid.UUID) ([]entity.VolunteerSignup, error)
	DeleteByCampaignID(db *gorm.DB, campaignID uuid.UUID) error
}
