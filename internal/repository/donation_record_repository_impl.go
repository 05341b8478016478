package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donationRecordRepository struct{}

func NewDonationRecordRepository() domainRepo.DonationRecordRepository {
	return &donationRecordRepository{}
}

func (r *donationRecordRepository) Create(db *gorm.DB, record *entity.DonationRecord) error {
	return db.Create(record).Error
}

func (r *donationRecordRepository) FindByResponseID(db *gorm.DB, responseID uuid.UUID) (*entity.DonationRecord, error) {
	var record entity.DonationRecord
	err := db.Where("original_response_id = ?", responseID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *donationRecordRepository) FindCompletedByDonorID(db *gorm.DB, donorID uuid.UUID) ([]entity.DonationRecord, error) {
	var records []entity.DonationRecord
	err := db.Where("donor_id = ? AND status = ?", donorID, entity.RecordStatusCompleted).
		Order("donation_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
