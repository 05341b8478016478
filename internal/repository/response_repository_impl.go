package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type responseRepository struct{}

func NewResponseRepository() domainRepo.ResponseRepository {
	return &responseRepository{}
}

func (r *responseRepository) Create(db *gorm.DB, response *entity.DonationResponse) error {
	return db.Create(response).Error
}

func (r *responseRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationResponse, error) {
	var response entity.DonationResponse
	err := db.Where("id = ?", id).First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByRequestAndDonor(db *gorm.DB, requestID, donorID uuid.UUID) (*entity.DonationResponse, error) {
	var response entity.DonationResponse
	err := db.Where("request_id = ? AND donor_id = ?", requestID, donorID).First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByRequestID(db *gorm.DB, requestID uuid.UUID) ([]entity.DonationResponse, error) {
	var responses []entity.DonationResponse
	err := db.Preload("Donor").
		Where("request_id = ?", requestID).
		Order("responded_at ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) FindDonorIDsByRequestID(db *gorm.DB, requestID uuid.UUID) ([]uuid.UUID, error) {
	var donorIDs []uuid.UUID
	err := db.Model(&entity.DonationResponse{}).
		Where("request_id = ?", requestID).
		Pluck("donor_id", &donorIDs).Error
	if err != nil {
		return nil, err
	}
	return donorIDs, nil
}

// TransitionStatus performs a compare-and-set status update. Returns
// affected rows: 1 = transitioned, 0 = response missing or not in `from`.
func (r *responseRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.ResponseStatus) (int64, error) {
	result := db.Model(&entity.DonationResponse{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *responseRepository) SetStatus(db *gorm.DB, id uuid.UUID, status entity.ResponseStatus) error {
	return db.Model(&entity.DonationResponse{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *responseRepository) DeleteByRequestID(db *gorm.DB, requestID uuid.UUID) error {
	return db.Where("request_id = ?", requestID).Delete(&entity.DonationResponse{}).Error
}
