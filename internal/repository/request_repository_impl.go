package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type requestRepository struct{}

func NewRequestRepository() domainRepo.RequestRepository {
	return &requestRepository{}
}

func (r *requestRepository) Create(db *gorm.DB, request *entity.BloodRequest) error {
	return db.Create(request).Error
}

func (r *requestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	err := db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindAll(db *gorm.DB, filter *entity.RequestFilter) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	query := db.Model(&entity.BloodRequest{})

	if filter != nil {
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("blood_type ILIKE ? OR status ILIKE ?", pattern, pattern)
		}
		if filter.BloodType != "" {
			query = query.Where("blood_type = ?", entity.NormalizeBloodType(filter.BloodType))
		}
		if filter.Status != "" {
			query = query.Where("LOWER(status) = LOWER(?)", filter.Status)
		}
		if filter.QuantityMin != nil {
			query = query.Where("quantity >= ?", *filter.QuantityMin)
		}
		if filter.QuantityMax != nil {
			query = query.Where("quantity <= ?", *filter.QuantityMax)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		if filter.Skip > 0 {
			query = query.Offset(filter.Skip)
		}
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) Update(db *gorm.DB, request *entity.BloodRequest) error {
	return db.Omit("Hospital", "Responses").Save(request).Error
}

func (r *requestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error {
	return db.Model(&entity.BloodRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *requestRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.BloodRequest{})
	return result.RowsAffected, result.Error
}
