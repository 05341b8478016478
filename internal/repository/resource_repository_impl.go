package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resourceRepository struct{}

func NewResourceRepository() domainRepo.ResourceRepository {
	return &resourceRepository{}
}

func (r *resourceRepository) Create(db *gorm.DB, resource *entity.EducationalResource) error {
	return db.Create(resource).Error
}

func (r *resourceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.EducationalResource, error) {
	var resource entity.EducationalResource
	err := db.Where("id = ?", id).First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) FindAll(db *gorm.DB, category string) ([]entity.EducationalResource, error) {
	var resources []entity.EducationalResource
	query := db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Update(db *gorm.DB, resource *entity.EducationalResource) error {
	return db.Save(resource).Error
}

func (r *resourceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.EducationalResource{})
	return result.RowsAffected, result.Error
}
