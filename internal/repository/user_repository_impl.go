package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Omit("Role").Save(user).Error
}

func (r *userRepository) FindAvailableDonors(db *gorm.DB, bloodTypes []entity.BloodType, exclude []uuid.UUID) ([]entity.User, error) {
	var donors []entity.User
	query := db.
		Where("role_id = ?", entity.RoleIDDonor).
		Where("availability_status = ?", entity.AvailabilityAvailable).
		Where("blood_type IN ?", bloodTypes)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	if err := query.Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}
