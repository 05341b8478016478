package repository

import (
	"lifelink/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(db *gorm.DB, role *entity.Role) error
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
}
