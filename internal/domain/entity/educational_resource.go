package entity

import (
	"time"

	"github.com/google/uuid"
)

// EducationalResource is a published article on blood donation or sickle
// cell education
type EducationalResource struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EducationalResource) TableName() string {
	return "educational_resources"
}
