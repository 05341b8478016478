package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a blood-drive or education campaign volunteers can
// sign up for
type Campaign struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Signups []VolunteerSignup `gorm:"foreignKey:CampaignID" json:"signups,omitempty"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
