package entity

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerSignup links a volunteer to a campaign. One signup per
// (campaign, volunteer) pair.
type VolunteerSignup struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampaignID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_signups_campaign_volunteer" json:"campaign_id"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_signups_campaign_volunteer" json:"volunteer_id"`
	SignedUpAt  time.Time `gorm:"not null" json:"signed_up_at"`

	// Relationships
	Campaign  Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Volunteer User     `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
}

func (VolunteerSignup) TableName() string {
	return "volunteer_signups"
}
