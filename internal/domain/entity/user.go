package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityStatus represents whether a donor can currently be matched
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// ApplicationStatus tracks a volunteer's approval state
type ApplicationStatus string

const (
	ApplicationNotApplied ApplicationStatus = "not_applied"
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationApproved   ApplicationStatus = "approved"
	ApplicationRejected   ApplicationStatus = "rejected"
)

// User represents the centralized account table. Donors carry a blood type,
// availability and coordinates; hospitals carry coordinates resolved from
// their registered address; volunteers carry an application status.
type User struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID             int                `gorm:"not null;index" json:"role_id"`
	Email              string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password           string             `gorm:"type:text;not null" json:"-"`
	FullName           string             `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber        string             `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	BloodType          BloodType          `gorm:"type:varchar(5);index" json:"blood_type,omitempty"`
	DateOfBirth        *time.Time         `gorm:"type:date" json:"date_of_birth,omitempty"`
	Location           string             `gorm:"type:varchar(255)" json:"location,omitempty"`
	Lat                *float64           `json:"lat,omitempty"`
	Lon                *float64           `json:"lon,omitempty"`
	AvailabilityStatus AvailabilityStatus `gorm:"type:varchar(20);index" json:"availability_status,omitempty"`
	ApplicationStatus  ApplicationStatus  `gorm:"type:varchar(20)" json:"application_status,omitempty"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasCoordinates checks whether both latitude and longitude are set.
// Donors without coordinates are unmatchable.
func (u *User) HasCoordinates() bool {
	return u.Lat != nil && u.Lon != nil
}

// IsAvailable checks if a donor can be matched to new requests
func (u *User) IsAvailable() bool {
	return u.AvailabilityStatus == AvailabilityAvailable
}
