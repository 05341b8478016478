package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the terminal state of a donation record
type RecordStatus string

const RecordStatusCompleted RecordStatus = "Completed"

// DonationRecord is the immutable history entry created when a hospital
// confirms a donation. Exactly one record may exist per response, backed by
// a unique index on OriginalResponseID.
type DonationRecord struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DonorID            uuid.UUID    `gorm:"type:uuid;not null;index" json:"donor_id"`
	HospitalID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"hospital_id"`
	HospitalName       string       `gorm:"type:varchar(255);not null" json:"hospital_name"`
	DonationDate       time.Time    `gorm:"type:date;not null" json:"donation_date"`
	RecipientInfo      string       `gorm:"type:text" json:"recipient_info"`
	Status             RecordStatus `gorm:"type:varchar(20);not null" json:"status"`
	OriginalResponseID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"original_response_id"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (DonationRecord) TableName() string {
	return "donation_records"
}
