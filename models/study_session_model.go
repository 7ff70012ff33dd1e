package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionPending  = "pending"
	SessionApproved = "approved"
	SessionRejected = "rejected"
)

type StudySession struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	TutorName   string    `gorm:"size:255" json:"tutor_name"`
	TutorEmail  string    `gorm:"size:255;not null;index" json:"tutor_email"`
	Description string    `gorm:"type:text" json:"description"`

	// Schedule fields arrive from the client as-is, same as the rest of
	// the descriptive payload.
	RegistrationStartDate string `gorm:"size:40" json:"registration_start_date"`
	RegistrationEndDate   string `gorm:"size:40" json:"registration_end_date"`
	ClassStartDate        string `gorm:"size:40" json:"class_start_date"`
	ClassEndDate          string `gorm:"size:40" json:"class_end_date"`
	Duration              string `gorm:"size:40" json:"duration"`

	// Set by an admin on approval; a freshly created session is free.
	RegistrationFee float64 `gorm:"type:numeric(10,2);default:0" json:"registration_fee"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	// Present only while the session is rejected; cleared on resubmission.
	RejectionReason   *string `gorm:"type:text" json:"rejection_reason,omitempty"`
	RejectionFeedback *string `gorm:"type:text" json:"rejection_feedback,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
