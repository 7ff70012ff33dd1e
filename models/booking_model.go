package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	SessionTitle string    `gorm:"size:255" json:"session_title"`
	StudentEmail string    `gorm:"size:255;not null;index" json:"student_email"`
	TutorEmail   string    `gorm:"size:255;index" json:"tutor_email"`

	// Payment info as returned by the gateway; free sessions carry a zero
	// amount and no intent id.
	Amount          float64 `gorm:"type:numeric(10,2);not null;default:0" json:"amount"`
	PaymentIntentID *string `gorm:"size:255" json:"payment_intent_id,omitempty"`

	Session StudySession `gorm:"foreignkey:SessionID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
