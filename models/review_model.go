package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is keyed by (session, student): resubmitting overwrites the
// earlier record instead of adding a second one.
type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_session_student" json:"session_id"`
	StudentEmail string    `gorm:"size:255;not null;uniqueIndex:idx_reviews_session_student" json:"student_email"`
	StudentName  string    `gorm:"size:255" json:"student_name"`
	Rating       float64   `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`

	Session StudySession `gorm:"foreignkey:SessionID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
