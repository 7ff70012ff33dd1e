package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Material struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	TutorEmail string    `gorm:"size:255;not null;index" json:"tutor_email"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	ImageURL   string    `gorm:"type:text" json:"image_url"`
	DriveLink  string    `gorm:"type:text" json:"drive_link"`

	Session StudySession `gorm:"foreignkey:SessionID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
