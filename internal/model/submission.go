package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a message left through the public contact form.
// Submissions are immutable: the only mutation is an admin delete.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
