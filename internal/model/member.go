package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is a club member profile. ImageURL is always populated before the
// row exists: the photo is uploaded first and the insert only happens after a
// public URL has been obtained.
type TeamMember struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:255;not null"`
	ImageURL     string    `json:"imageUrl" gorm:"column:image_url;size:512;not null"`
	Instagram    string    `json:"instagram,omitempty" gorm:"size:512"`
	LinkedIn     string    `json:"linkedin,omitempty" gorm:"column:linkedin;size:512"`
	IsFeatured   bool      `json:"isFeatured" gorm:"default:false;index"`
	DisplayOrder int       `json:"displayOrder" gorm:"default:0;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
