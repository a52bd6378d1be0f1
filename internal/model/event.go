package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventStatus represents the display status of an event.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)

// DefaultEventImage is the placeholder used when no image is supplied.
const DefaultEventImage = "/assets/events/default.jpg"

// Valid reports whether the status is in the closed set.
func (s EventStatus) Valid() bool {
	return s == EventStatusUpcoming || s == EventStatusPast
}

// Event is a club event shown on the public events carousel. Registration
// link and summary are optional regardless of status; which one the UI shows
// is a front-end convention, not a stored constraint.
type Event struct {
	ID               uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Title            string      `json:"title" gorm:"size:255;not null"`
	Date             time.Time   `json:"date" gorm:"not null;index"`
	Description      string      `json:"description" gorm:"type:text;not null"`
	Status           EventStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	RegistrationLink string      `json:"registrationLink,omitempty" gorm:"size:512"`
	Summary          string      `json:"summary,omitempty" gorm:"type:text"`
	Image            string      `json:"image" gorm:"size:512"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BeforeCreate sets the UUID and the placeholder image before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Image == "" {
		e.Image = DefaultEventImage
	}
	return nil
}
