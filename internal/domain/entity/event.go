package entity

import (
	"time"

	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusFinished EventStatus = "finished"
)

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	Title       string      `gorm:"not null"`
	Description string      `gorm:"not null"`
	Location    string      `gorm:"not null"`
	Date        time.Time   `gorm:"not null"`
	CreatedBy   string      `gorm:"not null;type:uuid;index"`
	Status      EventStatus `gorm:"not null;default:active"`
	FinishedAt  *time.Time
}

// IsFinished reports whether the event has been finalized by its organizer.
func (e *Event) IsFinished() bool {
	return e.Status == EventStatusFinished
}

// EventAttendee is one membership in an event's attendee set. The composite
// primary key keeps a user in the set at most once.
type EventAttendee struct {
	EventID   string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}
