package entity

import "time"

// Comment is an attendee's comment and rating on an event. Comments are
// immutable once written; they go away only when the event is deleted.
type Comment struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID   string `gorm:"not null;type:uuid;index"`
	UserID    string `gorm:"not null;type:uuid;index"`
	Text      string `gorm:"not null"`
	Rating    int    `gorm:"not null"`
	CreatedAt time.Time
}
