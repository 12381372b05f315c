package entity

import "time"

// Reminder is a scheduled notification bound to an event and a user. Its ID is
// the opaque handle handed back on scheduling and used to cancel the reminder
// when the user withdraws their RSVP.
type Reminder struct {
	ID        string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID   string     `gorm:"not null;type:uuid;index:idx_reminders_event_user"`
	UserID    string     `gorm:"not null;type:uuid;index:idx_reminders_event_user"`
	Title     string     `gorm:"not null"`
	Body      string     `gorm:"not null"`
	TriggerAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time
	CreatedAt time.Time
}

// IsDue reports whether the reminder should be delivered at the given moment.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.SentAt == nil && !r.TriggerAt.After(now)
}
