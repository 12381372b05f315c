package dto

import (
	"time"

	"github.com/eventos-app/api/internal/domain/entity"
)

type Event struct {
	ID            string
	Title         string
	Description   string
	Location      string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
	Status        entity.EventStatus
	FinishedAt    *time.Time
	AttendeeCount int
	IsAttending   bool
}

func NewEventFromEntity(event entity.Event, attendeeCount int, isAttending bool) Event {
	return Event{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		Location:      event.Location,
		Date:          event.Date,
		CreatedAt:     event.CreatedAt,
		CreatedBy:     event.CreatedBy,
		Status:        event.Status,
		FinishedAt:    event.FinishedAt,
		AttendeeCount: attendeeCount,
		IsAttending:   isAttending,
	}
}
