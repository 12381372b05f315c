package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"gorm.io/gorm"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return &event, err
}

// GetAll is a function that gets all events from the database in the given
// order ("date asc", "created_at desc", ...), optionally limited.
func (s *EventStorage) GetAll(ctx context.Context, order string, limit int) ([]entity.Event, error) {
	var events []entity.Event
	q := s.db.WithContext(ctx).Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&events).Error
	return events, err
}

// Update is a function that updates an event in the database.
func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Save(&event).Error
	return event, err
}

// Delete is a function that deletes an event from the database by id.
func (s *EventStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Event{}).Error
}

// GetAttendedBefore gets the events a user attends whose date is before t,
// most recent first.
func (s *EventStorage) GetAttendedBefore(ctx context.Context, userID string, t time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("event_attendees.user_id = ? AND events.date < ?", userID, t).
		Order("events.date DESC").
		Find(&events).Error
	return events, err
}

// GetAttendedSince gets the events a user attends whose date is at or after t,
// soonest first.
func (s *EventStorage) GetAttendedSince(ctx context.Context, userID string, t time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("event_attendees.user_id = ? AND events.date >= ?", userID, t).
		Order("events.date ASC").
		Find(&events).Error
	return events, err
}
