package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"gorm.io/gorm"
)

type ReminderStorage struct {
	db *gorm.DB
}

func NewReminderStorage(db *gorm.DB) *ReminderStorage {
	return &ReminderStorage{
		db: db,
	}
}

func (s *ReminderStorage) Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	err := s.db.WithContext(ctx).Create(&reminder).Error
	return reminder, err
}

func (s *ReminderStorage) Get(ctx context.Context, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return &reminder, err
}

// GetByEventAndUser gets the pending reminder binding for an event and a user.
func (s *ReminderStorage) GetByEventAndUser(ctx context.Context, eventID, userID string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ? AND sent_at IS NULL", eventID, userID).
		First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return &reminder, err
}

// GetDue gets unsent reminders whose trigger time has passed.
func (s *ReminderStorage) GetDue(ctx context.Context, now time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := s.db.WithContext(ctx).
		Where("sent_at IS NULL AND trigger_at <= ?", now).
		Order("trigger_at ASC").
		Find(&reminders).Error
	return reminders, err
}

func (s *ReminderStorage) MarkSent(ctx context.Context, id string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&entity.Reminder{}).Where("id = ?", id).Update("sent_at", at).Error
}

func (s *ReminderStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Reminder{}).Error
}

func (s *ReminderStorage) DeleteByEventID(ctx context.Context, eventID string) error {
	return s.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&entity.Reminder{}).Error
}
