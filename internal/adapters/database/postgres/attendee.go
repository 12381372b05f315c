package postgres

import (
	"context"
	"errors"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"gorm.io/gorm"
)

type AttendeeStorage struct {
	db *gorm.DB
}

func NewAttendeeStorage(db *gorm.DB) *AttendeeStorage {
	return &AttendeeStorage{
		db: db,
	}
}

func (s *AttendeeStorage) Create(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	err := s.db.WithContext(ctx).Create(&attendee).Error
	return attendee, err
}

func (s *AttendeeStorage) Get(ctx context.Context, eventID, userID string) (*entity.EventAttendee, error) {
	var attendee entity.EventAttendee
	err := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&attendee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return &attendee, err
}

func (s *AttendeeStorage) Delete(ctx context.Context, eventID, userID string) error {
	return s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&entity.EventAttendee{}).Error
}

func (s *AttendeeStorage) DeleteByEventID(ctx context.Context, eventID string) error {
	return s.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&entity.EventAttendee{}).Error
}

func (s *AttendeeStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	var attendees []entity.EventAttendee
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&attendees).Error
	return attendees, err
}

func (s *AttendeeStorage) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.EventAttendee{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
