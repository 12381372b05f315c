package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
)

// reminderLead is how long before an event's date the RSVP reminder fires.
const reminderLead = 24 * time.Hour

type AttendeeStorage interface {
	Create(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error)
	Get(ctx context.Context, eventID, userID string) (*entity.EventAttendee, error)
	Delete(ctx context.Context, eventID, userID string) error
	CountByEventID(ctx context.Context, eventID string) (int64, error)
}

type attendeeEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type attendeeReminders interface {
	Schedule(ctx context.Context, eventID, userID, title, body string, triggerAt time.Time) (string, error)
	CancelByEventAndUser(ctx context.Context, eventID, userID string) error
}

type AttendeeService struct {
	storage      AttendeeStorage
	eventStorage attendeeEventStorage
	reminders    attendeeReminders

	logger *types.Logger
}

func NewAttendeeService(
	logger *types.Logger,
	storage AttendeeStorage,
	eventStorage attendeeEventStorage,
	reminders attendeeReminders,
) *AttendeeService {
	return &AttendeeService{
		storage:      storage,
		eventStorage: eventStorage,
		reminders:    reminders,
		logger:       logger,
	}
}

// Toggle flips the user's membership in the event's attendee set and reports
// the resulting state. Joining schedules a reminder for 24 hours before the
// event; leaving cancels the previously recorded one. The reminder side
// effects are not atomic with the membership change: if they fail the
// membership mutation stands and the failure is only logged.
func (s *AttendeeService) Toggle(ctx context.Context, eventID, userID string) (bool, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return false, err
	}

	_, err = s.storage.Get(ctx, eventID, userID)
	switch {
	case err == nil:
		return false, s.leave(ctx, eventID, userID)
	case errors.Is(err, errorz.ErrNotFound):
		return true, s.join(ctx, event, userID)
	default:
		return false, err
	}
}

// IsAttending reports whether the user is in the event's attendee set.
func (s *AttendeeService) IsAttending(ctx context.Context, eventID, userID string) (bool, error) {
	_, err := s.storage.Get(ctx, eventID, userID)
	if errors.Is(err, errorz.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *AttendeeService) CountByEventID(ctx context.Context, eventID string) (int, error) {
	count, err := s.storage.CountByEventID(ctx, eventID)
	return int(count), err
}

func (s *AttendeeService) join(ctx context.Context, event *entity.Event, userID string) error {
	_, err := s.storage.Create(ctx, &entity.EventAttendee{
		EventID: event.ID,
		UserID:  userID,
	})
	if err != nil {
		return err
	}

	_, err = s.reminders.Schedule(ctx,
		event.ID,
		userID,
		fmt.Sprintf("Reminder: %s", event.Title),
		fmt.Sprintf("%s starts tomorrow at %s.", event.Title, event.Location),
		event.Date.Add(-reminderLead),
	)
	if err != nil {
		// Membership already changed; the reminder channel stays inconsistent.
		s.logger.Errorf("failed to schedule reminder (event_id=%s, user_id=%s): %v", event.ID, userID, err)
	}

	return nil
}

func (s *AttendeeService) leave(ctx context.Context, eventID, userID string) error {
	if err := s.storage.Delete(ctx, eventID, userID); err != nil {
		return err
	}

	if err := s.reminders.CancelByEventAndUser(ctx, eventID, userID); err != nil && !errors.Is(err, errorz.ErrNotFound) {
		s.logger.Errorf("failed to cancel reminder (event_id=%s, user_id=%s): %v", eventID, userID, err)
	}

	return nil
}
