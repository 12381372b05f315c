package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/internal/domain/utils/validator"
	"github.com/eventos-app/api/pkg/logger/types"
)

// ListOrder selects how the event directory is sorted.
type ListOrder string

const (
	// OrderByDate lists events by date ascending (upcoming view).
	OrderByDate ListOrder = "date ASC"
	// OrderByNewest lists events by creation time descending (recent view).
	OrderByNewest ListOrder = "created_at DESC"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context, order string, limit int) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventAttendeeStorage interface {
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventAttendee, error)
	DeleteByEventID(ctx context.Context, eventID string) error
}

type eventCommentStorage interface {
	DeleteByEventID(ctx context.Context, eventID string) error
}

type eventReminderStorage interface {
	DeleteByEventID(ctx context.Context, eventID string) error
}

type eventNotifier interface {
	Notify(ctx context.Context, userIDs []string, subject, body string)
}

type EventService struct {
	storage         EventStorage
	attendeeStorage eventAttendeeStorage
	commentStorage  eventCommentStorage
	reminderStorage eventReminderStorage
	notifier        eventNotifier

	logger *types.Logger
	clock  func() time.Time
}

func NewEventService(
	logger *types.Logger,
	storage EventStorage,
	attendeeStorage eventAttendeeStorage,
	commentStorage eventCommentStorage,
	reminderStorage eventReminderStorage,
	notifier eventNotifier,
) *EventService {
	return &EventService{
		storage:         storage,
		attendeeStorage: attendeeStorage,
		commentStorage:  commentStorage,
		reminderStorage: reminderStorage,
		notifier:        notifier,
		logger:          logger,
		clock:           time.Now,
	}
}

// Create stores a new event for the acting user. The creator and creation
// timestamp are stamped here, never taken from the caller.
func (s *EventService) Create(ctx context.Context, userID string, event *entity.Event) (*entity.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	event.ID = ""
	event.CreatedAt = time.Time{}
	event.CreatedBy = userID
	event.Status = entity.EventStatusActive
	event.FinishedAt = nil

	return s.storage.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.storage.Get(ctx, id)
}

func (s *EventService) List(ctx context.Context, order ListOrder, limit int) ([]entity.Event, error) {
	return s.storage.GetAll(ctx, string(order), limit)
}

// Update edits the mutable fields of an event. Only the creator may edit.
func (s *EventService) Update(ctx context.Context, userID, eventID string, title, description, location string, date time.Time) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != userID {
		return nil, errorz.ErrForbidden
	}

	event.Title = title
	event.Description = description
	event.Location = location
	event.Date = date
	if err = validateEvent(event); err != nil {
		return nil, err
	}

	return s.storage.Update(ctx, event)
}

// Delete removes an event and everything hanging off it: the attendee set,
// the comment thread and any pending reminders. Only the creator may delete.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != userID {
		return errorz.ErrForbidden
	}

	if err = s.commentStorage.DeleteByEventID(ctx, eventID); err != nil {
		return fmt.Errorf("delete comments for event %s: %w", eventID, err)
	}
	if err = s.attendeeStorage.DeleteByEventID(ctx, eventID); err != nil {
		return fmt.Errorf("delete attendees for event %s: %w", eventID, err)
	}
	if err = s.reminderStorage.DeleteByEventID(ctx, eventID); err != nil {
		return fmt.Errorf("delete reminders for event %s: %w", eventID, err)
	}

	return s.storage.Delete(ctx, eventID)
}

// Finish transitions an event to its terminal finished status and stamps the
// finish time. Attendees are then notified best-effort: delivery failures are
// logged and never reach the caller. Pending reminders are left untouched.
func (s *EventService) Finish(ctx context.Context, userID, eventID string) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != userID {
		return nil, errorz.ErrForbidden
	}
	if event.IsFinished() {
		return nil, errorz.ErrEventFinished
	}

	now := s.clock()
	event.Status = entity.EventStatusFinished
	event.FinishedAt = &now

	event, err = s.storage.Update(ctx, event)
	if err != nil {
		return nil, err
	}

	s.notifyFinished(ctx, event)

	return event, nil
}

func (s *EventService) notifyFinished(ctx context.Context, event *entity.Event) {
	attendees, err := s.attendeeStorage.GetByEventID(ctx, event.ID)
	if err != nil {
		s.logger.Errorf("failed to get attendees for finished event %s: %v", event.ID, err)
		return
	}

	userIDs := make([]string, 0, len(attendees))
	for _, attendee := range attendees {
		userIDs = append(userIDs, attendee.UserID)
	}

	s.notifier.Notify(ctx,
		userIDs,
		fmt.Sprintf("%s has ended", event.Title),
		fmt.Sprintf("The event %q has been finalized by its organizer. Thanks for attending!", event.Title),
	)
}

func validateEvent(event *entity.Event) error {
	switch {
	case !validator.EventTitle(event.Title):
		return fmt.Errorf("%w: invalid title", errorz.ErrValidation)
	case !validator.EventDescription(event.Description):
		return fmt.Errorf("%w: invalid description", errorz.ErrValidation)
	case !validator.EventLocation(event.Location):
		return fmt.Errorf("%w: invalid location", errorz.ErrValidation)
	case !validator.EventDate(event.Date):
		return fmt.Errorf("%w: invalid date", errorz.ErrValidation)
	}
	return nil
}
