package service

import (
	"context"
	"time"

	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
)

type ReminderStorage interface {
	Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)
	Get(ctx context.Context, id string) (*entity.Reminder, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*entity.Reminder, error)
	GetDue(ctx context.Context, now time.Time) ([]entity.Reminder, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type reminderUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type mailClient interface {
	Send(to, subject, body string) error
}

// ReminderService owns scheduled notifications: it records them, cancels them
// and runs the delivery loop that sends due ones out over mail.
type ReminderService struct {
	storage     ReminderStorage
	userStorage reminderUserStorage
	mail        mailClient

	logger *types.Logger
	clock  func() time.Time
}

func NewReminderService(
	logger *types.Logger,
	storage ReminderStorage,
	userStorage reminderUserStorage,
	mail mailClient,
) *ReminderService {
	return &ReminderService{
		storage:     storage,
		userStorage: userStorage,
		mail:        mail,
		logger:      logger,
		clock:       time.Now,
	}
}

// Schedule records a notification to be delivered at triggerAt and returns its
// handle, which a later Cancel accepts.
func (s *ReminderService) Schedule(ctx context.Context, eventID, userID, title, body string, triggerAt time.Time) (string, error) {
	reminder, err := s.storage.Create(ctx, &entity.Reminder{
		EventID:   eventID,
		UserID:    userID,
		Title:     title,
		Body:      body,
		TriggerAt: triggerAt,
	})
	if err != nil {
		return "", err
	}
	return reminder.ID, nil
}

// Cancel drops a scheduled notification by its handle.
func (s *ReminderService) Cancel(ctx context.Context, handle string) error {
	return s.storage.Delete(ctx, handle)
}

// CancelByEventAndUser drops the pending notification binding for an event and
// a user, if one exists.
func (s *ReminderService) CancelByEventAndUser(ctx context.Context, eventID, userID string) error {
	reminder, err := s.storage.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return err
	}
	return s.storage.Delete(ctx, reminder.ID)
}

// Notify sends a message to the given users right away, best-effort. Failures
// are logged per recipient and never returned.
func (s *ReminderService) Notify(ctx context.Context, userIDs []string, subject, body string) {
	for _, userID := range userIDs {
		user, err := s.userStorage.Get(ctx, userID)
		if err != nil {
			s.logger.Errorf("failed to get user %s for notification: %v", userID, err)
			continue
		}
		if err = s.mail.Send(user.Email, subject, body); err != nil {
			s.logger.Errorf("failed to notify user %s: %v", userID, err)
		}
	}
}

// StartScheduler starts the delivery loop for due reminders.
func (s *ReminderService) StartScheduler() {
	s.logger.Info("Starting reminder scheduler")
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx := context.Background()
			s.deliverDue(ctx)
		}
	}()
}

// deliverDue sends every unsent reminder whose trigger time has passed. A
// reminder is marked sent only after a successful delivery, so a failed send
// is picked up again on the next tick.
func (s *ReminderService) deliverDue(ctx context.Context) {
	now := s.clock()

	due, err := s.storage.GetDue(ctx, now)
	if err != nil {
		s.logger.Errorf("failed to get due reminders: %v", err)
		return
	}

	for _, reminder := range due {
		user, err := s.userStorage.Get(ctx, reminder.UserID)
		if err != nil {
			s.logger.Errorf("failed to get user %s for reminder %s: %v", reminder.UserID, reminder.ID, err)
			continue
		}

		if err = s.mail.Send(user.Email, reminder.Title, reminder.Body); err != nil {
			s.logger.Errorf("failed to deliver reminder %s: %v", reminder.ID, err)
			continue
		}

		if err = s.storage.MarkSent(ctx, reminder.ID, now); err != nil {
			s.logger.Errorf("failed to mark reminder %s as sent: %v", reminder.ID, err)
		}
	}
}
