package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
	"go.uber.org/zap"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeEventStorage struct {
	events    map[string]entity.Event
	attendees *fakeAttendeeStorage
	seq       int
}

func newFakeEventStorage() *fakeEventStorage {
	return &fakeEventStorage{events: map[string]entity.Event{}}
}

func (f *fakeEventStorage) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.seq++
	event.ID = fmt.Sprintf("event-%d", f.seq)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	f.events[event.ID] = *event
	return event, nil
}

func (f *fakeEventStorage) Get(_ context.Context, id string) (*entity.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	out := event
	return &out, nil
}

func (f *fakeEventStorage) GetAll(_ context.Context, order string, limit int) ([]entity.Event, error) {
	var events []entity.Event
	for _, event := range f.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if strings.HasPrefix(order, "date") {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (f *fakeEventStorage) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return nil, errorz.ErrNotFound
	}
	f.events[event.ID] = *event
	return event, nil
}

func (f *fakeEventStorage) Delete(_ context.Context, id string) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventStorage) GetAttendedBefore(_ context.Context, userID string, t time.Time) ([]entity.Event, error) {
	events := f.attended(userID, func(event entity.Event) bool { return event.Date.Before(t) })
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (f *fakeEventStorage) GetAttendedSince(_ context.Context, userID string, t time.Time) ([]entity.Event, error) {
	events := f.attended(userID, func(event entity.Event) bool { return !event.Date.Before(t) })
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func (f *fakeEventStorage) attended(userID string, keep func(entity.Event) bool) []entity.Event {
	var events []entity.Event
	if f.attendees == nil {
		return events
	}
	for _, event := range f.events {
		if _, ok := f.attendees.rows[attendeeKey(event.ID, userID)]; ok && keep(event) {
			events = append(events, event)
		}
	}
	return events
}

func attendeeKey(eventID, userID string) string {
	return eventID + "/" + userID
}

type fakeAttendeeStorage struct {
	rows          map[string]entity.EventAttendee
	getByEventErr error
}

func newFakeAttendeeStorage() *fakeAttendeeStorage {
	return &fakeAttendeeStorage{rows: map[string]entity.EventAttendee{}}
}

func (f *fakeAttendeeStorage) Create(_ context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	f.rows[attendeeKey(attendee.EventID, attendee.UserID)] = *attendee
	return attendee, nil
}

func (f *fakeAttendeeStorage) Get(_ context.Context, eventID, userID string) (*entity.EventAttendee, error) {
	attendee, ok := f.rows[attendeeKey(eventID, userID)]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	out := attendee
	return &out, nil
}

func (f *fakeAttendeeStorage) Delete(_ context.Context, eventID, userID string) error {
	delete(f.rows, attendeeKey(eventID, userID))
	return nil
}

func (f *fakeAttendeeStorage) DeleteByEventID(_ context.Context, eventID string) error {
	for key, attendee := range f.rows {
		if attendee.EventID == eventID {
			delete(f.rows, key)
		}
	}
	return nil
}

func (f *fakeAttendeeStorage) GetByEventID(_ context.Context, eventID string) ([]entity.EventAttendee, error) {
	if f.getByEventErr != nil {
		return nil, f.getByEventErr
	}
	var attendees []entity.EventAttendee
	for _, attendee := range f.rows {
		if attendee.EventID == eventID {
			attendees = append(attendees, attendee)
		}
	}
	sort.Slice(attendees, func(i, j int) bool { return attendees[i].UserID < attendees[j].UserID })
	return attendees, nil
}

func (f *fakeAttendeeStorage) CountByEventID(_ context.Context, eventID string) (int64, error) {
	attendees, _ := f.GetByEventID(context.Background(), eventID)
	return int64(len(attendees)), nil
}

type fakeCommentStorage struct {
	comments []entity.Comment
	seq      int
}

func (f *fakeCommentStorage) Create(_ context.Context, comment *entity.Comment) (*entity.Comment, error) {
	f.seq++
	comment.ID = fmt.Sprintf("comment-%d", f.seq)
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments = append(f.comments, *comment)
	return comment, nil
}

func (f *fakeCommentStorage) GetByEventID(_ context.Context, eventID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].EventID == eventID {
			comments = append(comments, f.comments[i])
		}
	}
	return comments, nil
}

func (f *fakeCommentStorage) GetByUserID(_ context.Context, userID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	for _, comment := range f.comments {
		if comment.UserID == userID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentStorage) DeleteByEventID(_ context.Context, eventID string) error {
	kept := f.comments[:0]
	for _, comment := range f.comments {
		if comment.EventID != eventID {
			kept = append(kept, comment)
		}
	}
	f.comments = kept
	return nil
}

type fakeReminderStorage struct {
	rows map[string]entity.Reminder
	seq  int
}

func newFakeReminderStorage() *fakeReminderStorage {
	return &fakeReminderStorage{rows: map[string]entity.Reminder{}}
}

func (f *fakeReminderStorage) Create(_ context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	f.seq++
	reminder.ID = fmt.Sprintf("reminder-%d", f.seq)
	f.rows[reminder.ID] = *reminder
	return reminder, nil
}

func (f *fakeReminderStorage) Get(_ context.Context, id string) (*entity.Reminder, error) {
	reminder, ok := f.rows[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	out := reminder
	return &out, nil
}

func (f *fakeReminderStorage) GetByEventAndUser(_ context.Context, eventID, userID string) (*entity.Reminder, error) {
	for _, reminder := range f.rows {
		if reminder.EventID == eventID && reminder.UserID == userID && reminder.SentAt == nil {
			out := reminder
			return &out, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (f *fakeReminderStorage) GetDue(_ context.Context, now time.Time) ([]entity.Reminder, error) {
	var due []entity.Reminder
	for _, reminder := range f.rows {
		if reminder.IsDue(now) {
			due = append(due, reminder)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].TriggerAt.Before(due[j].TriggerAt) })
	return due, nil
}

func (f *fakeReminderStorage) MarkSent(_ context.Context, id string, at time.Time) error {
	reminder, ok := f.rows[id]
	if !ok {
		return errorz.ErrNotFound
	}
	reminder.SentAt = &at
	f.rows[id] = reminder
	return nil
}

func (f *fakeReminderStorage) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeReminderStorage) DeleteByEventID(_ context.Context, eventID string) error {
	for id, reminder := range f.rows {
		if reminder.EventID == eventID {
			delete(f.rows, id)
		}
	}
	return nil
}

type fakeUserStorage struct {
	users map[string]entity.User
	seq   int
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[string]entity.User{}}
}

func (f *fakeUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	out := user
	return &out, nil
}

func (f *fakeUserStorage) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, errorz.ErrNotFound
}

type fakeSessions struct {
	sessions map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]string{}}
}

func (f *fakeSessions) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (string, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return "", errorz.ErrNotFound
	}
	return userID, nil
}

func (f *fakeSessions) Clear(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMail struct {
	sent []sentMail
	err  error
}

func (f *fakeMail) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type notifyCall struct {
	UserIDs []string
	Subject string
	Body    string
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Notify(_ context.Context, userIDs []string, subject, body string) {
	f.calls = append(f.calls, notifyCall{UserIDs: userIDs, Subject: subject, Body: body})
}

type scheduledReminder struct {
	EventID   string
	UserID    string
	Title     string
	Body      string
	TriggerAt time.Time
}

type fakeReminders struct {
	scheduled   []scheduledReminder
	cancelled   []string
	scheduleErr error
	cancelErr   error
}

func (f *fakeReminders) Schedule(_ context.Context, eventID, userID, title, body string, triggerAt time.Time) (string, error) {
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	f.scheduled = append(f.scheduled, scheduledReminder{
		EventID:   eventID,
		UserID:    userID,
		Title:     title,
		Body:      body,
		TriggerAt: triggerAt,
	})
	return fmt.Sprintf("handle-%d", len(f.scheduled)), nil
}

func (f *fakeReminders) CancelByEventAndUser(_ context.Context, eventID, userID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, attendeeKey(eventID, userID))
	return nil
}
