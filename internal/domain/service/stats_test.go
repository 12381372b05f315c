package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventos-app/api/internal/domain/entity"
)

func TestStatsPartitionsAttendedEvents(t *testing.T) {
	events := newFakeEventStorage()
	attendees := newFakeAttendeeStorage()
	events.attendees = attendees
	comments := &fakeCommentStorage{}
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(events, comments)
	svc.clock = func() time.Time { return now }

	dates := []time.Time{
		now.Add(-48 * time.Hour), // past
		now.Add(-24 * time.Hour), // past
		now.Add(24 * time.Hour),  // upcoming
	}
	for _, date := range dates {
		event, err := events.Create(ctx, &entity.Event{
			Title:       "Meetup",
			Description: "desc",
			Location:    "Park",
			Date:        date,
			CreatedBy:   "organizer",
		})
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
		if _, err = attendees.Create(ctx, &entity.EventAttendee{EventID: event.ID, UserID: "user-1"}); err != nil {
			t.Fatalf("seed attendee: %v", err)
		}
	}

	// An event the user does not attend must not count.
	if _, err := events.Create(ctx, &entity.Event{
		Title:       "Other",
		Description: "desc",
		Location:    "Hall",
		Date:        now.Add(24 * time.Hour),
		CreatedBy:   "organizer",
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	_, _ = comments.Create(ctx, &entity.Comment{EventID: "event-1", UserID: "user-1", Text: "good", Rating: 4})
	_, _ = comments.Create(ctx, &entity.Comment{EventID: "event-2", UserID: "user-1", Text: "great", Rating: 5})
	_, _ = comments.Create(ctx, &entity.Comment{EventID: "event-2", UserID: "someone-else", Text: "meh", Rating: 1})

	stats, err := svc.ForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PastEvents != 2 {
		t.Fatalf("expected 2 past events, got %d", stats.PastEvents)
	}
	if stats.UpcomingEvents != 1 {
		t.Fatalf("expected 1 upcoming event, got %d", stats.UpcomingEvents)
	}
	if stats.TotalEvents != 3 {
		t.Fatalf("expected 3 total events, got %d", stats.TotalEvents)
	}
	if stats.TotalComments != 2 {
		t.Fatalf("expected 2 comments, got %d", stats.TotalComments)
	}
	if stats.AverageRating != 4.5 {
		t.Fatalf("expected average rating 4.5, got %v", stats.AverageRating)
	}
}

func TestStatsZeroCommentsAverageIsZero(t *testing.T) {
	events := newFakeEventStorage()
	events.attendees = newFakeAttendeeStorage()
	svc := NewStatsService(events, &fakeCommentStorage{})

	stats, err := svc.ForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.AverageRating != 0 {
		t.Fatalf("expected average rating 0 with no comments, got %v", stats.AverageRating)
	}
	if stats.TotalEvents != 0 || stats.TotalComments != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestStatsIgnoresCommentsOnUpcomingEvents(t *testing.T) {
	events := newFakeEventStorage()
	attendees := newFakeAttendeeStorage()
	events.attendees = attendees
	comments := &fakeCommentStorage{}
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(events, comments)
	svc.clock = func() time.Time { return now }

	for _, date := range []time.Time{now.Add(-24 * time.Hour), now.Add(24 * time.Hour)} {
		event, err := events.Create(ctx, &entity.Event{
			Title:       "Meetup",
			Description: "desc",
			Location:    "Park",
			Date:        date,
			CreatedBy:   "organizer",
		})
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
		if _, err = attendees.Create(ctx, &entity.EventAttendee{EventID: event.ID, UserID: "user-1"}); err != nil {
			t.Fatalf("seed attendee: %v", err)
		}
	}

	_, _ = comments.Create(ctx, &entity.Comment{EventID: "event-1", UserID: "user-1", Text: "bad", Rating: 1})
	_, _ = comments.Create(ctx, &entity.Comment{EventID: "event-2", UserID: "user-1", Text: "hyped", Rating: 5})

	stats, err := svc.ForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalComments != 1 {
		t.Fatalf("expected only the past event's comment to count, got %d", stats.TotalComments)
	}
	if stats.AverageRating != 1.0 {
		t.Fatalf("expected average rating 1.0, got %v", stats.AverageRating)
	}
}

func TestStatsHistoryListsPastEventsMostRecentFirst(t *testing.T) {
	events := newFakeEventStorage()
	attendees := newFakeAttendeeStorage()
	events.attendees = attendees
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(events, &fakeCommentStorage{})
	svc.clock = func() time.Time { return now }

	dates := []time.Time{
		now.Add(-72 * time.Hour),
		now.Add(-24 * time.Hour),
		now.Add(24 * time.Hour), // upcoming, must not appear
	}
	for _, date := range dates {
		event, err := events.Create(ctx, &entity.Event{
			Title:       "Meetup",
			Description: "desc",
			Location:    "Park",
			Date:        date,
			CreatedBy:   "organizer",
		})
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
		if _, err = attendees.Create(ctx, &entity.EventAttendee{EventID: event.ID, UserID: "user-1"}); err != nil {
			t.Fatalf("seed attendee: %v", err)
		}
	}

	history, err := svc.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 past events, got %d", len(history))
	}
	if history[0].ID != "event-2" || history[1].ID != "event-1" {
		t.Fatalf("expected most recent first, got %s then %s", history[0].ID, history[1].ID)
	}
}

func TestStatsEventOnBoundaryCountsAsUpcoming(t *testing.T) {
	events := newFakeEventStorage()
	attendees := newFakeAttendeeStorage()
	events.attendees = attendees
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(events, &fakeCommentStorage{})
	svc.clock = func() time.Time { return now }

	event, err := events.Create(ctx, &entity.Event{
		Title:       "Meetup",
		Description: "desc",
		Location:    "Park",
		Date:        now,
		CreatedBy:   "organizer",
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	if _, err = attendees.Create(ctx, &entity.EventAttendee{EventID: event.ID, UserID: "user-1"}); err != nil {
		t.Fatalf("seed attendee: %v", err)
	}

	stats, err := svc.ForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.UpcomingEvents != 1 || stats.PastEvents != 0 {
		t.Fatalf("expected the boundary event to count as upcoming, got %+v", stats)
	}
}
