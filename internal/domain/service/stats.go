package service

import (
	"context"
	"time"

	"github.com/eventos-app/api/internal/domain/dto"
	"github.com/eventos-app/api/internal/domain/entity"
)

type statsEventStorage interface {
	GetAttendedBefore(ctx context.Context, userID string, t time.Time) ([]entity.Event, error)
	GetAttendedSince(ctx context.Context, userID string, t time.Time) ([]entity.Event, error)
}

type statsCommentStorage interface {
	GetByUserID(ctx context.Context, userID string) ([]entity.Comment, error)
}

type StatsService struct {
	eventStorage   statsEventStorage
	commentStorage statsCommentStorage

	clock func() time.Time
}

func NewStatsService(eventStorage statsEventStorage, commentStorage statsCommentStorage) *StatsService {
	return &StatsService{
		eventStorage:   eventStorage,
		commentStorage: commentStorage,
		clock:          time.Now,
	}
}

// ForUser recomputes the user's statistics from scratch: attended events are
// partitioned into past and upcoming against the current time, and the comment
// count and average rating run over the user's comments on those past events
// only. No caching.
func (s *StatsService) ForUser(ctx context.Context, userID string) (*dto.UserStats, error) {
	now := s.clock()

	past, err := s.eventStorage.GetAttendedBefore(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.eventStorage.GetAttendedSince(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentStorage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pastIDs := make(map[string]struct{}, len(past))
	for _, event := range past {
		pastIDs[event.ID] = struct{}{}
	}

	var totalComments, totalRating int
	for _, comment := range comments {
		if _, ok := pastIDs[comment.EventID]; !ok {
			continue
		}
		totalComments++
		totalRating += comment.Rating
	}

	// Average over zero comments is defined as 0.
	var averageRating float64
	if totalComments > 0 {
		averageRating = float64(totalRating) / float64(totalComments)
	}

	return &dto.UserStats{
		TotalEvents:    len(past) + len(upcoming),
		UpcomingEvents: len(upcoming),
		PastEvents:     len(past),
		TotalComments:  totalComments,
		AverageRating:  averageRating,
	}, nil
}

// History lists the user's past attended events, most recent first.
func (s *StatsService) History(ctx context.Context, userID string) ([]entity.Event, error) {
	return s.eventStorage.GetAttendedBefore(ctx, userID, s.clock())
}
