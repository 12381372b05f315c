package service

import (
	"context"
	"fmt"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/internal/domain/utils/validator"
)

type CommentStorage interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Comment, error)
}

type commentEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type CommentService struct {
	storage      CommentStorage
	eventStorage commentEventStorage
}

func NewCommentService(storage CommentStorage, eventStorage commentEventStorage) *CommentService {
	return &CommentService{
		storage:      storage,
		eventStorage: eventStorage,
	}
}

// Add appends an immutable comment to an event. Empty text and a zero or
// out-of-range rating are rejected before anything is written.
func (s *CommentService) Add(ctx context.Context, eventID, userID, text string, rating int) (*entity.Comment, error) {
	if !validator.CommentText(text) {
		return nil, fmt.Errorf("%w: comment text is required", errorz.ErrValidation)
	}
	if !validator.CommentRating(rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", errorz.ErrValidation)
	}

	if _, err := s.eventStorage.Get(ctx, eventID); err != nil {
		return nil, err
	}

	return s.storage.Create(ctx, &entity.Comment{
		EventID: eventID,
		UserID:  userID,
		Text:    text,
		Rating:  rating,
	})
}

// GetByEventID lists an event's comments, newest first.
func (s *CommentService) GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error) {
	return s.storage.GetByEventID(ctx, eventID)
}
