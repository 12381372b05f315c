package postgres

import (
	"context"

	"github.com/eventos-app/api/internal/domain/entity"
	"gorm.io/gorm"
)

type CommentStorage struct {
	db *gorm.DB
}

func NewCommentStorage(db *gorm.DB) *CommentStorage {
	return &CommentStorage{
		db: db,
	}
}

func (s *CommentStorage) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	err := s.db.WithContext(ctx).Create(&comment).Error
	return comment, err
}

// GetByEventID gets an event's comments, newest first.
func (s *CommentStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (s *CommentStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&comments).Error
	return comments, err
}

func (s *CommentStorage) DeleteByEventID(ctx context.Context, eventID string) error {
	return s.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&entity.Comment{}).Error
}
