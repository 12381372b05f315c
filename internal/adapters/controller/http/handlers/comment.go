package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/eventos-app/api/internal/adapters/controller/http/middlewares"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
)

type commentService interface {
	Add(ctx context.Context, eventID, userID, text string, rating int) (*entity.Comment, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error)
}

type CommentHandler struct {
	comments commentService
	logger   *types.Logger
}

func NewCommentHandler(logger *types.Logger, comments commentService) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		logger:   logger,
	}
}

type commentRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCommentResponse(comment *entity.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		EventID:   comment.EventID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.GetByEventID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, newCommentResponse(&comments[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user := middlewares.User(r.Context())
	comment, err := h.comments.Add(r.Context(), r.PathValue("id"), user.ID, req.Text, req.Rating)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, newCommentResponse(comment))
}
