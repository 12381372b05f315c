package handlers

import (
	"context"
	"net/http"

	"github.com/eventos-app/api/internal/adapters/controller/http/middlewares"
	"github.com/eventos-app/api/internal/domain/dto"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
)

type statsService interface {
	ForUser(ctx context.Context, userID string) (*dto.UserStats, error)
	History(ctx context.Context, userID string) ([]entity.Event, error)
}

type StatsHandler struct {
	stats  statsService
	logger *types.Logger
}

func NewStatsHandler(logger *types.Logger, stats statsService) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

type statsResponse struct {
	TotalEvents    int     `json:"totalEvents"`
	UpcomingEvents int     `json:"upcomingEvents"`
	PastEvents     int     `json:"pastEvents"`
	TotalComments  int     `json:"totalComments"`
	AverageRating  float64 `json:"averageRating"`
}

func (h *StatsHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	stats, err := h.stats.ForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalEvents:    stats.TotalEvents,
		UpcomingEvents: stats.UpcomingEvents,
		PastEvents:     stats.PastEvents,
		TotalComments:  stats.TotalComments,
		AverageRating:  stats.AverageRating,
	})
}

// History serves the events the user already attended, most recent first.
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	events, err := h.stats.History(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, newEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
