package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/eventos-app/api/internal/adapters/controller/http/middlewares"
	"github.com/eventos-app/api/internal/domain/dto"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/internal/domain/service"
	"github.com/eventos-app/api/pkg/logger/types"
)

type eventService interface {
	Create(ctx context.Context, userID string, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	List(ctx context.Context, order service.ListOrder, limit int) ([]entity.Event, error)
	Update(ctx context.Context, userID, eventID string, title, description, location string, date time.Time) (*entity.Event, error)
	Delete(ctx context.Context, userID, eventID string) error
	Finish(ctx context.Context, userID, eventID string) (*entity.Event, error)
}

type attendeeService interface {
	Toggle(ctx context.Context, eventID, userID string) (bool, error)
	IsAttending(ctx context.Context, eventID, userID string) (bool, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
}

type EventHandler struct {
	events    eventService
	attendees attendeeService
	logger    *types.Logger
}

func NewEventHandler(logger *types.Logger, events eventService, attendees attendeeService) *EventHandler {
	return &EventHandler{
		events:    events,
		attendees: attendees,
		logger:    logger,
	}
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

type eventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        time.Time  `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	Status      string     `json:"status"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

type eventDetailsResponse struct {
	eventResponse
	AttendeeCount int  `json:"attendeeCount"`
	IsAttending   bool `json:"isAttending"`
}

func newEventResponse(event *entity.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Date:        event.Date,
		CreatedAt:   event.CreatedAt,
		CreatedBy:   event.CreatedBy,
		Status:      string(event.Status),
		FinishedAt:  event.FinishedAt,
	}
}

func newEventDetailsResponse(view dto.Event) eventDetailsResponse {
	return eventDetailsResponse{
		eventResponse: eventResponse{
			ID:          view.ID,
			Title:       view.Title,
			Description: view.Description,
			Location:    view.Location,
			Date:        view.Date,
			CreatedAt:   view.CreatedAt,
			CreatedBy:   view.CreatedBy,
			Status:      string(view.Status),
			FinishedAt:  view.FinishedAt,
		},
		AttendeeCount: view.AttendeeCount,
		IsAttending:   view.IsAttending,
	}
}

// List serves the event directory. The default is the upcoming view sorted by
// date; ?sort=recent switches to creation time descending.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	order := service.OrderByDate
	if r.URL.Query().Get("sort") == "recent" {
		order = service.OrderByNewest
	}

	events, err := h.events.List(r.Context(), order, 0)
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

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user := middlewares.User(r.Context())
	event, err := h.events.Create(r.Context(), user.ID, &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, newEventResponse(event))
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	user := middlewares.User(r.Context())

	event, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	count, err := h.attendees.CountByEventID(r.Context(), eventID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	attending, err := h.attendees.IsAttending(r.Context(), eventID, user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, newEventDetailsResponse(dto.NewEventFromEntity(*event, count, attending)))
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user := middlewares.User(r.Context())
	event, err := h.events.Update(r.Context(), user.ID, r.PathValue("id"), req.Title, req.Description, req.Location, req.Date)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, newEventResponse(event))
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	if err := h.events.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) Finish(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	event, err := h.events.Finish(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(event))
}

// ToggleRSVP flips the caller's membership in the event's attendee set.
func (h *EventHandler) ToggleRSVP(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	attending, err := h.attendees.Toggle(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"attending": attending})
}
