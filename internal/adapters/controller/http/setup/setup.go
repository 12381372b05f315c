package setup

import (
	"net/http"

	"github.com/eventos-app/api/internal/adapters/controller/http/handlers"
	"github.com/eventos-app/api/internal/adapters/controller/http/middlewares"
)

// Routes registers all API routes. Everything except registration and login
// sits behind the session middleware.
func Routes(
	middle *middlewares.Middlewares,
	auth *handlers.AuthHandler,
	events *handlers.EventHandler,
	comments *handlers.CommentHandler,
	stats *handlers.StatsHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/logout", middle.Authorized(auth.Logout))
	mux.HandleFunc("GET /auth/me", middle.Authorized(auth.Me))

	mux.HandleFunc("GET /events", middle.Authorized(events.List))
	mux.HandleFunc("POST /events", middle.Authorized(events.Create))
	mux.HandleFunc("GET /events/{id}", middle.Authorized(events.Get))
	mux.HandleFunc("PUT /events/{id}", middle.Authorized(events.Update))
	mux.HandleFunc("DELETE /events/{id}", middle.Authorized(events.Delete))
	mux.HandleFunc("POST /events/{id}/finish", middle.Authorized(events.Finish))
	mux.HandleFunc("POST /events/{id}/rsvp", middle.Authorized(events.ToggleRSVP))

	mux.HandleFunc("GET /events/{id}/comments", middle.Authorized(comments.List))
	mux.HandleFunc("POST /events/{id}/comments", middle.Authorized(comments.Add))

	mux.HandleFunc("GET /me/stats", middle.Authorized(stats.Me))
	mux.HandleFunc("GET /me/events/history", middle.Authorized(stats.History))

	return mux
}
