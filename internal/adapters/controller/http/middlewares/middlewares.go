package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/pkg/logger/types"
)

type userProvider interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type Middlewares struct {
	users  userProvider
	logger *types.Logger
}

func New(logger *types.Logger, users userProvider) *Middlewares {
	return &Middlewares{
		users:  users,
		logger: logger,
	}
}

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// Authorized resolves the Bearer token to a user and stores both on the
// request context. Requests without a valid session get a 401.
func (m *Middlewares) Authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			unauthorized(w)
			return
		}

		user, err := m.users.CurrentUser(r.Context(), token)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// User returns the authenticated user stored by Authorized, or nil.
func User(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userKey).(*entity.User)
	return user
}

// Token returns the session token stored by Authorized.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
