package handlers

import (
	"context"
	"net/http"

	"github.com/eventos-app/api/pkg/logger/types"
)

type tokenIssuer interface {
	IssueForEmail(ctx context.Context, email string) (string, error)
}

// TokenHandler is the companion token server's single endpoint. The password
// field is accepted but not verified; any lookup failure collapses into one
// generic 400 so the endpoint does not leak which emails exist.
type TokenHandler struct {
	tokens tokenIssuer
	logger *types.Logger
}

func NewTokenHandler(logger *types.Logger, tokens tokenIssuer) *TokenHandler {
	return &TokenHandler{
		tokens: tokens,
		logger: logger,
	}
}

type tokenLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *TokenHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req tokenLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "error logging in"})
		return
	}

	token, err := h.tokens.IssueForEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Errorf("error logging in: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "error logging in"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
