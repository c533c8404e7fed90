// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type TokenHandler struct {
	issuer       *auth.Issuer
	passwordHash string
}

// NewTokenHandler returns a handler that exchanges the admin password for
// access tokens. A nil issuer means auth is disabled.
func NewTokenHandler(issuer *auth.Issuer, passwordHash string) *TokenHandler {
	return &TokenHandler{issuer: issuer, passwordHash: passwordHash}
}

// IssueToken handles POST /auth/token
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	if h.issuer == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Authentication is not enabled")
		return
	}

	var req models.TokenRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := auth.CheckPassword(h.passwordHash, req.Password); err != nil {
		slog.Warn("token request rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, expiresAt, err := h.issuer.Issue(auth.AdminSubject)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
		ExpiresAt:   expiresAt.Unix(),
	})
}
