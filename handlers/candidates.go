// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type CandidateHandler struct {
	svc *election.Service
}

func NewCandidateHandler(svc *election.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// RegisterCandidate handles POST /candidates
func (h *CandidateHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.svc.RegisterCandidate(r.Context(), req.Name, req.Party)
	if err != nil {
		writeServiceError(w, "register candidate", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

// ListCandidates handles GET /candidates?skip=&limit=
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	page, msg := parsePage(r)
	if msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	candidates, err := h.svc.ListCandidates(r.Context(), page)
	if err != nil {
		writeServiceError(w, "list candidates", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	candidate, err := h.svc.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get candidate", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// DeleteCandidate handles DELETE /candidates/{id}
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCandidate(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete candidate", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate deleted successfully",
	})
}
