// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type VoterHandler struct {
	svc *election.Service
}

func NewVoterHandler(svc *election.Service) *VoterHandler {
	return &VoterHandler{svc: svc}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voter, err := h.svc.RegisterVoter(r.Context(), req.Name, req.Email)
	if err != nil {
		writeServiceError(w, "register voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, voter)
}

// ListVoters handles GET /voters?skip=&limit=
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	page, msg := parsePage(r)
	if msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	voters, err := h.svc.ListVoters(r.Context(), page)
	if err != nil {
		writeServiceError(w, "list voters", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// GetVoter handles GET /voters/{id}
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	voter, err := h.svc.GetVoter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

// DeleteVoter handles DELETE /voters/{id}
func (h *VoterHandler) DeleteVoter(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVoter(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Voter deleted successfully",
	})
}
