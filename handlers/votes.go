// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type VoteHandler struct {
	svc *election.Service
}

func NewVoteHandler(svc *election.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// CastVote handles POST /votes
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.VoterID = strings.TrimSpace(req.VoterID)
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	if req.VoterID == "" || req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id and candidate_id are required")
		return
	}

	vote, err := h.svc.CastVote(r.Context(), req.VoterID, req.CandidateID)
	if err != nil {
		writeServiceError(w, "cast vote", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// ListVotes handles GET /votes?skip=&limit=
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	page, msg := parsePage(r)
	if msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	votes, err := h.svc.ListVotes(r.Context(), page)
	if err != nil {
		writeServiceError(w, "list votes", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// GetStatistics handles GET /votes/statistics
func (h *VoteHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		writeServiceError(w, "get statistics", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// VerifyTallies handles GET /votes/verify
func (h *VoteHandler) VerifyTallies(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.VerifyTallies(r.Context())
	if err != nil {
		writeServiceError(w, "verify tallies", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// CheckDualRole handles GET /validations/voter-candidate-check/{voter_id}
func (h *VoteHandler) CheckDualRole(w http.ResponseWriter, r *http.Request) {
	check, err := h.svc.CheckDualRole(r.Context(), r.PathValue("voter_id"))
	if err != nil {
		writeServiceError(w, "check dual role", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, check)
}
