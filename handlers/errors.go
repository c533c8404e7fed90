// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

// Client-facing messages for the election errors
var errorMessages = map[error]string{
	election.ErrVoterNotFound:     "Voter not found",
	election.ErrCandidateNotFound: "Candidate not found",
	election.ErrEmailTaken:        "Email already registered",
	election.ErrAlreadyVoted:      "Voter has already voted",
	election.ErrDualRole:          "A voter cannot also be a candidate",
	election.ErrVoterHasVoted:     "Cannot delete a voter who has already voted",
	election.ErrCandidateHasVotes: "Cannot delete a candidate who has received votes",
}

// writeServiceError maps an election error onto a status code and writes it.
// Unknown errors are logged and reported as 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var status int
	switch {
	case errors.Is(err, election.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, election.ErrConflict), errors.Is(err, election.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		slog.Error("request failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	message, ok := errorMessages[err]
	if !ok {
		message = err.Error()
	}
	middleware.ErrorResponse(w, status, message)
}

// parsePage reads skip and limit query parameters
func parsePage(r *http.Request) (models.Page, string) {
	page := models.Page{Skip: models.DefaultSkip, Limit: models.DefaultLimit}

	if s := r.URL.Query().Get("skip"); s != "" {
		skip, err := strconv.Atoi(s)
		if err != nil || skip < 0 {
			return models.Page{}, "skip must be a non-negative integer"
		}
		page.Skip = skip
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > models.MaxLimit {
			return models.Page{}, "limit must be an integer between 1 and " + strconv.Itoa(models.MaxLimit)
		}
		page.Limit = limit
	}

	return page, ""
}
