// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/handlers"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/store"
)

const Version = "1.0.0"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	svc := election.NewService(store.New(db), nil)

	var issuer *auth.Issuer
	if cfg.AuthEnabled() {
		issuer = auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	}
	guard := middleware.RequireToken(issuer)

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(svc)
	candidateHandler := handlers.NewCandidateHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc)
	tokenHandler := handlers.NewTokenHandler(issuer, cfg.AdminPasswordHash)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("POST /auth/token", middleware.WithLogging(tokenHandler.IssueToken))

	// Voters
	mux.HandleFunc("POST /voters", middleware.WithLogging(guard(voterHandler.RegisterVoter)))
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("GET /voters/{id}", middleware.WithLogging(voterHandler.GetVoter))
	mux.HandleFunc("DELETE /voters/{id}", middleware.WithLogging(guard(voterHandler.DeleteVoter)))

	// Candidates
	mux.HandleFunc("POST /candidates", middleware.WithLogging(guard(candidateHandler.RegisterCandidate)))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.GetCandidate))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(guard(candidateHandler.DeleteCandidate)))

	// Votes and aggregation
	mux.HandleFunc("POST /votes", middleware.WithLogging(guard(voteHandler.CastVote)))
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.ListVotes))
	mux.HandleFunc("GET /votes/statistics", middleware.WithLogging(voteHandler.GetStatistics))
	mux.HandleFunc("GET /votes/verify", middleware.WithLogging(voteHandler.VerifyTallies))
	mux.HandleFunc("GET /validations/voter-candidate-check/{voter_id}", middleware.WithLogging(voteHandler.CheckDualRole))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.ServiceInfo{
			Message: "ballot-box API",
			Version: Version,
			Features: []string{
				"voter registration",
				"candidate registration",
				"vote casting",
				"voting statistics",
				"integrity validations",
			},
		})
	})

	return mux
}
