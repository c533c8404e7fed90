// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballot-box API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and info:

	GET /health
	GET /

Auth (only when JWT_SECRET is set):

	POST /auth/token - Exchange admin password for a bearer token

Voters:

	POST   /voters      - Register voter (guarded)
	GET    /voters      - List voters (?skip=&limit=)
	GET    /voters/{id} - Get voter
	DELETE /voters/{id} - Delete voter who has not voted (guarded)

Candidates:

	POST   /candidates      - Register candidate (guarded)
	GET    /candidates      - List candidates (?skip=&limit=)
	GET    /candidates/{id} - Get candidate
	DELETE /candidates/{id} - Delete candidate without votes (guarded)

Votes:

	POST /votes            - Cast vote (guarded)
	GET  /votes            - List votes (?skip=&limit=)
	GET  /votes/statistics - Tallies and percentages
	GET  /votes/verify     - Recount votes and compare with counters

Validations:

	GET /validations/voter-candidate-check/{voter_id}

# Handler Initialization

The router builds one election.Service over the shared *sql.DB and hands
it to every handler:

	svc := election.NewService(store.New(db), nil)
	voterHandler := handlers.NewVoterHandler(svc)

Guarded routes go through middleware.RequireToken, which is a no-op when
auth is disabled.
*/
package router
