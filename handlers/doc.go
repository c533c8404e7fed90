// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballot-box API.

# Handler Types

Each handler wraps the shared election.Service:

  - VoterHandler: Voter registration, lookup, listing and deletion
  - CandidateHandler: Candidate registration, lookup, listing and deletion
  - VoteHandler: Vote casting, statistics, tally verification, dual-role check
  - TokenHandler: Admin password to bearer token exchange

Handlers are created via constructor functions:

	svc := election.NewService(store.New(db), nil)
	voterHandler := handlers.NewVoterHandler(svc)

# Status Codes

Creation returns 201. Lookups of unknown ids return 404. Validation
failures and rule violations (duplicate email, second vote, dual role,
deleting a voter who voted or a candidate with votes) return 400.
Anything else is logged and returned as 500 "Database error".

# Pagination

List endpoints accept ?skip= (default 0) and ?limit= (default 100, at
most 1000).

# Error Response Format

	{
	    "error": "Bad Request",
	    "message": "Voter has already voted"
	}
*/
package handlers
