// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Voter: Registered person with a one-shot has_voted flag
  - Candidate: Registered person receiving votes, with a running votes_count
  - Vote: Immutable link between one voter and one candidate

# Request Types

	RegisterVoterRequest     → POST /voters
	RegisterCandidateRequest → POST /candidates
	CastVoteRequest          → POST /votes
	TokenRequest             → POST /auth/token

# Aggregation Types

Statistics carries the number of voters who voted and one
CandidateStatistics entry per candidate:

	{
	  "total_voters_who_voted": 3,
	  "candidates_statistics": [
	    {"candidate_id": "...", "candidate_name": "Bob", "party": null,
	     "total_votes": 2, "vote_percentage": 66.67}
	  ]
	}

TallyReport is the result of recomputing candidate counters from the
vote table. DualRoleCheck answers whether a voter shares a name with a
candidate.

# Pagination

Page holds the skip/limit window used by every list endpoint. Defaults
are DefaultSkip and DefaultLimit; limits above MaxLimit are rejected.

# Error Response

All errors use a consistent format:

	{"error": "Bad Request", "message": "Voter has already voted"}

# JSON Conventions

  - Field names use snake_case
  - Party is null when a candidate has no affiliation
*/
package models
