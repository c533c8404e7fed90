// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election enforces the election's integrity rules and derives
statistics from stored votes.

# Service

A Service wraps a store handle and a logger:

	svc := election.NewService(store.New(conn), slog.Default())

# Casting Votes

CastVote checks, in order: voter exists, candidate exists, no candidate
shares the voter's name, voter has not voted. It then marks the voter,
inserts the vote and increments the candidate's counter in a single
transaction. The has_voted update is conditional on the old value, which
makes it the serialization point for concurrent calls.

# Deletion Rules

  - DeleteVoter fails with ErrVoterHasVoted once the voter has voted
  - DeleteCandidate fails with ErrCandidateHasVotes once votes_count > 0

# Dual-Role Rule

A voter may not share a name with any candidate. The check is exact,
case-sensitive string equality: two different people with the same name
collide, and a voter registered under a different spelling passes.

# Statistics

GetStatistics returns the number of voters who voted and, per candidate,
votes_count / voted * 100 rounded to 2 decimals (0 when nobody voted).
VerifyTallies recomputes counts from the vote table.

# Errors

Errors match one of ErrNotFound, ErrConflict or ErrInvalidInput:

	if errors.Is(err, election.ErrConflict) {
		// 400
	}
*/
package election
