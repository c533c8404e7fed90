// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/ballot-box/models"
)

// InsertVote stores a vote. A second vote for the same voter yields
// ErrDuplicate; unknown voter or candidate ids yield ErrReferenced.
func (s *Store) InsertVote(ctx context.Context, v models.Vote) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO vote (id, voter_id, candidate_id, cast_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.VoterID, v.CandidateID, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", classify(err))
	}
	return nil
}

// ListVotes returns votes in the order they were cast
func (s *Store) ListVotes(ctx context.Context, page models.Page) ([]models.Vote, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, voter_id, candidate_id FROM vote
		ORDER BY cast_at, id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.CandidateID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}
	return votes, nil
}

// CountVotesByCandidate counts vote rows per candidate id. Candidates
// without votes are absent from the map.
func (s *Store) CountVotesByCandidate(ctx context.Context) (map[string]int, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT candidate_id, COUNT(*) FROM vote GROUP BY candidate_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			candidateID string
			n           int
		)
		if err := rows.Scan(&candidateID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[candidateID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}
	return counts, nil
}
