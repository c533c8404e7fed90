// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/ballot-box/models"
)

const candidateColumns = `id, name, party, votes_count`

func scanCandidate(row interface{ Scan(...any) error }) (models.Candidate, error) {
	var (
		c     models.Candidate
		party sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &party, &c.VotesCount); err != nil {
		return models.Candidate{}, err
	}
	if party.Valid {
		c.Party = &party.String
	}
	return c, nil
}

func (s *Store) InsertCandidate(ctx context.Context, c models.Candidate) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO candidate (id, name, party, votes_count, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Party, c.VotesCount, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", classify(err))
	}
	return nil
}

func (s *Store) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	c, err := scanCandidate(s.q.QueryRowContext(ctx, `
		SELECT `+candidateColumns+` FROM candidate WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return c, nil
}

// CandidateNameExists reports whether any candidate has exactly this name
func (s *Store) CandidateNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM candidate WHERE name = $1
		)
	`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query candidate by name: %w", err)
	}
	return exists, nil
}

// ListCandidates returns candidates in registration order
func (s *Store) ListCandidates(ctx context.Context, page models.Page) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+candidateColumns+` FROM candidate
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return collectCandidates(rows)
}

// AllCandidates returns every candidate in registration order
func (s *Store) AllCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+candidateColumns+` FROM candidate
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return collectCandidates(rows)
}

func collectCandidates(rows *sql.Rows) ([]models.Candidate, error) {
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// DeleteCandidateWithoutVotes removes the candidate only while
// votes_count is zero. A vote row that still references the candidate
// yields ErrReferenced.
func (s *Store) DeleteCandidateWithoutVotes(ctx context.Context, id string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		DELETE FROM candidate WHERE id = $1 AND votes_count = 0
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", classify(err))
	}
	return affected(res)
}

// IncrementVotes adds one to votes_count. It reports false when the
// candidate does not exist.
func (s *Store) IncrementVotes(ctx context.Context, id string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE candidate SET votes_count = votes_count + 1 WHERE id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to increment votes: %w", err)
	}
	return affected(res)
}
