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

const voterColumns = `id, name, email, has_voted`

func scanVoter(row interface{ Scan(...any) error }) (models.Voter, error) {
	var v models.Voter
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.HasVoted)
	return v, err
}

// InsertVoter stores a new voter. A taken email yields ErrDuplicate.
func (s *Store) InsertVoter(ctx context.Context, v models.Voter) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO voter (id, name, email, has_voted, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.Name, v.Email, v.HasVoted, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to insert voter: %w", classify(err))
	}
	return nil
}

func (s *Store) GetVoter(ctx context.Context, id string) (models.Voter, error) {
	v, err := scanVoter(s.q.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return v, nil
}

func (s *Store) FindVoterByEmail(ctx context.Context, email string) (models.Voter, error) {
	v, err := scanVoter(s.q.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE email = $1
	`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter by email: %w", err)
	}
	return v, nil
}

// ListVoters returns voters in registration order
func (s *Store) ListVoters(ctx context.Context, page models.Page) ([]models.Voter, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+voterColumns+` FROM voter
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}
	return voters, nil
}

// DeleteUnvotedVoter removes the voter only while has_voted is false.
// It reports whether a row was deleted.
func (s *Store) DeleteUnvotedVoter(ctx context.Context, id string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		DELETE FROM voter WHERE id = $1 AND has_voted = $2
	`, id, false)
	if err != nil {
		return false, fmt.Errorf("failed to delete voter: %w", classify(err))
	}
	return affected(res)
}

// MarkVoted flips has_voted from false to true. It reports false when the
// voter is missing or has already voted, so exactly one of several
// concurrent callers can win.
func (s *Store) MarkVoted(ctx context.Context, id string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE voter SET has_voted = $1
		WHERE id = $2 AND has_voted = $3
	`, true, id, false)
	if err != nil {
		return false, fmt.Errorf("failed to mark voter as voted: %w", err)
	}
	return affected(res)
}

func (s *Store) CountVotersWhoVoted(ctx context.Context) (int, error) {
	var n int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM voter WHERE has_voted = $1
	`, true).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count voters who voted: %w", err)
	}
	return n, nil
}

// CountInconsistentVoters counts voters whose has_voted flag disagrees
// with the presence of a vote row.
func (s *Store) CountInconsistentVoters(ctx context.Context) (int, error) {
	var n int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM voter v
		WHERE v.has_voted <> EXISTS(SELECT 1 FROM vote WHERE vote.voter_id = v.id)
	`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count inconsistent voters: %w", err)
	}
	return n, nil
}
