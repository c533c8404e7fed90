// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

// Root error kinds. Every error returned by Service for a client mistake
// matches exactly one of these with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrVoterNotFound     = fmt.Errorf("voter %w", ErrNotFound)
	ErrCandidateNotFound = fmt.Errorf("candidate %w", ErrNotFound)

	ErrEmailTaken        = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrAlreadyVoted      = fmt.Errorf("%w: voter has already voted", ErrConflict)
	ErrDualRole          = fmt.Errorf("%w: a voter cannot also be a candidate", ErrConflict)
	ErrVoterHasVoted     = fmt.Errorf("%w: cannot delete a voter who has already voted", ErrConflict)
	ErrCandidateHasVotes = fmt.Errorf("%w: cannot delete a candidate who has received votes", ErrConflict)
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
