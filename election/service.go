// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/store"
)

const maxNameLength = 100

type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

func validateName(name string) error {
	if name == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return invalid(fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	return nil
}

// RegisterVoter creates a voter with has_voted = false
func (s *Service) RegisterVoter(ctx context.Context, name, email string) (models.Voter, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateName(name); err != nil {
		return models.Voter{}, err
	}
	if email == "" {
		return models.Voter{}, invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return models.Voter{}, invalid("email is not a valid address")
	}

	_, err = s.store.FindVoterByEmail(ctx, email)
	if err == nil {
		return models.Voter{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Voter{}, err
	}

	voter := models.Voter{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.store.InsertVoter(ctx, voter); err != nil {
		// Lost a race with another registration for the same email
		if errors.Is(err, store.ErrDuplicate) {
			return models.Voter{}, ErrEmailTaken
		}
		return models.Voter{}, err
	}

	s.logger.Info("voter registered", "voter_id", voter.ID)
	return voter, nil
}

func (s *Service) GetVoter(ctx context.Context, id string) (models.Voter, error) {
	voter, err := s.store.GetVoter(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Voter{}, ErrVoterNotFound
	}
	return voter, err
}

func (s *Service) ListVoters(ctx context.Context, page models.Page) ([]models.Voter, error) {
	return s.store.ListVoters(ctx, page)
}

// RegisterCandidate creates a candidate with votes_count = 0. An empty
// party is stored as no affiliation.
func (s *Service) RegisterCandidate(ctx context.Context, name string, party *string) (models.Candidate, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return models.Candidate{}, err
	}

	var affiliation *string
	if party != nil {
		if p := strings.TrimSpace(*party); p != "" {
			if utf8.RuneCountInString(p) > maxNameLength {
				return models.Candidate{}, invalid(fmt.Sprintf("party must be at most %d characters", maxNameLength))
			}
			affiliation = &p
		}
	}

	candidate := models.Candidate{
		ID:    uuid.NewString(),
		Name:  name,
		Party: affiliation,
	}
	if err := s.store.InsertCandidate(ctx, candidate); err != nil {
		return models.Candidate{}, err
	}

	s.logger.Info("candidate registered", "candidate_id", candidate.ID)
	return candidate, nil
}

func (s *Service) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	candidate, err := s.store.GetCandidate(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Candidate{}, ErrCandidateNotFound
	}
	return candidate, err
}

func (s *Service) ListCandidates(ctx context.Context, page models.Page) ([]models.Candidate, error) {
	return s.store.ListCandidates(ctx, page)
}

func (s *Service) ListVotes(ctx context.Context, page models.Page) ([]models.Vote, error) {
	return s.store.ListVotes(ctx, page)
}
