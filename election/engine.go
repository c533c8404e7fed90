// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/store"
)

// CastVote records a vote for voterID. Preconditions are checked in order
// and the first failure wins:
//
//  1. the voter exists (ErrVoterNotFound)
//  2. the candidate exists (ErrCandidateNotFound)
//  3. no candidate shares the voter's name (ErrDualRole)
//  4. the voter has not voted yet (ErrAlreadyVoted)
//
// Marking the voter, inserting the vote, and incrementing the candidate's
// counter happen in one transaction. The has_voted flip is conditional,
// so of two concurrent calls for the same voter exactly one succeeds.
func (s *Service) CastVote(ctx context.Context, voterID, candidateID string) (models.Vote, error) {
	var vote models.Vote

	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		voter, err := tx.GetVoter(ctx, voterID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrVoterNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.GetCandidate(ctx, candidateID); errors.Is(err, store.ErrNotFound) {
			return ErrCandidateNotFound
		} else if err != nil {
			return err
		}

		// Name equality is the only link between the two registries
		clash, err := tx.CandidateNameExists(ctx, voter.Name)
		if err != nil {
			return err
		}
		if clash {
			return ErrDualRole
		}

		if voter.HasVoted {
			return ErrAlreadyVoted
		}

		marked, err := tx.MarkVoted(ctx, voterID)
		if err != nil {
			return err
		}
		if !marked {
			return ErrAlreadyVoted
		}

		vote = models.Vote{
			ID:          uuid.NewString(),
			VoterID:     voterID,
			CandidateID: candidateID,
		}
		if err := tx.InsertVote(ctx, vote); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return ErrAlreadyVoted
			case errors.Is(err, store.ErrReferenced):
				return ErrCandidateNotFound
			}
			return err
		}

		incremented, err := tx.IncrementVotes(ctx, candidateID)
		if err != nil {
			return err
		}
		if !incremented {
			return ErrCandidateNotFound
		}
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}

	s.logger.Info("vote cast", "vote_id", vote.ID, "voter_id", voterID, "candidate_id", candidateID)
	return vote, nil
}

// DeleteVoter removes a voter who has not voted yet
func (s *Service) DeleteVoter(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteUnvotedVoter(ctx, id)
	if errors.Is(err, store.ErrReferenced) {
		return ErrVoterHasVoted
	}
	if err != nil {
		return err
	}
	if deleted {
		s.logger.Info("voter deleted", "voter_id", id)
		return nil
	}

	if _, err := s.store.GetVoter(ctx, id); errors.Is(err, store.ErrNotFound) {
		return ErrVoterNotFound
	} else if err != nil {
		return err
	}
	return ErrVoterHasVoted
}

// DeleteCandidate removes a candidate who has not received any votes.
// Candidates with votes are kept so every vote still points at a
// candidate and votes_count stays equal to the vote rows.
func (s *Service) DeleteCandidate(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteCandidateWithoutVotes(ctx, id)
	if errors.Is(err, store.ErrReferenced) {
		return ErrCandidateHasVotes
	}
	if err != nil {
		return err
	}
	if deleted {
		s.logger.Info("candidate deleted", "candidate_id", id)
		return nil
	}

	if _, err := s.store.GetCandidate(ctx, id); errors.Is(err, store.ErrNotFound) {
		return ErrCandidateNotFound
	} else if err != nil {
		return err
	}
	return ErrCandidateHasVotes
}
