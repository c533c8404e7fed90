// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"math"

	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/store"
)

// votePercentage returns votes/total*100 rounded to 2 decimals, or 0
// when nobody has voted.
func votePercentage(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*100*100) / 100
}

// GetStatistics reports how many voters have voted and each candidate's
// count and share. Shares are rounded independently and may not sum to
// exactly 100.
func (s *Service) GetStatistics(ctx context.Context) (models.Statistics, error) {
	total, err := s.store.CountVotersWhoVoted(ctx)
	if err != nil {
		return models.Statistics{}, err
	}

	candidates, err := s.store.AllCandidates(ctx)
	if err != nil {
		return models.Statistics{}, err
	}

	stats := models.Statistics{
		TotalVotersWhoVoted:  total,
		CandidatesStatistics: make([]models.CandidateStatistics, 0, len(candidates)),
	}
	for _, c := range candidates {
		stats.CandidatesStatistics = append(stats.CandidatesStatistics, models.CandidateStatistics{
			CandidateID:    c.ID,
			CandidateName:  c.Name,
			Party:          c.Party,
			TotalVotes:     c.VotesCount,
			VotePercentage: votePercentage(c.VotesCount, total),
		})
	}
	return stats, nil
}

// CheckDualRole reports whether a candidate carries the voter's name
func (s *Service) CheckDualRole(ctx context.Context, voterID string) (models.DualRoleCheck, error) {
	voter, err := s.store.GetVoter(ctx, voterID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DualRoleCheck{}, ErrVoterNotFound
	}
	if err != nil {
		return models.DualRoleCheck{}, err
	}

	clash, err := s.store.CandidateNameExists(ctx, voter.Name)
	if err != nil {
		return models.DualRoleCheck{}, err
	}

	return models.DualRoleCheck{
		VoterID:         voter.ID,
		VoterName:       voter.Name,
		IsAlsoCandidate: clash,
		CanVote:         !clash,
	}, nil
}

// VerifyTallies recounts votes per candidate from the vote table and
// compares them with the stored counters. It also counts voters whose
// has_voted flag disagrees with the presence of a vote.
func (s *Service) VerifyTallies(ctx context.Context) (models.TallyReport, error) {
	var report models.TallyReport

	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		counted, err := tx.CountVotesByCandidate(ctx)
		if err != nil {
			return err
		}

		candidates, err := tx.AllCandidates(ctx)
		if err != nil {
			return err
		}

		inconsistent, err := tx.CountInconsistentVoters(ctx)
		if err != nil {
			return err
		}

		report.MismatchedCandidates = []models.TallyMismatch{}
		for _, c := range candidates {
			if n := counted[c.ID]; n != c.VotesCount {
				report.MismatchedCandidates = append(report.MismatchedCandidates, models.TallyMismatch{
					CandidateID: c.ID,
					Recorded:    c.VotesCount,
					Counted:     n,
				})
			}
		}
		for _, n := range counted {
			report.TotalVotes += n
		}
		report.InconsistentVoters = inconsistent
		return nil
	})
	if err != nil {
		return models.TallyReport{}, err
	}

	report.Consistent = len(report.MismatchedCandidates) == 0 && report.InconsistentVoters == 0
	if !report.Consistent {
		s.logger.Warn("tally verification found inconsistencies",
			"mismatched_candidates", len(report.MismatchedCandidates),
			"inconsistent_voters", report.InconsistentVoters,
		)
	}
	return report, nil
}
