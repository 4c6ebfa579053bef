package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

// BulkAddCandidates imports pre-validated rows. Unlike interactive
// decision saving this is insert-only: a row whose national id already
// exists in the working collection is recorded as a per-row error and
// skipped, and the import continues past individual failures.
func (s *Store) BulkAddCandidates(ctx context.Context, inputs []domain.CreateCandidateInput) (domain.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("bulk import candidates", domain.RoleAdmin); err != nil {
		return domain.BulkResult{}, err
	}

	var res domain.BulkResult
	for _, input := range inputs {
		if s.findCandidateByNationalIDLocked(input.NationalID) >= 0 {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("candidate %s (national id %s) already exists", input.Name, input.NationalID))
			continue
		}
		if _, err := s.addCandidateLocked(ctx, input); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("failed to add %s: %v", input.Name, err))
			continue
		}
		res.SuccessCount++
	}
	return res, nil
}

// BulkAddSavedCandidates imports archive rows directly, insert-only by
// national id.
func (s *Store) BulkAddSavedCandidates(ctx context.Context, inputs []domain.SavedCandidateInput) (domain.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("bulk import archive records", domain.RoleAdmin); err != nil {
		return domain.BulkResult{}, err
	}

	var res domain.BulkResult
	for _, input := range inputs {
		if s.findArchivedLocked(input.NationalID) >= 0 {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("archive record for %s (national id %s) already exists", input.Name, input.NationalID))
			continue
		}

		decisionDate := now()
		if input.DecisionDate != "" {
			if parsed, err := time.Parse(dateLayout, input.DecisionDate); err == nil {
				decisionDate = parsed.UTC()
			}
		}
		decisionBy := input.DecisionBy
		if decisionBy == "" {
			decisionBy = s.current.Name
		}

		rec := domain.SavedCandidate{
			ID:            uuid.New(),
			Name:          input.Name,
			NationalID:    input.NationalID,
			BirthDate:     input.BirthDate,
			Region:        input.Region,
			Qualification: input.Qualification,
			MaritalStatus: input.MaritalStatus,
			Company:       input.Company,
			Position:      input.Position,
			OfferDate:     input.OfferDate,
			FinalResult:   input.FinalResult,
			DecisionDate:  decisionDate,
			DecisionBy:    decisionBy,
			Notes:         input.Notes,
			CreatedAt:     now(),
		}

		stored, err := s.gw.SavedCandidates.Insert(ctx, mapper.SavedCandidateToRow(rec))
		if err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("failed to add %s: %v", input.Name, err))
			continue
		}
		s.saved = append(s.saved, mapper.SavedCandidateFromRow(stored))
		res.SuccessCount++
	}

	s.recomputeStatsLocked()
	return res, nil
}
