package store

import (
	"context"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

// SaveDecision records a final hiring decision for the given candidate.
// The archive is keyed by national id: an existing record for the same
// identity is updated in place, never duplicated.
func (s *Store) SaveDecision(ctx context.Context, candidateID uuid.UUID, result domain.FinalResult, opts domain.DecisionOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.ErrNotAuthenticated
	}

	idx := s.findCandidateLocked(candidateID)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "candidate", ID: candidateID.String()}
	}
	return s.saveDecisionLocked(ctx, s.candidates[idx], result, opts)
}

// saveDecisionLocked is the upsert-by-natural-key at the heart of the
// archival engine. The write-through completes before memory changes; on
// gateway failure the archive is left exactly as it was.
func (s *Store) saveDecisionLocked(ctx context.Context, c domain.Candidate, result domain.FinalResult, opts domain.DecisionOptions) error {
	ts := now()

	if i := s.findArchivedLocked(c.NationalID); i >= 0 {
		rec := s.saved[i]
		rec.Name = c.Name
		rec.NationalID = c.NationalID
		rec.BirthDate = c.BirthDate
		rec.Region = c.Region
		rec.Qualification = c.Qualification
		rec.MaritalStatus = c.MaritalStatus
		rec.Company = c.Company
		rec.Position = c.Position
		rec.OfferDate = c.OfferDate
		rec.FinalResult = result
		rec.DecisionDate = ts
		rec.DecisionBy = s.current.Name
		rec.Notes = opts.Notes
		rec.WorkShift = opts.WorkShift
		rec.ExclusionReason = opts.ExclusionReason
		rec.ResignationReason = opts.ResignationReason
		rec.IsRejectedBefore = c.IsRejectedBefore
		rec.PreviousRejectionDate = c.PreviousRejectionDate

		stored, err := s.gw.SavedCandidates.Update(ctx, rec.ID, mapper.SavedCandidateToRow(rec))
		if err != nil {
			return err
		}
		s.saved[i] = mapper.SavedCandidateFromRow(stored)
	} else {
		rec := domain.SavedCandidate{
			ID:                    uuid.New(),
			Name:                  c.Name,
			NationalID:            c.NationalID,
			BirthDate:             c.BirthDate,
			Region:                c.Region,
			Qualification:         c.Qualification,
			MaritalStatus:         c.MaritalStatus,
			Company:               c.Company,
			Position:              c.Position,
			OfferDate:             c.OfferDate,
			FinalResult:           result,
			DecisionDate:          ts,
			DecisionBy:            s.current.Name,
			Notes:                 opts.Notes,
			WorkShift:             opts.WorkShift,
			ExclusionReason:       opts.ExclusionReason,
			ResignationReason:     opts.ResignationReason,
			IsRejectedBefore:      c.IsRejectedBefore,
			PreviousRejectionDate: c.PreviousRejectionDate,
			CreatedAt:             ts,
		}

		stored, err := s.gw.SavedCandidates.Insert(ctx, mapper.SavedCandidateToRow(rec))
		if err != nil {
			return err
		}
		s.saved = append(s.saved, mapper.SavedCandidateFromRow(stored))
	}

	s.recomputeStatsLocked()
	return nil
}

// SetExclusion transitions an archived record to excluded. Reapplying with
// a different reason overwrites; the operation is idempotent in effect.
func (s *Store) SetExclusion(ctx context.Context, id uuid.UUID, reason string) error {
	return s.transitionArchived(ctx, "exclude archived candidates", id, domain.FinalExcluded, func(rec *domain.SavedCandidate) {
		rec.ExclusionReason = reason
	})
}

// SetResignation transitions an archived record to resigned.
func (s *Store) SetResignation(ctx context.Context, id uuid.UUID, reason string) error {
	return s.transitionArchived(ctx, "mark archived candidates resigned", id, domain.FinalResigned, func(rec *domain.SavedCandidate) {
		rec.ResignationReason = reason
	})
}

func (s *Store) transitionArchived(ctx context.Context, op string, id uuid.UUID, result domain.FinalResult, apply func(*domain.SavedCandidate)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked(op, domain.RoleManager, domain.RoleAdmin); err != nil {
		return err
	}

	idx := s.findSavedByIDLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "saved candidate", ID: id.String()}
	}

	rec := s.saved[idx]
	rec.FinalResult = result
	rec.DecisionDate = now()
	rec.DecisionBy = s.current.Name
	apply(&rec)

	stored, err := s.gw.SavedCandidates.Update(ctx, rec.ID, mapper.SavedCandidateToRow(rec))
	if err != nil {
		return err
	}
	s.saved[idx] = mapper.SavedCandidateFromRow(stored)
	s.recomputeStatsLocked()
	return nil
}

// CheckRejectedBefore probes the archive for a prior rejection under the
// given national id.
func (s *Store) CheckRejectedBefore(nationalID string) (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findArchivedRejectedLocked(nationalID); i >= 0 {
		return true, s.saved[i].DecisionDate.Format(dateLayout)
	}
	return false, ""
}
