package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

// AddCandidate registers a new working record. If the archive holds a
// rejected record for the same national id, the candidate is flagged and a
// duplicate_rejection notification is raised after the insert succeeds.
func (s *Store) AddCandidate(ctx context.Context, input domain.CreateCandidateInput) (*domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("create candidates", domain.RoleEmployee, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.addCandidateLocked(ctx, input)
}

func (s *Store) addCandidateLocked(ctx context.Context, input domain.CreateCandidateInput) (*domain.Candidate, error) {
	var prevRejection *domain.SavedCandidate
	if i := s.findArchivedRejectedLocked(input.NationalID); i >= 0 {
		prevRejection = &s.saved[i]
	}

	ts := now()
	c := domain.Candidate{
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
		OfferResult:   domain.OfferPending,
		Status:        domain.StatusNew,
		Notes:         input.Notes,
		CreatedBy:     s.current.Name,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if prevRejection != nil {
		c.IsRejectedBefore = true
		c.PreviousRejectionDate = prevRejection.DecisionDate.Format(dateLayout)
	}

	stored, err := s.gw.Candidates.Insert(ctx, mapper.CandidateToRow(c))
	if err != nil {
		return nil, err
	}
	created := mapper.CandidateFromRow(stored)
	s.candidates = append(s.candidates, created)
	s.recomputeStatsLocked()

	if prevRejection != nil {
		// Raised only once the candidate insert has succeeded, so a failed
		// insert never leaves an orphaned notification. A failed
		// notification insert is logged and dropped, not rolled back.
		s.raiseNotificationLocked(ctx, domain.Notification{
			ID:            uuid.New(),
			Type:          domain.NotifDuplicateRejection,
			Title:         "Previously rejected candidate",
			Message:       fmt.Sprintf("New candidate %s was previously rejected on %s", created.Name, c.PreviousRejectionDate),
			CandidateID:   created.ID,
			CandidateName: created.Name,
			CreatedAt:     now(),
		})
		s.sendDuplicateAlert(created.Name, created.NationalID, c.PreviousRejectionDate)
	}

	return &created, nil
}

// UpdateCandidateStatus moves a candidate through the workflow. A terminal
// offer result cascades into the archival engine; if that second step
// fails the candidate stays updated but unarchived, and the failure is
// reported rather than rolled back.
func (s *Store) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus, offerResult domain.OfferResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("update candidate status", domain.RoleManager, domain.RoleAdmin); err != nil {
		return err
	}

	idx := s.findCandidateLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "candidate", ID: id.String()}
	}

	updated := s.candidates[idx]
	updated.Status = status
	updated.OfferResult = offerResult
	updated.UpdatedAt = now()

	stored, err := s.gw.Candidates.Update(ctx, id, mapper.CandidateToRow(updated))
	if err != nil {
		return err
	}
	s.candidates[idx] = mapper.CandidateFromRow(stored)

	if offerResult.IsTerminal() {
		if err := s.saveDecisionLocked(ctx, s.candidates[idx], domain.FinalResult(offerResult), domain.DecisionOptions{}); err != nil {
			return fmt.Errorf("candidate updated but decision archival failed: %w", err)
		}
	}
	return nil
}

func (s *Store) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("delete candidates", domain.RoleAdmin); err != nil {
		return err
	}

	idx := s.findCandidateLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "candidate", ID: id.String()}
	}

	if err := s.gw.Candidates.Delete(ctx, id); err != nil {
		return err
	}
	s.candidates = append(s.candidates[:idx], s.candidates[idx+1:]...)
	s.recomputeStatsLocked()
	return nil
}

func (s *Store) CandidatesByStatus(status domain.CandidateStatus) []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Candidate
	for _, c := range s.candidates {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) SearchCandidates(query string) []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []domain.Candidate
	for _, c := range s.candidates {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(c.NationalID, query) ||
			strings.Contains(strings.ToLower(c.Region), q) ||
			strings.Contains(strings.ToLower(c.Qualification), q) {
			out = append(out, c)
		}
	}
	return out
}
