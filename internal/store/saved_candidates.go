package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
)

func (s *Store) DeleteSavedCandidate(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("delete archive records", domain.RoleAdmin); err != nil {
		return err
	}

	idx := s.findSavedByIDLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "saved candidate", ID: id.String()}
	}

	if err := s.gw.SavedCandidates.Delete(ctx, id); err != nil {
		return err
	}
	s.saved = append(s.saved[:idx], s.saved[idx+1:]...)
	s.recomputeStatsLocked()
	return nil
}

// DeleteSavedCandidates removes a batch of archive records in a single
// gateway call.
func (s *Store) DeleteSavedCandidates(ctx context.Context, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("delete archive records", domain.RoleAdmin); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.gw.SavedCandidates.DeleteMany(ctx, ids); err != nil {
		return err
	}

	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.saved[:0]
	for _, rec := range s.saved {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	s.saved = kept
	s.recomputeStatsLocked()
	return nil
}

func (s *Store) SearchSavedCandidates(query string) []domain.SavedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []domain.SavedCandidate
	for _, rec := range s.saved {
		if strings.Contains(strings.ToLower(rec.Name), q) ||
			strings.Contains(rec.NationalID, query) ||
			strings.Contains(strings.ToLower(rec.Region), q) ||
			strings.Contains(strings.ToLower(rec.Qualification), q) ||
			strings.Contains(strings.ToLower(rec.Company), q) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) SavedCandidatesByResult(result domain.FinalResult) []domain.SavedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.SavedCandidate
	for _, rec := range s.saved {
		if rec.FinalResult == result {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) SavedCandidatesByCompany(company string) []domain.SavedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(company)
	var out []domain.SavedCandidate
	for _, rec := range s.saved {
		if strings.Contains(strings.ToLower(rec.Company), q) {
			out = append(out, rec)
		}
	}
	return out
}
