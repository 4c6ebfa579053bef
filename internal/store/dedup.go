package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
)

// RemoveDuplicates reconciles archive records that share a national id,
// which can appear when two operators race the same decision against the
// backend. The newest record per identity survives; the rest are removed
// in one batched gateway call. Ties on creation time break on id so
// repeated sweeps always pick the same survivor. Returns the number of
// records removed.
func (s *Store) RemoveDuplicates(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("remove duplicate archive records", domain.RoleAdmin); err != nil {
		return 0, err
	}

	groups := make(map[string][]domain.SavedCandidate)
	for _, rec := range s.saved {
		groups[rec.NationalID] = append(groups[rec.NationalID], rec)
	}

	var removeIDs []uuid.UUID
	for _, recs := range groups {
		if len(recs) < 2 {
			continue
		}
		sort.Slice(recs, func(i, j int) bool {
			if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
				return recs[i].CreatedAt.After(recs[j].CreatedAt)
			}
			return recs[i].ID.String() > recs[j].ID.String()
		})
		for _, rec := range recs[1:] {
			removeIDs = append(removeIDs, rec.ID)
		}
	}

	if len(removeIDs) == 0 {
		return 0, nil
	}

	if err := s.gw.SavedCandidates.DeleteMany(ctx, removeIDs); err != nil {
		return 0, err
	}

	drop := make(map[uuid.UUID]bool, len(removeIDs))
	for _, id := range removeIDs {
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
	return len(removeIDs), nil
}
