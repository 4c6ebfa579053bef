package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-tracker/internal/domain"
)

func TestDeleteSavedCandidates(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single delete is admin only", func(t *testing.T) {
		backend := newFakeBackend()
		id := backend.seedArchived("4440001", domain.FinalAccepted, base, base)
		st, _ := newTestStore(t, backend, nil)

		loginAs(t, st, "manager@example.com")
		var perm *domain.PermissionError
		assert.ErrorAs(t, st.DeleteSavedCandidate(ctx, id), &perm)

		loginAs(t, st, "admin@example.com")
		require.NoError(t, st.DeleteSavedCandidate(ctx, id))
		assert.Empty(t, st.SavedCandidates())
	})

	t.Run("bulk delete uses one backend call", func(t *testing.T) {
		backend := newFakeBackend()
		a := backend.seedArchived("4440002", domain.FinalAccepted, base, base)
		b := backend.seedArchived("4440003", domain.FinalRejected, base, base)
		keep := backend.seedArchived("4440004", domain.FinalAccepted, base, base)

		st, _ := newTestStore(t, backend, nil)
		loginAs(t, st, "admin@example.com")

		require.NoError(t, st.DeleteSavedCandidates(ctx, []uuid.UUID{a, b}))

		remaining := st.SavedCandidates()
		require.Len(t, remaining, 1)
		assert.Equal(t, keep, remaining[0].ID)
		assert.Len(t, backend.saved.rows, 1)
	})
}

func TestSavedCandidateQueries(t *testing.T) {
	base := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	backend := newFakeBackend()
	backend.seedArchived("5550001", domain.FinalAccepted, base, base)
	backend.seedArchived("5550002", domain.FinalRejected, base, base)
	backend.seedArchived("5550003", domain.FinalRejected, base, base)

	st, _ := newTestStore(t, backend, nil)

	assert.Len(t, st.SavedCandidatesByResult(domain.FinalRejected), 2)
	assert.Len(t, st.SavedCandidatesByResult(domain.FinalAccepted), 1)
	assert.Empty(t, st.SavedCandidatesByResult(domain.FinalResigned))

	assert.Len(t, st.SavedCandidatesByCompany("Acme"), 3)
	assert.Empty(t, st.SavedCandidatesByCompany("Globex"))

	assert.Len(t, st.SearchSavedCandidates("5550002"), 1)
	assert.Len(t, st.SearchSavedCandidates("archived"), 3)
}
