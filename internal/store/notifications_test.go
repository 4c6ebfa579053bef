package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-tracker/internal/domain"
)

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks and is idempotent", func(t *testing.T) {
		backend := newFakeBackend()
		backend.seedArchived("1231231", domain.FinalRejected, time.Now().UTC(), time.Now().UTC())
		st, _ := newTestStore(t, backend, nil)
		loginAs(t, st, "employee@example.com")

		_, err := st.AddCandidate(ctx, candidateInput("1231231"))
		require.NoError(t, err)
		require.Len(t, st.UnreadNotifications(), 1)
		notifID := st.Notifications()[0].ID

		require.NoError(t, st.MarkNotificationRead(ctx, notifID))
		assert.Empty(t, st.UnreadNotifications())
		assert.True(t, st.Notifications()[0].IsRead)
		assert.Len(t, st.Notifications(), 1, "read notifications are kept")

		// Second mark is a no-op, not an error.
		backend.notifications.updateErr = errors.New("would fail if called")
		assert.NoError(t, st.MarkNotificationRead(ctx, notifID))
	})

	t.Run("requires a session", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)

		err := st.MarkNotificationRead(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("unknown notification", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)
		loginAs(t, st, "employee@example.com")

		var notFound *domain.NotFoundError
		assert.ErrorAs(t, st.MarkNotificationRead(ctx, uuid.New()), &notFound)
	})
}
