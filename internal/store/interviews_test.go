package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-tracker/internal/domain"
)

func interviewInput(candidateID uuid.UUID) domain.CreateInterviewInput {
	return domain.CreateInterviewInput{
		CandidateID:   candidateID,
		CandidateName: "Jordan Reyes",
		Position:      "Technician",
		Date:          "2024-07-15",
		Time:          "14:30",
		Notes:         "first round",
	}
}

func TestAddInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("manager schedules, interviewer stamped", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)
		loginAs(t, st, "manager@example.com")

		iv, err := st.AddInterview(ctx, interviewInput(uuid.New()))
		require.NoError(t, err)

		assert.Equal(t, domain.InterviewScheduled, iv.Status)
		assert.Equal(t, "Mara Manager", iv.Interviewer)
		assert.Equal(t, 1, st.Stats().PendingInterviews)
	})

	t.Run("employee may not schedule", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)
		loginAs(t, st, "employee@example.com")

		_, err := st.AddInterview(ctx, interviewInput(uuid.New()))
		var perm *domain.PermissionError
		assert.ErrorAs(t, err, &perm)
		assert.Empty(t, st.Interviews())
	})
}

func TestUpdateInterview(t *testing.T) {
	ctx := context.Background()

	backend := newFakeBackend()
	st, _ := newTestStore(t, backend, nil)
	loginAs(t, st, "manager@example.com")

	iv, err := st.AddInterview(ctx, interviewInput(uuid.New()))
	require.NoError(t, err)

	t.Run("only set fields change", func(t *testing.T) {
		newTime := "16:00"
		updated, err := st.UpdateInterview(ctx, iv.ID, domain.UpdateInterviewInput{Time: &newTime})
		require.NoError(t, err)

		assert.Equal(t, "16:00", updated.Time)
		assert.Equal(t, iv.Date, updated.Date)
		assert.Equal(t, iv.Position, updated.Position)
	})

	t.Run("completing moves the stats", func(t *testing.T) {
		completed := domain.InterviewCompleted
		_, err := st.UpdateInterview(ctx, iv.ID, domain.UpdateInterviewInput{Status: &completed})
		require.NoError(t, err)

		stats := st.Stats()
		assert.Equal(t, 0, stats.PendingInterviews)
		assert.Equal(t, 1, stats.CompletedInterviews)
	})

	t.Run("unknown interview", func(t *testing.T) {
		var notFound *domain.NotFoundError
		_, err := st.UpdateInterview(ctx, uuid.New(), domain.UpdateInterviewInput{})
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteInterview(t *testing.T) {
	ctx := context.Background()

	backend := newFakeBackend()
	st, _ := newTestStore(t, backend, nil)
	loginAs(t, st, "manager@example.com")

	iv, err := st.AddInterview(ctx, interviewInput(uuid.New()))
	require.NoError(t, err)

	t.Run("manager may not delete", func(t *testing.T) {
		var perm *domain.PermissionError
		assert.ErrorAs(t, st.DeleteInterview(ctx, iv.ID), &perm)
	})

	t.Run("admin deletes", func(t *testing.T) {
		loginAs(t, st, "admin@example.com")
		require.NoError(t, st.DeleteInterview(ctx, iv.ID))
		assert.Empty(t, st.Interviews())
		assert.Equal(t, 0, st.Stats().PendingInterviews)
	})
}
