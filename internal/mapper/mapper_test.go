package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

func TestCandidateRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.UTC)
	c := domain.Candidate{
		ID:                    uuid.New(),
		Name:                  "Jordan Reyes",
		NationalID:            "29001011234567",
		BirthDate:             "1992-03-14",
		Region:                "North",
		Qualification:         "Bachelor",
		MaritalStatus:         domain.MaritalMarried,
		Company:               "Acme",
		Position:              "Technician",
		OfferDate:             "2024-05-01",
		OfferResult:           domain.OfferPending,
		Status:                domain.StatusUnderReview,
		Notes:                 "called back twice",
		CreatedBy:             "Eli Employee",
		IsRejectedBefore:      true,
		PreviousRejectionDate: "2023-11-05",
		CreatedAt:             ts,
		UpdatedAt:             ts,
	}

	assert.Equal(t, c, mapper.CandidateFromRow(mapper.CandidateToRow(c)))
}

func TestCandidateNullableColumns(t *testing.T) {
	c := domain.Candidate{ID: uuid.New(), Name: "Minimal"}

	row := mapper.CandidateToRow(c)
	assert.Nil(t, row.Position, "empty optional maps to NULL")
	assert.Nil(t, row.Notes)
	assert.Nil(t, row.PreviousRejectionDate)

	back := mapper.CandidateFromRow(row)
	assert.Empty(t, back.Position)
	assert.Empty(t, back.PreviousRejectionDate)
}

func TestSavedCandidateRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.UTC)
	rec := domain.SavedCandidate{
		ID:               uuid.New(),
		Name:             "Jordan Reyes",
		NationalID:       "29001011234567",
		BirthDate:        "1992-03-14",
		Region:           "North",
		Qualification:    "Bachelor",
		MaritalStatus:    domain.MaritalSingle,
		Company:          "Acme",
		OfferDate:        "2024-05-01",
		FinalResult:      domain.FinalExcluded,
		DecisionDate:     ts,
		DecisionBy:       "Mara Manager",
		WorkShift:        domain.ShiftNight,
		ExclusionReason:  "failed medical check",
		IsRejectedBefore: false,
		CreatedAt:        ts,
	}

	assert.Equal(t, rec, mapper.SavedCandidateFromRow(mapper.SavedCandidateToRow(rec)))
}

func TestInterviewRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.July, 15, 9, 0, 0, 0, time.UTC)
	iv := domain.Interview{
		ID:            uuid.New(),
		CandidateID:   uuid.New(),
		CandidateName: "Jordan Reyes",
		Position:      "Technician",
		Date:          "2024-07-15",
		Time:          "14:30",
		Status:        domain.InterviewScheduled,
		Interviewer:   "Mara Manager",
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	row := mapper.InterviewToRow(iv)
	assert.Nil(t, row.Notes)
	assert.Equal(t, iv, mapper.InterviewFromRow(row))
}

func TestNotificationRoundTrip(t *testing.T) {
	n := domain.Notification{
		ID:            uuid.New(),
		Type:          domain.NotifDuplicateRejection,
		Title:         "Previously rejected candidate",
		Message:       "New candidate Jordan Reyes was previously rejected on 2023-11-05",
		CandidateID:   uuid.New(),
		CandidateName: "Jordan Reyes",
		CreatedAt:     time.Now().UTC(),
	}

	assert.Equal(t, n, mapper.NotificationFromRow(mapper.NotificationToRow(n)))
}

func TestUserRoundTrip(t *testing.T) {
	u := domain.User{
		ID:           uuid.New(),
		Name:         "Ada Admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$x",
		Role:         domain.RoleAdmin,
		Department:   "Management",
		CreatedAt:    time.Now().UTC(),
	}

	row := mapper.UserToRow(u)
	assert.Equal(t, string(domain.RoleAdmin), row.Role)
	assert.Equal(t, u, mapper.UserFromRow(row))
}

// WorkShift rides in a nullable text column; an unset shift must survive
// the trip as the zero value, not as a NULL-turned-empty mismatch.
func TestWorkShiftNullable(t *testing.T) {
	rec := domain.SavedCandidate{ID: uuid.New(), Name: "No Shift", FinalResult: domain.FinalRejected}

	row := mapper.SavedCandidateToRow(rec)
	assert.Nil(t, row.WorkShift)

	back := mapper.SavedCandidateFromRow(row)
	assert.Equal(t, domain.WorkShift(""), back.WorkShift)
}
