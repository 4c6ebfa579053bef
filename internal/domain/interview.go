package domain

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID            uuid.UUID       `json:"id"`
	CandidateID   uuid.UUID       `json:"candidate_id"`
	CandidateName string          `json:"candidate_name"`
	Position      string          `json:"position"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Status        InterviewStatus `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Interviewer   string          `json:"interviewer"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled:
		return true
	default:
		return false
	}
}

type CreateInterviewInput struct {
	CandidateID   uuid.UUID `json:"candidate_id" validate:"required"`
	CandidateName string    `json:"candidate_name" validate:"required"`
	Position      string    `json:"position" validate:"required"`
	Date          string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string    `json:"time" validate:"required"`
	Notes         string    `json:"notes"`
}

type UpdateInterviewInput struct {
	Position *string          `json:"position,omitempty"`
	Date     *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time     *string          `json:"time,omitempty"`
	Status   *InterviewStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes    *string          `json:"notes,omitempty"`
}
