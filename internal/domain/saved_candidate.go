package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedCandidate is the permanent decision record for one identity.
// Invariant: at most one record per NationalID; a later decision for the
// same identity updates the existing record in place.
type SavedCandidate struct {
	ID                    uuid.UUID     `json:"id"`
	Name                  string        `json:"name"`
	NationalID            string        `json:"national_id"`
	BirthDate             string        `json:"birth_date"`
	Region                string        `json:"region"`
	Qualification         string        `json:"qualification"`
	MaritalStatus         MaritalStatus `json:"marital_status"`
	Company               string        `json:"company"`
	Position              string        `json:"position,omitempty"`
	OfferDate             string        `json:"offer_date"`
	FinalResult           FinalResult   `json:"final_result"`
	DecisionDate          time.Time     `json:"decision_date"`
	DecisionBy            string        `json:"decision_by"`
	Notes                 string        `json:"notes,omitempty"`
	WorkShift             WorkShift     `json:"work_shift,omitempty"`
	ExclusionReason       string        `json:"exclusion_reason,omitempty"`
	ResignationReason     string        `json:"resignation_reason,omitempty"`
	IsRejectedBefore      bool          `json:"is_rejected_before"`
	PreviousRejectionDate string        `json:"previous_rejection_date,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
}

type FinalResult string

const (
	FinalAccepted FinalResult = "accepted"
	FinalRejected FinalResult = "rejected"
	FinalExcluded FinalResult = "excluded"
	FinalResigned FinalResult = "resigned"
)

func (f FinalResult) IsValid() bool {
	switch f {
	case FinalAccepted, FinalRejected, FinalExcluded, FinalResigned:
		return true
	default:
		return false
	}
}

type WorkShift string

const (
	ShiftDay   WorkShift = "day"
	ShiftNight WorkShift = "night"
)

// SavedCandidateInput is a fully-specified archive row as produced by the
// bulk importer. Unlike interactive decision saving it carries its own
// decision metadata instead of stamping the session user.
type SavedCandidateInput struct {
	Name          string        `json:"name" validate:"required,min=2"`
	NationalID    string        `json:"national_id" validate:"required,min=5"`
	BirthDate     string        `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Region        string        `json:"region" validate:"required"`
	Qualification string        `json:"qualification" validate:"required"`
	MaritalStatus MaritalStatus `json:"marital_status" validate:"required,oneof=single married divorced widowed"`
	Company       string        `json:"company" validate:"required"`
	Position      string        `json:"position"`
	OfferDate     string        `json:"offer_date" validate:"omitempty,datetime=2006-01-02"`
	FinalResult   FinalResult   `json:"final_result" validate:"required,oneof=accepted rejected excluded resigned"`
	DecisionDate  string        `json:"decision_date" validate:"omitempty,datetime=2006-01-02"`
	DecisionBy    string        `json:"decision_by"`
	Notes         string        `json:"notes"`
}

// DecisionOptions carries the optional fields of an interactive decision.
type DecisionOptions struct {
	Notes             string    `json:"notes"`
	WorkShift         WorkShift `json:"work_shift"`
	ExclusionReason   string    `json:"exclusion_reason"`
	ResignationReason string    `json:"resignation_reason"`
}
