package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the working record for an applicant under review. Its
// natural key is NationalID: one physical person, one national id.
// Calendar dates (birth, offer) are YYYY-MM-DD strings as they arrive
// from the intake forms; only audit timestamps are time.Time.
type Candidate struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	NationalID            string          `json:"national_id"`
	BirthDate             string          `json:"birth_date"`
	Region                string          `json:"region"`
	Qualification         string          `json:"qualification"`
	MaritalStatus         MaritalStatus   `json:"marital_status"`
	Company               string          `json:"company"`
	Position              string          `json:"position,omitempty"`
	OfferDate             string          `json:"offer_date"`
	OfferResult           OfferResult     `json:"offer_result"`
	Status                CandidateStatus `json:"status"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedBy             string          `json:"created_by"`
	IsRejectedBefore      bool            `json:"is_rejected_before"`
	PreviousRejectionDate string          `json:"previous_rejection_date,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	default:
		return false
	}
}

type OfferResult string

const (
	OfferAccepted OfferResult = "accepted"
	OfferRejected OfferResult = "rejected"
	OfferExcluded OfferResult = "excluded"
	OfferPending  OfferResult = "pending"
)

// IsTerminal reports whether the result is final and triggers archival.
func (o OfferResult) IsTerminal() bool {
	switch o {
	case OfferAccepted, OfferRejected, OfferExcluded:
		return true
	default:
		return false
	}
}

func (o OfferResult) IsValid() bool {
	return o.IsTerminal() || o == OfferPending
}

type CandidateStatus string

const (
	StatusNew         CandidateStatus = "new"
	StatusUnderReview CandidateStatus = "under_review"
	StatusHired       CandidateStatus = "hired"
	StatusRejected    CandidateStatus = "rejected"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusUnderReview, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

type CreateCandidateInput struct {
	Name          string        `json:"name" validate:"required,min=2"`
	NationalID    string        `json:"national_id" validate:"required,min=5"`
	BirthDate     string        `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Region        string        `json:"region" validate:"required"`
	Qualification string        `json:"qualification" validate:"required"`
	MaritalStatus MaritalStatus `json:"marital_status" validate:"required,oneof=single married divorced widowed"`
	Company       string        `json:"company" validate:"required"`
	Position      string        `json:"position"`
	OfferDate     string        `json:"offer_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string        `json:"notes"`
}
