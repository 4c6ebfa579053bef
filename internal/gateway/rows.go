package gateway

import (
	"time"

	"github.com/google/uuid"
)

// Wire rows mirror the backend column schema: snake_case columns, pointers
// for nullable fields. Business logic never touches these types directly;
// the mapper package translates them to and from domain entities.

type UserRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Department   string    `db:"department"`
	CreatedAt    time.Time `db:"created_at"`
}

type CandidateRow struct {
	ID                    uuid.UUID `db:"id"`
	Name                  string    `db:"name"`
	NationalID            string    `db:"national_id"`
	BirthDate             string    `db:"birth_date"`
	Region                string    `db:"region"`
	Qualification         string    `db:"qualification"`
	MaritalStatus         string    `db:"marital_status"`
	Company               string    `db:"company"`
	Position              *string   `db:"position"`
	OfferDate             string    `db:"offer_date"`
	OfferResult           string    `db:"offer_result"`
	Status                string    `db:"status"`
	Notes                 *string   `db:"notes"`
	CreatedBy             string    `db:"created_by"`
	IsRejectedBefore      bool      `db:"is_rejected_before"`
	PreviousRejectionDate *string   `db:"previous_rejection_date"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

type SavedCandidateRow struct {
	ID                    uuid.UUID `db:"id"`
	Name                  string    `db:"name"`
	NationalID            string    `db:"national_id"`
	BirthDate             string    `db:"birth_date"`
	Region                string    `db:"region"`
	Qualification         string    `db:"qualification"`
	MaritalStatus         string    `db:"marital_status"`
	Company               string    `db:"company"`
	Position              *string   `db:"position"`
	OfferDate             string    `db:"offer_date"`
	FinalResult           string    `db:"final_result"`
	DecisionDate          time.Time `db:"decision_date"`
	DecisionBy            string    `db:"decision_by"`
	Notes                 *string   `db:"notes"`
	WorkShift             *string   `db:"work_shift"`
	ExclusionReason       *string   `db:"exclusion_reason"`
	ResignationReason     *string   `db:"resignation_reason"`
	IsRejectedBefore      bool      `db:"is_rejected_before"`
	PreviousRejectionDate *string   `db:"previous_rejection_date"`
	CreatedAt             time.Time `db:"created_at"`
}

type InterviewRow struct {
	ID            uuid.UUID `db:"id"`
	CandidateID   uuid.UUID `db:"candidate_id"`
	CandidateName string    `db:"candidate_name"`
	Position      string    `db:"position"`
	Date          string    `db:"date"`
	Time          string    `db:"time"`
	Status        string    `db:"status"`
	Notes         *string   `db:"notes"`
	Interviewer   string    `db:"interviewer"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type NotificationRow struct {
	ID            uuid.UUID `db:"id"`
	Type          string    `db:"type"`
	Title         string    `db:"title"`
	Message       string    `db:"message"`
	CandidateID   uuid.UUID `db:"candidate_id"`
	CandidateName string    `db:"candidate_name"`
	IsRead        bool      `db:"is_read"`
	CreatedAt     time.Time `db:"created_at"`
}
