package gateway

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"candidate-tracker/internal/domain"
)

// Each collection exposes the same row-based protocol: insert, full-row
// update by id, delete, batched delete, and select-all newest first. The
// remote store is the source of truth on cold start; callers treat their
// in-memory copies as a write-through cache.

type UserGateway interface {
	Insert(ctx context.Context, row UserRow) (UserRow, error)
	Update(ctx context.Context, id uuid.UUID, row UserRow) (UserRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	SelectAll(ctx context.Context) ([]UserRow, error)
}

type CandidateGateway interface {
	Insert(ctx context.Context, row CandidateRow) (CandidateRow, error)
	Update(ctx context.Context, id uuid.UUID, row CandidateRow) (CandidateRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	SelectAll(ctx context.Context) ([]CandidateRow, error)
}

type SavedCandidateGateway interface {
	Insert(ctx context.Context, row SavedCandidateRow) (SavedCandidateRow, error)
	Update(ctx context.Context, id uuid.UUID, row SavedCandidateRow) (SavedCandidateRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	SelectAll(ctx context.Context) ([]SavedCandidateRow, error)
}

type InterviewGateway interface {
	Insert(ctx context.Context, row InterviewRow) (InterviewRow, error)
	Update(ctx context.Context, id uuid.UUID, row InterviewRow) (InterviewRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	SelectAll(ctx context.Context) ([]InterviewRow, error)
}

type NotificationGateway interface {
	Insert(ctx context.Context, row NotificationRow) (NotificationRow, error)
	Update(ctx context.Context, id uuid.UUID, row NotificationRow) (NotificationRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	SelectAll(ctx context.Context) ([]NotificationRow, error)
}

type Gateways struct {
	Users           UserGateway
	Candidates      CandidateGateway
	SavedCandidates SavedCandidateGateway
	Interviews      InterviewGateway
	Notifications   NotificationGateway
}

func NewGateways(db *sqlx.DB) *Gateways {
	return &Gateways{
		Users:           NewUserGateway(db),
		Candidates:      NewCandidateGateway(db),
		SavedCandidates: NewSavedCandidateGateway(db),
		Interviews:      NewInterviewGateway(db),
		Notifications:   NewNotificationGateway(db),
	}
}

// uuidArray renders ids for `= ANY($1::uuid[])` batch predicates.
func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// wrapErr turns a driver error into the typed failure callers handle: a
// missing target id becomes NotFoundError, anything else a
// PersistenceError carrying the backend code when lib/pq reports one.
func wrapErr(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}
	code := ""
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code = string(pqErr.Code)
	}
	return &domain.PersistenceError{Op: op, Code: code, Err: err}
}
