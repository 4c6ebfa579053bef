package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type interviewGateway struct {
	db *sqlx.DB
}

func NewInterviewGateway(db *sqlx.DB) InterviewGateway {
	return &interviewGateway{db: db}
}

func (g *interviewGateway) Insert(ctx context.Context, row InterviewRow) (InterviewRow, error) {
	query := `
		INSERT INTO interviews (
			id, candidate_id, candidate_name, position, date, time,
			status, notes, interviewer, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING *`

	var out InterviewRow
	err := g.db.QueryRowxContext(ctx, query,
		row.ID, row.CandidateID, row.CandidateName, row.Position, row.Date, row.Time,
		row.Status, row.Notes, row.Interviewer, row.CreatedAt, row.UpdatedAt,
	).StructScan(&out)
	return out, wrapErr("insert interview", "interview", row.ID.String(), err)
}

func (g *interviewGateway) Update(ctx context.Context, id uuid.UUID, row InterviewRow) (InterviewRow, error) {
	query := `
		UPDATE interviews
		SET candidate_id = $2, candidate_name = $3, position = $4, date = $5,
			time = $6, status = $7, notes = $8, interviewer = $9, updated_at = $10
		WHERE id = $1
		RETURNING *`

	var out InterviewRow
	err := g.db.QueryRowxContext(ctx, query,
		id, row.CandidateID, row.CandidateName, row.Position, row.Date,
		row.Time, row.Status, row.Notes, row.Interviewer, row.UpdatedAt,
	).StructScan(&out)
	return out, wrapErr("update interview", "interview", id.String(), err)
}

func (g *interviewGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	return wrapErr("delete interview", "interview", id.String(), err)
}

func (g *interviewGateway) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM interviews WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	return wrapErr("delete interviews", "interview", "", err)
}

func (g *interviewGateway) SelectAll(ctx context.Context) ([]InterviewRow, error) {
	var rows []InterviewRow
	err := g.db.SelectContext(ctx, &rows, `SELECT * FROM interviews ORDER BY created_at DESC`)
	return rows, wrapErr("select interviews", "interview", "", err)
}
