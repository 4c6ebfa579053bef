package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type candidateGateway struct {
	db *sqlx.DB
}

func NewCandidateGateway(db *sqlx.DB) CandidateGateway {
	return &candidateGateway{db: db}
}

func (g *candidateGateway) Insert(ctx context.Context, row CandidateRow) (CandidateRow, error) {
	query := `
		INSERT INTO candidates (
			id, name, national_id, birth_date, region, qualification,
			marital_status, company, position, offer_date, offer_result,
			status, notes, created_by, is_rejected_before,
			previous_rejection_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING *`

	var out CandidateRow
	err := g.db.QueryRowxContext(ctx, query,
		row.ID, row.Name, row.NationalID, row.BirthDate, row.Region, row.Qualification,
		row.MaritalStatus, row.Company, row.Position, row.OfferDate, row.OfferResult,
		row.Status, row.Notes, row.CreatedBy, row.IsRejectedBefore,
		row.PreviousRejectionDate, row.CreatedAt, row.UpdatedAt,
	).StructScan(&out)
	return out, wrapErr("insert candidate", "candidate", row.ID.String(), err)
}

func (g *candidateGateway) Update(ctx context.Context, id uuid.UUID, row CandidateRow) (CandidateRow, error) {
	query := `
		UPDATE candidates
		SET name = $2, national_id = $3, birth_date = $4, region = $5,
			qualification = $6, marital_status = $7, company = $8, position = $9,
			offer_date = $10, offer_result = $11, status = $12, notes = $13,
			created_by = $14, is_rejected_before = $15, previous_rejection_date = $16,
			updated_at = $17
		WHERE id = $1
		RETURNING *`

	var out CandidateRow
	err := g.db.QueryRowxContext(ctx, query,
		id, row.Name, row.NationalID, row.BirthDate, row.Region,
		row.Qualification, row.MaritalStatus, row.Company, row.Position,
		row.OfferDate, row.OfferResult, row.Status, row.Notes,
		row.CreatedBy, row.IsRejectedBefore, row.PreviousRejectionDate,
		row.UpdatedAt,
	).StructScan(&out)
	return out, wrapErr("update candidate", "candidate", id.String(), err)
}

func (g *candidateGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	return wrapErr("delete candidate", "candidate", id.String(), err)
}

func (g *candidateGateway) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	return wrapErr("delete candidates", "candidate", "", err)
}

func (g *candidateGateway) SelectAll(ctx context.Context) ([]CandidateRow, error) {
	var rows []CandidateRow
	err := g.db.SelectContext(ctx, &rows, `SELECT * FROM candidates ORDER BY created_at DESC`)
	return rows, wrapErr("select candidates", "candidate", "", err)
}
