package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type savedCandidateGateway struct {
	db *sqlx.DB
}

func NewSavedCandidateGateway(db *sqlx.DB) SavedCandidateGateway {
	return &savedCandidateGateway{db: db}
}

func (g *savedCandidateGateway) Insert(ctx context.Context, row SavedCandidateRow) (SavedCandidateRow, error) {
	query := `
		INSERT INTO saved_candidates (
			id, name, national_id, birth_date, region, qualification,
			marital_status, company, position, offer_date, final_result,
			decision_date, decision_by, notes, work_shift, exclusion_reason,
			resignation_reason, is_rejected_before, previous_rejection_date,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING *`

	var out SavedCandidateRow
	err := g.db.QueryRowxContext(ctx, query,
		row.ID, row.Name, row.NationalID, row.BirthDate, row.Region, row.Qualification,
		row.MaritalStatus, row.Company, row.Position, row.OfferDate, row.FinalResult,
		row.DecisionDate, row.DecisionBy, row.Notes, row.WorkShift, row.ExclusionReason,
		row.ResignationReason, row.IsRejectedBefore, row.PreviousRejectionDate,
		row.CreatedAt,
	).StructScan(&out)
	return out, wrapErr("insert saved candidate", "saved candidate", row.ID.String(), err)
}

func (g *savedCandidateGateway) Update(ctx context.Context, id uuid.UUID, row SavedCandidateRow) (SavedCandidateRow, error) {
	query := `
		UPDATE saved_candidates
		SET name = $2, national_id = $3, birth_date = $4, region = $5,
			qualification = $6, marital_status = $7, company = $8, position = $9,
			offer_date = $10, final_result = $11, decision_date = $12,
			decision_by = $13, notes = $14, work_shift = $15,
			exclusion_reason = $16, resignation_reason = $17,
			is_rejected_before = $18, previous_rejection_date = $19
		WHERE id = $1
		RETURNING *`

	var out SavedCandidateRow
	err := g.db.QueryRowxContext(ctx, query,
		id, row.Name, row.NationalID, row.BirthDate, row.Region,
		row.Qualification, row.MaritalStatus, row.Company, row.Position,
		row.OfferDate, row.FinalResult, row.DecisionDate,
		row.DecisionBy, row.Notes, row.WorkShift,
		row.ExclusionReason, row.ResignationReason,
		row.IsRejectedBefore, row.PreviousRejectionDate,
	).StructScan(&out)
	return out, wrapErr("update saved candidate", "saved candidate", id.String(), err)
}

func (g *savedCandidateGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM saved_candidates WHERE id = $1`, id)
	return wrapErr("delete saved candidate", "saved candidate", id.String(), err)
}

func (g *savedCandidateGateway) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM saved_candidates WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	return wrapErr("delete saved candidates", "saved candidate", "", err)
}

func (g *savedCandidateGateway) SelectAll(ctx context.Context) ([]SavedCandidateRow, error) {
	var rows []SavedCandidateRow
	err := g.db.SelectContext(ctx, &rows, `SELECT * FROM saved_candidates ORDER BY created_at DESC`)
	return rows, wrapErr("select saved candidates", "saved candidate", "", err)
}
