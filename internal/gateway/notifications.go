package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type notificationGateway struct {
	db *sqlx.DB
}

func NewNotificationGateway(db *sqlx.DB) NotificationGateway {
	return &notificationGateway{db: db}
}

func (g *notificationGateway) Insert(ctx context.Context, row NotificationRow) (NotificationRow, error) {
	query := `
		INSERT INTO notifications (
			id, type, title, message, candidate_id, candidate_name, is_read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *`

	var out NotificationRow
	err := g.db.QueryRowxContext(ctx, query,
		row.ID, row.Type, row.Title, row.Message, row.CandidateID, row.CandidateName, row.IsRead, row.CreatedAt,
	).StructScan(&out)
	return out, wrapErr("insert notification", "notification", row.ID.String(), err)
}

func (g *notificationGateway) Update(ctx context.Context, id uuid.UUID, row NotificationRow) (NotificationRow, error) {
	query := `
		UPDATE notifications
		SET type = $2, title = $3, message = $4, candidate_id = $5,
			candidate_name = $6, is_read = $7
		WHERE id = $1
		RETURNING *`

	var out NotificationRow
	err := g.db.QueryRowxContext(ctx, query,
		id, row.Type, row.Title, row.Message, row.CandidateID,
		row.CandidateName, row.IsRead,
	).StructScan(&out)
	return out, wrapErr("update notification", "notification", id.String(), err)
}

func (g *notificationGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return wrapErr("delete notification", "notification", id.String(), err)
}

func (g *notificationGateway) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	return wrapErr("delete notifications", "notification", "", err)
}

func (g *notificationGateway) SelectAll(ctx context.Context) ([]NotificationRow, error) {
	var rows []NotificationRow
	err := g.db.SelectContext(ctx, &rows, `SELECT * FROM notifications ORDER BY created_at DESC`)
	return rows, wrapErr("select notifications", "notification", "", err)
}
