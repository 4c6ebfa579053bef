package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userGateway struct {
	db *sqlx.DB
}

func NewUserGateway(db *sqlx.DB) UserGateway {
	return &userGateway{db: db}
}

func (g *userGateway) Insert(ctx context.Context, row UserRow) (UserRow, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	var out UserRow
	err := g.db.QueryRowxContext(ctx, query,
		row.ID, row.Name, row.Email, row.PasswordHash, row.Role, row.Department, row.CreatedAt,
	).StructScan(&out)
	return out, wrapErr("insert user", "user", row.ID.String(), err)
}

func (g *userGateway) Update(ctx context.Context, id uuid.UUID, row UserRow) (UserRow, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, department = $6
		WHERE id = $1
		RETURNING *`

	var out UserRow
	err := g.db.QueryRowxContext(ctx, query,
		id, row.Name, row.Email, row.PasswordHash, row.Role, row.Department,
	).StructScan(&out)
	return out, wrapErr("update user", "user", id.String(), err)
}

func (g *userGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return wrapErr("delete user", "user", id.String(), err)
}

func (g *userGateway) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM users WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	return wrapErr("delete users", "user", "", err)
}

func (g *userGateway) SelectAll(ctx context.Context) ([]UserRow, error) {
	var rows []UserRow
	err := g.db.SelectContext(ctx, &rows, `SELECT * FROM users ORDER BY created_at DESC`)
	return rows, wrapErr("select users", "user", "", err)
}
