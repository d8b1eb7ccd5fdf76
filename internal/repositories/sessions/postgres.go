package sessions

import (
	"context"
	"fmt"

	"github.com/avolkov/userauth/internal/dbx"
)

// Config names the sessions table and its two columns. Trusted
// configuration only; values are always parameter-bound.
type Config struct {
	Table      string
	IDColumn   string
	UserColumn string
}

type PostgresRepository struct {
	db  dbx.DBTX
	cfg Config
}

func NewPostgresRepository(db dbx.DBTX, cfg Config) *PostgresRepository {
	return &PostgresRepository{db: db, cfg: cfg}
}

func (r *PostgresRepository) Create(ctx context.Context, sessionID, userID string) error {
	stmt := dbx.BuildInsert(r.cfg.Table, map[string]any{
		r.cfg.IDColumn:   sessionID,
		r.cfg.UserColumn: userID,
	}, "")

	if _, err := r.db.ExecContext(ctx, stmt.Query, stmt.Values...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, sessionID, userID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2",
		dbx.QuoteIdent(r.cfg.Table), dbx.QuoteIdent(r.cfg.IDColumn), dbx.QuoteIdent(r.cfg.UserColumn))

	if _, err := r.db.ExecContext(ctx, query, sessionID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
