package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkov/userauth/internal/common"
	"github.com/avolkov/userauth/internal/dbx"
	"github.com/avolkov/userauth/internal/models"
)

// Config names the table and columns this repository works with. All of it
// is trusted configuration: names are rendered into statement text, values
// are always parameter-bound.
type Config struct {
	Table          string
	IDColumn       string
	LoginColumn    string
	PasswordColumn string

	// LookupQuery is the login-lookup template with {{table}} and {{login}}
	// placeholders. The row is fetched whole so callers can see
	// application-specific columns.
	LookupQuery string
}

type PostgresRepository struct {
	db  dbx.DBTX
	cfg Config
}

func NewPostgresRepository(db dbx.DBTX, cfg Config) *PostgresRepository {
	return &PostgresRepository{db: db, cfg: cfg}
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := dbx.Render(r.cfg.LookupQuery, map[string]string{
		"table": r.cfg.Table,
		"login": r.cfg.LoginColumn,
	})

	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		return nil, common.ErrorNotFound
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	fields := make(map[string]any, len(columns))
	for i, c := range columns {
		if b, ok := values[i].([]byte); ok {
			values[i] = string(b)
		}
		fields[c] = values[i]
	}

	return &models.User{
		ID:             dbx.AsString(fields[r.cfg.IDColumn]),
		Login:          dbx.AsString(fields[r.cfg.LoginColumn]),
		PasswordDigest: dbx.AsString(fields[r.cfg.PasswordColumn]),
		Fields:         fields,
	}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	stmt := dbx.BuildInsert(r.cfg.Table, fields, r.cfg.IDColumn)

	var id any
	if err := r.db.QueryRowContext(ctx, stmt.Query, stmt.Values...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return dbx.AsString(id), nil
}
