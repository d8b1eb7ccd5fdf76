// Package storage opens the PostgreSQL connection pool used by the
// authentication core and applies the embedded schema migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avolkov/userauth/internal/storage/migrations"
)

// Postgres owns the *sql.DB pool. The pool is the only shared mutable
// resource in the process; its connection limit bounds concurrency.
type Postgres struct {
	db *sql.DB
}

// Open connects to the database, applies connection-pool limits, and runs
// pending migrations. maxOpenConns <= 0 leaves the driver default.
func Open(ctx context.Context, dsn string, maxOpenConns int) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	p := &Postgres{db: db}
	if err := p.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return p, nil
}

func (p *Postgres) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, p.db, ".")
}

// DB exposes the pool for repository construction.
func (p *Postgres) DB() *sql.DB {
	return p.db
}

// Ping checks that the database is reachable.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
