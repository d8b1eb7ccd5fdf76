package dbx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	require.Equal(t, `"users"`, QuoteIdent("users"))
	require.Equal(t, `"we""ird"`, QuoteIdent(`we"ird`))
}

func TestRender_ReplacesPlaceholdersWithQuotedIdents(t *testing.T) {
	got := Render("SELECT * FROM {{table}} WHERE {{login}} = $1", map[string]string{
		"table": "users",
		"login": "email",
	})
	require.Equal(t, `SELECT * FROM "users" WHERE "email" = $1`, got)
}

func TestRender_LeavesUnknownPlaceholders(t *testing.T) {
	got := Render("SELECT * FROM {{table}} WHERE {{login}} = $1", map[string]string{
		"table": "users",
	})
	require.Equal(t, `SELECT * FROM "users" WHERE {{login}} = $1`, got)
}

func TestBuildInsert_DeterministicColumnOrder(t *testing.T) {
	stmt := BuildInsert("users", map[string]any{
		"password": "digest",
		"email":    "a@b.com",
	}, "id")

	require.Equal(t,
		`INSERT INTO "users" ("email", "password") VALUES ($1, $2) RETURNING "id"`,
		stmt.Query)
	require.Equal(t, []any{"a@b.com", "digest"}, stmt.Values)
}

func TestBuildInsert_NoReturning(t *testing.T) {
	stmt := BuildInsert("sessions", map[string]any{
		"sessionId": "s-1",
		"userId":    "u-1",
	}, "")

	require.Equal(t,
		`INSERT INTO "sessions" ("sessionId", "userId") VALUES ($1, $2)`,
		stmt.Query)
	require.Equal(t, []any{"s-1", "u-1"}, stmt.Values)
}
