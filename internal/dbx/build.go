package dbx

import (
	"fmt"
	"sort"
	"strings"
)

// QuoteIdent quotes a table or column name for PostgreSQL. Identifiers are
// only ever taken from trusted configuration, never from user input; quoting
// still protects against names that collide with keywords.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Render substitutes {{name}} placeholders in a statement template with
// quoted identifiers. Placeholders without a replacement are left intact.
// Bind parameters ($1, $2, ...) pass through untouched.
func Render(template string, idents map[string]string) string {
	out := template
	for name, ident := range idents {
		out = strings.ReplaceAll(out, "{{"+name+"}}", QuoteIdent(ident))
	}
	return out
}

// InsertStatement is a prepared parameterized INSERT: the query text with
// positional placeholders and the values to bind, in matching order.
type InsertStatement struct {
	Query  string
	Values []any
}

// BuildInsert prepares an INSERT into table from the given column/value map.
// Columns are sorted so the statement text is deterministic for a given
// field set. If returning is non-empty, a RETURNING clause is appended.
func BuildInsert(table string, fields map[string]any, returning string) InsertStatement {
	columns := make([]string, 0, len(fields))
	for c := range fields {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, c := range columns {
		quoted[i] = QuoteIdent(c)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		values[i] = fields[c]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	if returning != "" {
		query += " RETURNING " + QuoteIdent(returning)
	}

	return InsertStatement{Query: query, Values: values}
}
