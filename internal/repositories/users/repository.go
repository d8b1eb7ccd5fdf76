// Package users provides lookup and creation of user records in the
// configured users table.
package users

import (
	"context"

	"github.com/avolkov/userauth/internal/models"
)

// Repository is the user-record access interface consumed by the
// orchestrator.
type Repository interface {
	// GetByLogin fetches the full user row matching the configured login
	// column. Returns common.ErrorNotFound when no row matches.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	// Create inserts a user from the given column/value set and returns the
	// newly assigned identifier. Returns common.ErrorAlreadyExists on a
	// unique-constraint violation.
	Create(ctx context.Context, fields map[string]any) (string, error)
}
