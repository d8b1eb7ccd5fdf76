// Package sessions persists session records binding a session identifier to
// the user it was created for.
package sessions

import "context"

// Repository is the session-store interface consumed by the orchestrator.
// There is deliberately no read operation: token signature validity is
// treated as proof of a live session.
type Repository interface {
	// Create writes one session row.
	Create(ctx context.Context, sessionID, userID string) error

	// Delete removes the session row for the pair. Deleting a non-existent
	// pair is not an error.
	Delete(ctx context.Context, sessionID, userID string) error
}
