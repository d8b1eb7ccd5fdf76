// Package logging defines the minimal structured-logging interface the
// authentication core reports through. Implementations can wrap slog, zap,
// zerolog, or a test recorder.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// interpreted as key-value pairs:
//
//	log.Info(ctx, "session stored", "session_id", sid, "user_id", uid)
type Logger interface {
	// Debug logs verbose diagnostics (prepared statements, decoded claims).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions (undecodable logout token).
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
