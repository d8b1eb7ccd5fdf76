// Package userauth implements the authentication core: credential login,
// registration, session persistence, and signed-token issue/verify/renew.
package userauth

import (
	"time"

	"github.com/avolkov/userauth/internal/auth"
	"github.com/avolkov/userauth/internal/logging"
)

// Defaults for the persisted-state layout. They match the embedded
// migrations; override them when binding to an existing schema.
const (
	DefaultUsersTable    = "users"
	DefaultSessionsTable = "sessions"

	DefaultUserIDField       = "id"
	DefaultUserLoginField    = "email"
	DefaultUserPasswordField = "password"

	DefaultSessionIDField   = "sessionId"
	DefaultSessionUserField = "userId"

	// DefaultLoginQuery fetches the whole row so admission predicates can
	// inspect application-specific columns.
	DefaultLoginQuery = "SELECT * FROM {{table}} WHERE {{login}} = $1"
)

// DefaultRegistrationSchema validates registration candidates: an email
// login and a password of at least six characters. Override to add rules
// for extra columns.
const DefaultRegistrationSchema = `{
	"type": "object",
	"required": ["email", "password"],
	"properties": {
		"email": {"type": "string", "format": "email"},
		"password": {"type": "string", "minLength": 6}
	}
}`

// Tables names the two tables the core touches.
type Tables struct {
	Users    string
	Sessions string
}

// UserFields maps logical user fields to column names.
type UserFields struct {
	ID       string
	Login    string
	Password string
}

// SessionFields maps logical session fields to column names.
type SessionFields struct {
	ID   string
	User string
}

// Queries holds the SQL templates the core renders trusted identifiers
// into. Values are always parameter-bound.
type Queries struct {
	Login string
}

// Config configures a Service. It is immutable after construction: New
// merges it with the documented defaults field by field and keeps the
// result. The zero value of every field except Secret is usable.
type Config struct {
	// Secret signs session tokens. Mandatory; New fails without it.
	Secret string

	Tables        Tables
	UserFields    UserFields
	SessionFields SessionFields
	Queries       Queries

	// RegistrationSchema is a JSON Schema document applied to registration
	// candidates. Empty selects DefaultRegistrationSchema.
	RegistrationSchema string

	// BcryptCost is the adaptive-hash cost factor. Values below
	// bcrypt.MinCost select the bcrypt default (10).
	BcryptCost int

	// TokenTTL is the lifetime of issued tokens. Zero selects 30 minutes.
	TokenTTL time.Duration

	SignOptions   auth.SignOptions
	VerifyOptions auth.VerifyOptions

	// Logger receives every failure reason and lifecycle event. Nil selects
	// a JSON slog logger on stdout.
	Logger logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Tables.Users == "" {
		c.Tables.Users = DefaultUsersTable
	}
	if c.Tables.Sessions == "" {
		c.Tables.Sessions = DefaultSessionsTable
	}
	if c.UserFields.ID == "" {
		c.UserFields.ID = DefaultUserIDField
	}
	if c.UserFields.Login == "" {
		c.UserFields.Login = DefaultUserLoginField
	}
	if c.UserFields.Password == "" {
		c.UserFields.Password = DefaultUserPasswordField
	}
	if c.SessionFields.ID == "" {
		c.SessionFields.ID = DefaultSessionIDField
	}
	if c.SessionFields.User == "" {
		c.SessionFields.User = DefaultSessionUserField
	}
	if c.Queries.Login == "" {
		c.Queries.Login = DefaultLoginQuery
	}
	if c.RegistrationSchema == "" {
		c.RegistrationSchema = DefaultRegistrationSchema
	}
	if c.Logger == nil {
		c.Logger = logging.NewDefault()
	}
	return c
}
