package userauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults_FillsZeroFields(t *testing.T) {
	cfg := Config{Secret: "s"}.withDefaults()

	require.Equal(t, DefaultUsersTable, cfg.Tables.Users)
	require.Equal(t, DefaultSessionsTable, cfg.Tables.Sessions)
	require.Equal(t, DefaultUserIDField, cfg.UserFields.ID)
	require.Equal(t, DefaultUserLoginField, cfg.UserFields.Login)
	require.Equal(t, DefaultUserPasswordField, cfg.UserFields.Password)
	require.Equal(t, DefaultSessionIDField, cfg.SessionFields.ID)
	require.Equal(t, DefaultSessionUserField, cfg.SessionFields.User)
	require.Equal(t, DefaultLoginQuery, cfg.Queries.Login)
	require.Equal(t, DefaultRegistrationSchema, cfg.RegistrationSchema)
	require.NotNil(t, cfg.Logger)
}

func TestConfig_WithDefaults_KeepsOverrides(t *testing.T) {
	in := Config{
		Secret:     "s",
		Tables:     Tables{Users: "accounts", Sessions: "logins"},
		UserFields: UserFields{Login: "username"},
		Queries:    Queries{Login: "SELECT * FROM {{table}} WHERE lower({{login}}) = lower($1)"},
		TokenTTL:   5 * time.Minute,
	}
	cfg := in.withDefaults()

	require.Equal(t, "accounts", cfg.Tables.Users)
	require.Equal(t, "logins", cfg.Tables.Sessions)
	require.Equal(t, "username", cfg.UserFields.Login)
	require.Equal(t, DefaultUserIDField, cfg.UserFields.ID, "unset fields still get defaults")
	require.Equal(t, in.Queries.Login, cfg.Queries.Login)
	require.Equal(t, 5*time.Minute, cfg.TokenTTL)
}
