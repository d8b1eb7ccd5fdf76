// Package models defines the persisted entities of the authentication core.
package models

// User is a row from the configured users table. The core reads users, it
// never updates them. Fields holds every column of the fetched row keyed by
// column name, so admission predicates can inspect application-specific
// columns the core knows nothing about.
type User struct {
	ID             string
	Login          string
	PasswordDigest string
	Fields         map[string]any
}

// Authenticable reports whether the record carries enough data to be
// authenticated: a non-empty identifier and password digest.
func (u *User) Authenticable() bool {
	return u != nil && u.ID != "" && u.PasswordDigest != ""
}
