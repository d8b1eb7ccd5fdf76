package models

// Session binds a generated session identifier to the user it was created
// for. Sessions are immutable: created at login, deleted at logout or on a
// failed renewal. Token renewal never touches the stored row.
type Session struct {
	ID     string
	UserID string
}
