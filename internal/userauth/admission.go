package userauth

import (
	"context"

	"github.com/avolkov/userauth/internal/models"
)

// Admission is the tagged outcome of an admission predicate: either an
// acceptance or a rejection carrying its reason.
type Admission struct {
	ok     bool
	reason string
}

// Accept admits the user.
func Accept() Admission {
	return Admission{ok: true}
}

// Reject refuses the user. The reason, when non-empty, replaces the default
// rejection message surfaced to the caller.
func Reject(reason string) Admission {
	return Admission{reason: reason}
}

// AdmissionFunc is an optional predicate run against the fetched user
// record after lookup and before the password check. It can consult any
// column of the row via user.Fields (account disabled, email unconfirmed).
type AdmissionFunc func(ctx context.Context, user *models.User) Admission
