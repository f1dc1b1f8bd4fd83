package user

import "context"

// Draft carries the mutable attributes of an about-to-be-created account. The
// init hook receives it by value and returns the version it wants applied,
// which the provisioner merges. Passing a value instead of the account itself
// keeps hook side effects out of the persistence path.
type Draft struct {
	RealName      string
	Email         string
	Notifications NotificationPrefs
}

// InitHook observes or mutates an account draft before first creation, e.g.
// to pull the real name and email from an external directory. autoCreate is
// true when the account is being created as a side effect of a first login.
//
// Returning false vetoes the provisioner's built-in defaulting: the account
// is still created, but only with the attributes present in the returned
// draft.
type InitHook func(ctx context.Context, draft Draft, autoCreate bool) (Draft, bool, error)
