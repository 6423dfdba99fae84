package views

import (
	"github.com/lumenledger/backend/internal/sharedprops"
	"golang.org/x/exp/slices"
)

// Auth exposes the authentication state and preference values with
// their defaults applied. It tolerates partial snapshots: for an
// unauthenticated snapshot every accessor returns its default.
type Auth struct {
	snapshot *sharedprops.Snapshot
}

func NewAuth(snapshot *sharedprops.Snapshot) Auth {
	return Auth{snapshot: snapshot}
}

func (v Auth) IsAuthenticated() bool { return v.snapshot.Auth.Authenticated }

// User returns the authenticated user, or nil.
func (v Auth) User() *sharedprops.User { return v.snapshot.Auth.User }

func (v Auth) IsAdmin() bool {
	if user := v.snapshot.Auth.User; user != nil {
		return user.IsAdmin
	}

	return false
}

func (v Auth) IsDemo() bool {
	if user := v.snapshot.Auth.User; user != nil {
		return user.IsDemo
	}

	return false
}

func (v Auth) Language() string {
	if p := v.snapshot.Preferences; p != nil {
		return p.Language
	}

	return sharedprops.DefaultLanguage
}

func (v Auth) DarkMode() string {
	if p := v.snapshot.Preferences; p != nil {
		return p.DarkMode
	}

	return sharedprops.DefaultDarkMode
}

func (v Auth) ListPageSize() int {
	if p := v.snapshot.Preferences; p != nil {
		return p.ListPageSize
	}

	return sharedprops.DefaultListPageSize
}

// Currency returns the primary currency projection, or nil when none
// is configured.
func (v Auth) Currency() *sharedprops.Currency { return v.snapshot.Currency }

// HasRole reports membership in the role set attached to the snapshot.
func (v Auth) HasRole(role string) bool {
	user := v.snapshot.Auth.User
	if user == nil {
		return false
	}

	return slices.Contains(user.Roles, role)
}

// CanAccess reports whether the current user may access something
// gated on a role. An empty role means no role is required.
func (v Auth) CanAccess(role string) bool {
	if !v.snapshot.Auth.Authenticated {
		return false
	}

	if role == "" {
		return true
	}

	return v.HasRole(role)
}
