// Package session carries the authenticated identity of one client through
// every service call. A Context is a value: transitions return a new one.
package session

import (
	"appraisal/internal/errors"
	"appraisal/internal/model"
)

// Context is the per-client authentication state. The zero value is
// unauthenticated.
type Context struct {
	Authenticated bool
	Identifier    string
	Role          model.Role
}

// Anonymous returns an unauthenticated session.
func Anonymous() Context {
	return Context{}
}

// Login returns an authenticated session for identifier and role.
func (c Context) Login(identifier string, role model.Role) Context {
	return Context{Authenticated: true, Identifier: identifier, Role: role}
}

// Logout clears the session.
func (c Context) Logout() Context {
	return Context{}
}

// IsAuthenticated reports whether the session carries an identity.
func (c Context) IsAuthenticated() bool {
	return c.Authenticated && c.Identifier != ""
}

// Is reports whether the session is authenticated with role.
func (c Context) Is(role model.Role) bool {
	return c.IsAuthenticated() && c.Role == role
}

// Require returns ErrPermissionDenied unless the session is authenticated
// with one of roles. With no roles any authenticated session passes.
func (c Context) Require(roles ...model.Role) error {
	if !c.IsAuthenticated() {
		return errors.ErrPermissionDenied
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if c.Role == r {
			return nil
		}
	}
	return errors.ErrPermissionDenied
}

// IsSelf reports whether the session belongs to identifier.
func (c Context) IsSelf(identifier string) bool {
	return c.IsAuthenticated() && c.Identifier == identifier
}
