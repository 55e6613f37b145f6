// Package utils provides general-purpose helpers shared across the
// application: typed context keys, content hashing for invitation
// identifiers, JSON/HTML response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AuthenticatedUserCtxKey is the key under which the e-mail of the
// authenticated user is stored once the admin middleware accepted it.
var AuthenticatedUserCtxKey = contextKey("authenticatedUser")

// WithAuthenticatedUser returns a copy of ctx carrying the authenticated
// user's e-mail.
func WithAuthenticatedUser(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AuthenticatedUserCtxKey, email)
}

// GetAuthenticatedUserFromContext retrieves the authenticated user's e-mail.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetAuthenticatedUserFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AuthenticatedUserCtxKey).(string)
	return email, ok && email != ""
}
