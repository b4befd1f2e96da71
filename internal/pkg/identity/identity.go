// Package identity carries the verified caller identity handed to the order
// core by the upstream identity provider. Tokens are never minted or
// cryptographically checked here; by the time an Identity exists it is
// trusted.
package identity

import (
	"context"
	"slices"
	"strings"
)

// Defined role claims.
const (
	RoleAdmin   = "Admin"
	RoleUser    = "User"
	RoleManager = "Manager"
)

// Identity is a verified subject id plus its role claims.
type Identity struct {
	SubjectID string
	Roles     []string
	// Credential is the bearer credential as received, forwarded unmodified
	// to downstream services.
	Credential string
}

// Authenticated reports whether the identity names a subject.
func (i Identity) Authenticated() bool {
	return strings.TrimSpace(i.SubjectID) != ""
}

// HasRole reports whether the identity carries role. Role names compare
// case-insensitively, matching how the identity provider emits them.
func (i Identity) HasRole(role string) bool {
	return slices.ContainsFunc(i.Roles, func(r string) bool {
		return strings.EqualFold(r, role)
	})
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

// ParseRoles splits a comma separated role claim list, dropping blanks.
func ParseRoles(raw string) []string {
	var roles []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// FormatRoles is the inverse of ParseRoles.
func FormatRoles(roles []string) string {
	return strings.Join(roles, ",")
}

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored in ctx. The zero Identity (not
// authenticated) is returned when none is present.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id
}
