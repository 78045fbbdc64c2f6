package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of an access token issued by the identity
// provider.
//
// Permissions distinguishes a missing claim (nil) from an empty list, which
// matters for permission checks.
type Claims struct {
	jwt.RegisteredClaims

	// Permissions is the RBAC permission list added by the identity provider
	// (e.g. "get:drinks-detail").
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether permission is granted by the token.
func (c Claims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

// Session is the public view of an authenticated caller.
type Session struct {
	Subject     string   `json:"subject"`
	Permissions []string `json:"permissions"`
}

// Session returns the public view of the claims.
func (c Claims) Session() Session {
	permissions := c.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return Session{Subject: c.Subject, Permissions: permissions}
}
