package auth

import "strings"

// VerifiedIdentity is produced only by the token resolver after the
// session credential has passed signature, expiry and user checks.
type VerifiedIdentity struct {
	UserID   uint
	Username string
}

// UnverifiedRoleClaim is the plaintext role cookie carried by the legacy
// viewer/creator UI. It is trivially forgeable and must never authorize
// an API mutation; keeping it a distinct type stops call sites from
// passing one where a VerifiedIdentity is expected.
type UnverifiedRoleClaim string

const (
	RoleViewer  UnverifiedRoleClaim = "viewer"
	RoleCreator UnverifiedRoleClaim = "creator"
)

// ParseRoleClaim normalizes a raw cookie value into a known role,
// defaulting to viewer.
func ParseRoleClaim(raw string) UnverifiedRoleClaim {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleCreator):
		return RoleCreator
	default:
		return RoleViewer
	}
}

// IsValid reports whether the claim names a known role.
func (c UnverifiedRoleClaim) IsValid() bool {
	return c == RoleViewer || c == RoleCreator
}
