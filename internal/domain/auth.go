package domain

import (
	"context"
	"time"
)

// RoleAdmin is the role required on /admin routes when admin auth is enabled.
const RoleAdmin = "admin"

// Principal is the authenticated caller carried by a token.
type Principal struct {
	Subject string
	Roles   []string
}

// HasRole reports whether p carries role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier validates an access token and returns its principal.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// PasswordHasher hashes and checks operator passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AdminAuthService exchanges operator credentials for an admin token.
type AdminAuthService interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
}
