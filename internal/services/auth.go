package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"explorewithme/internal/domain"
)

type adminAuthService struct {
	username     string
	passwordHash string
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	tokenExpiry  time.Duration
}

// NewAdminAuthService creates an AdminAuthService for a single operator account.
// An empty passwordHash disables token issuing.
func NewAdminAuthService(username, passwordHash string, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AdminAuthService {
	return &adminAuthService{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
		issuer:       issuer,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *adminAuthService) IssueToken(ctx context.Context, username, password string) (string, error) {
	if s.passwordHash == "" || s.issuer == nil {
		return "", fmt.Errorf("%w: admin login is disabled", domain.ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err := s.hasher.Compare(s.passwordHash, password); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	token, err := s.issuer.Issue(username, []string{domain.RoleAdmin}, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
