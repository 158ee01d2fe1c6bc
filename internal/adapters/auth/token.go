package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"explorewithme/internal/domain"
)

// ErrInvalidToken is returned by the verifier for any token it rejects.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer is the iss claim of every admin token.
const TokenIssuer = "explore-with-me"

type jwtClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

type jwtIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), now: time.Now}
}

func (i *jwtIssuer) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	now := i.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Roles: roles,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(tokenString string) (*domain.Principal, error) {
	claims := &jwtClaims{}
	key := func(*jwt.Token) (any, error) { return v.secret, nil }
	_, err := jwt.ParseWithClaims(tokenString, claims, key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(TokenIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return &domain.Principal{Subject: claims.Subject, Roles: claims.Roles}, nil
}
