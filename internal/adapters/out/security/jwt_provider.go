// Package security provides the token and password-hashing adapters behind
// the core security ports.
package security

import (
	"errors"
	"time"

	"fornello/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 4 * time.Hour

// HSTokenProvider issues and verifies HS256-signed JWTs carrying the
// account's email as the subject.
type HSTokenProvider struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewHSTokenProvider creates a provider signing with the given symmetric
// secret on behalf of the given issuer.
func NewHSTokenProvider(secret, issuer string) *HSTokenProvider {
	return &HSTokenProvider{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Sign issues a token for the given email with issued-at and expiry claims.
func (p *HSTokenProvider) Sign(email string) (string, error) {
	now := p.now()

	claims := jwt.RegisteredClaims{
		Issuer:    p.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify checks the signature, issuer and expiry and returns the subject
// email. Any failure maps to an UnauthorizedError.
func (p *HSTokenProvider) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithTimeFunc(p.now))
	if err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.NewUnauthorizedError("invalid token")
	}

	return claims.Subject, nil
}
