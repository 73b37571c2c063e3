// Package scope issues and verifies the bearer tokens that carry a caller's
// address, and moves the resulting model.Scope through request contexts.
package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"escrow-marketplace/internal/model"
)

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrMissingKey   = errors.New("scope: signing key is required")
)

// Payload is the claim set carried by a caller token. The subject is the
// caller's address.
type Payload struct {
	jwt.RegisteredClaims
}

// Manager verifies caller tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(address string, ttl time.Duration) (string, error)
}

type implManager struct {
	secretKey []byte
	issuer    string
}

// New returns an HS256 token manager.
func New(secretKey, issuer string) (Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	return &implManager{secretKey: []byte(secretKey), issuer: issuer}, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || payload.Subject == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}

func (m *implManager) CreateToken(address string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   address,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

type ctxKey struct{}

// SetScopeToContext attaches sc to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns the scope attached by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	return sc, ok
}
