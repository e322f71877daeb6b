// Package token issues and verifies the signed session tokens that carry
// identity claims. Tokens are self-contained: validity is determined entirely
// by signature and expiry, never by server-side state.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Manager signs and verifies session tokens with a symmetric HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

const defaultTTL = 24 * time.Hour

// NewManager creates a Manager. A non-positive ttl falls back to 24 hours.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the given identity claims with an absolute
// expiry of now + TTL. Pure computation, no I/O.
func (m *Manager) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. It returns
// domain.ErrExpiredToken once the embedded expiry has passed and
// domain.ErrMalformedToken when the signature does not validate, the signing
// method is wrong, or the userId claim is absent.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrMalformedToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrMalformedToken
	}
	if !t.Valid || claims.UserID == "" {
		return nil, domain.ErrMalformedToken
	}
	return claims, nil
}
