package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// IdentityService resolves a token or a set of fallback identifiers to a
// canonical user record.
type IdentityService struct {
	users  ports.UserRepository
	tokens ports.TokenManager
	log    zerolog.Logger
}

func NewIdentityService(users ports.UserRepository, tokens ports.TokenManager, log zerolog.Logger) *IdentityService {
	return &IdentityService{users: users, tokens: tokens, log: log}
}

// ResolveByToken verifies the token and fetches the user it names. Token
// failures pass through unchanged; a valid token whose record has since been
// deleted returns domain.ErrUserNotFound.
func (s *IdentityService) ResolveByToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user %s: %w", claims.UserID, err)
	}

	user.Role = domain.NormalizeRole(user.Role)
	return user, nil
}

// ResolveByFallback looks a user up by email and/or mobile and returns
// (nil, nil) when nothing matches. Convenience lookup only; the result is
// not a verified identity.
func (s *IdentityService) ResolveByFallback(ctx context.Context, email, mobile string) (*domain.User, error) {
	if email == "" && mobile == "" {
		return nil, nil
	}

	user, err := s.users.FindByEmailOrMobile(ctx, domain.NormalizeEmail(email), mobile)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fallback lookup: %w", err)
	}

	user.Role = domain.NormalizeRole(user.Role)
	return user, nil
}
