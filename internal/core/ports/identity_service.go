package ports

import (
	"context"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// IdentityService resolves a caller to a canonical user record.
type IdentityService interface {
	// ResolveByToken verifies the token and fetches the user it names.
	// Token failures surface as domain.ErrExpiredToken or
	// domain.ErrMalformedToken; a valid token naming a since-deleted record
	// surfaces as domain.ErrUserNotFound.
	ResolveByToken(ctx context.Context, tokenString string) (*domain.User, error)
	// ResolveByFallback looks a user up by email and/or mobile. It returns
	// (nil, nil) when nothing matches. This is a convenience lookup, not an
	// authentication: callers must never treat its result as a verified
	// identity for authorization decisions.
	ResolveByFallback(ctx context.Context, email, mobile string) (*domain.User, error)
}
