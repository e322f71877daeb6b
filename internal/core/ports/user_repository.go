package ports

import (
	"context"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail expects the email to be pre-normalized. It returns
	// domain.ErrUserNotFound on zero matches and domain.ErrDuplicateUser
	// when more than one record matches, which is a store-integrity
	// violation the caller must not paper over.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailOrMobile queries by whichever identifiers are non-empty and
	// returns the first match, or domain.ErrUserNotFound.
	FindByEmailOrMobile(ctx context.Context, email, mobile string) (*domain.User, error)
}
