package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/metrics"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

const minPasswordLen = 8

// AuthService implements registration and the login flow. It is the only
// component that touches raw password material: passwords are hashed here on
// registration and compared here on login, never anywhere else.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenManager
	reconciler *GuestOrderReconciler
	throttle   ports.LoginThrottle
	log        zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenManager,
	reconciler *GuestOrderReconciler,
	throttle ports.LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		reconciler: reconciler,
		throttle:   throttle,
		log:        log,
	}
}

// Register creates a new account with role "user". The email is stored
// normalized; a duplicate returns domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Name == "" || input.Email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	email := domain.NormalizeEmail(input.Email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case errors.Is(err, domain.ErrUserNotFound):
		// free to register
	default:
		return fmt.Errorf("register lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		Mobile:       input.Mobile,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("email", email).Msg("user registered")
	return nil
}

// Login runs the full session flow: credentials lookup, credential check,
// role derivation, guest-order reconciliation, token issuance. Unknown email
// and wrong password both return domain.ErrInvalidCredentials so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	email := domain.NormalizeEmail(input.Email)

	if !s.allowAttempt(ctx, email) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		// Includes domain.ErrDuplicateUser: a unique-email violation is an
		// internal fault, not a credential problem.
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, email)
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.NormalizeRole(user.Role)
	if input.LoginType == domain.RoleAdmin && role != domain.RoleAdmin {
		metrics.LoginsTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	// Re-attach guest orders placed under this email. Reconciliation faults
	// never abort the login.
	claimed := s.reconciler.Reconcile(ctx, email, user.ID)
	if claimed > 0 {
		s.log.Info().Str("user_id", user.ID).Int("orders", claimed).Msg("guest orders reconciled")
	}

	tokenString, err := s.tokens.Issue(user.ID, email, role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("throttle reset failed")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &ports.LoginResult{
		Token: tokenString,
		User: ports.UserProjection{
			ID:     user.ID,
			Name:   user.Name,
			Email:  email,
			Mobile: user.Mobile,
			Role:   role,
		},
	}, nil
}

// allowAttempt consults the throttle, degrading open on backend errors.
func (s *AuthService) allowAttempt(ctx context.Context, email string) bool {
	ok, err := s.throttle.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("throttle check failed, allowing attempt")
		return true
	}
	return ok
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("throttle record failed")
	}
}
