package ports

import "context"

// LoginThrottle tracks failed login attempts per account. Implementations
// are advisory: callers treat backend errors as "allow" so a throttle-store
// outage never locks everyone out.
type LoginThrottle interface {
	// Allow reports whether another attempt for this email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure notes a failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
