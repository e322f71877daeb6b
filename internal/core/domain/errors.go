package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller so the
	// login endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("invalid input")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser signals a store-integrity violation: more than one
	// record matched a supposedly unique email. Never silently pick one.
	ErrDuplicateUser = errors.New("duplicate user records for email")

	ErrForbidden = errors.New("access forbidden")

	ErrExpiredToken   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")

	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyClaimed is returned by the conditional guest-order
	// claim when the order is no longer guest-owned. The loser of a
	// concurrent reconciliation race sees this and treats it as a no-op.
	ErrOrderAlreadyClaimed = errors.New("order already claimed")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
