package ports

import "context"

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// LoginInput carries the fields of a login request. LoginType is "user" or
// "admin"; empty means "user".
type LoginInput struct {
	Email     string
	Password  string
	LoginType string
}

// UserProjection is the user view returned to clients. It deliberately has
// no slot for the password hash.
type UserProjection struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
	Role   string `json:"role"`
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string
	User  UserProjection
}

// AuthService implements registration and the login flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}
