package domain

import "strings"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// NormalizeRole collapses a stored role value to one of the two valid roles.
// Only the literal "admin" grants admin; empty, null, or garbage values all
// map to "user".
func NormalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// NormalizeEmail canonicalizes an email for lookup and storage. Emails are
// unique case-insensitively, so every query and every persisted value must
// pass through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAdmin reports whether the user's normalized role is admin.
func (u *User) IsAdmin() bool {
	return NormalizeRole(u.Role) == RoleAdmin
}
