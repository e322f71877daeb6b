package ports

import (
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/token"
)

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Issue(userID, email, role string) (string, error)
	Verify(tokenString string) (*token.Claims, error)
}
