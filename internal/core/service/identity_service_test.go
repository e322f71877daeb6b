package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/token"
)

// expiredTokenString signs a token whose expiry is already in the past, using
// the same secret the test managers are built with.
func expiredTokenString(t *testing.T, userID, email string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: userID,
		Email:  email,
		Role:   domain.RoleUser,
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newIdentityFixture() (*stubUserRepo, *token.Manager, *IdentityService) {
	users := newStubUserRepo()
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewIdentityService(users, tokens, zerolog.Nop())
	return users, tokens, svc
}

func TestIdentityService_ResolveByToken(t *testing.T) {
	users, tokens, svc := newIdentityFixture()
	created, err := users.Create(context.Background(), &domain.User{
		Name: "Alice", Email: "a@x.com", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	tokenString, err := tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := svc.ResolveByToken(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if user.ID != created.ID || user.Email != "a@x.com" {
		t.Fatalf("wrong user resolved: %+v", user)
	}
}

func TestIdentityService_ResolveByToken_Expired(t *testing.T) {
	users, _, svc := newIdentityFixture()
	created, _ := users.Create(context.Background(), &domain.User{Email: "a@x.com"})
	tokenString := expiredTokenString(t, created.ID, created.Email)

	_, err := svc.ResolveByToken(context.Background(), tokenString)
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestIdentityService_ResolveByToken_DeletedRecord(t *testing.T) {
	_, tokens, svc := newIdentityFixture()
	tokenString, err := tokens.Issue("gone", "gone@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.ResolveByToken(context.Background(), tokenString)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIdentityService_ResolveByToken_NormalizesRole(t *testing.T) {
	users, tokens, svc := newIdentityFixture()
	created, _ := users.Create(context.Background(), &domain.User{Email: "a@x.com", Role: "superadmin"})
	tokenString, _ := tokens.Issue(created.ID, created.Email, domain.RoleUser)

	user, err := svc.ResolveByToken(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("stored garbage role leaked: %q", user.Role)
	}
}

func TestIdentityService_ResolveByFallback(t *testing.T) {
	users, _, svc := newIdentityFixture()
	created, _ := users.Create(context.Background(), &domain.User{
		Email: "a@x.com", Mobile: "555-0101",
	})

	byEmail, err := svc.ResolveByFallback(context.Background(), "A@X.com", "")
	if err != nil || byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("email fallback: user=%+v err=%v", byEmail, err)
	}

	byMobile, err := svc.ResolveByFallback(context.Background(), "", "555-0101")
	if err != nil || byMobile == nil || byMobile.ID != created.ID {
		t.Fatalf("mobile fallback: user=%+v err=%v", byMobile, err)
	}
}

func TestIdentityService_ResolveByFallback_NoMatchIsNotAnError(t *testing.T) {
	_, _, svc := newIdentityFixture()

	user, err := svc.ResolveByFallback(context.Background(), "ghost@x.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestIdentityService_ResolveByFallback_NoIdentifiers(t *testing.T) {
	_, _, svc := newIdentityFixture()

	user, err := svc.ResolveByFallback(context.Background(), "", "")
	if user != nil || err != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", user, err)
	}
}
