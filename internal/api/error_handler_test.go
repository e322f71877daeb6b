package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", fmt.Errorf("%w: total must not be negative", domain.ErrValidation), http.StatusBadRequest, "invalid input: total must not be negative"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized, "token expired"},
		{"malformed token", domain.ErrMalformedToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d", code, tt.wantCode)
			}
			if msg != tt.wantMsg {
				t.Fatalf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("login lookup: %w", domain.ErrInvalidCredentials)
	code, msg := renderError(t, wrapped)
	if code != http.StatusUnauthorized || msg != "invalid email or password" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing credentials"))
	if code != http.StatusUnauthorized || msg != "missing credentials" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_DuplicateUserIsInternal(t *testing.T) {
	// A unique-email violation is a store fault, never a client error.
	code, msg := renderError(t, fmt.Errorf("login lookup: %w", domain.ErrDuplicateUser))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("got %d %q", code, msg)
	}
}
