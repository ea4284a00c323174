package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// stubVerifier accepts exactly one token and returns a fixed claim for it.
type stubVerifier struct {
	accepted string
	claim    *domain.IdentityClaim
}

func (s *stubVerifier) Issue(_ context.Context, _, _ string) (*domain.Credential, error) {
	panic("not used by the middleware")
}

func (s *stubVerifier) Verify(token string) (*domain.IdentityClaim, error) {
	if token == "" {
		return nil, domain.NewError(domain.KindUnauthorized, "missing token")
	}
	if token != s.accepted {
		return nil, domain.NewError(domain.KindUnauthorized, "invalid signature")
	}
	return s.claim, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := &stubVerifier{
		accepted: "good-token",
		claim:    &domain.IdentityClaim{SubjectID: "abcdefghij1234567890", Email: "leader@example.com", TeamID: "T1"},
	}

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		claim, err := ClaimFromContext(c)
		if err != nil {
			t.Fatalf("claim not in context: %v", err)
		}
		if claim.TeamID != "T1" {
			t.Fatalf("unexpected claim: %+v", claim)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{accepted: "good-token"})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{accepted: "abc"})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{accepted: "good-token"})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
