package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

// ClaimContextKey is where Auth stores the verified identity claim on the
// echo context.
const ClaimContextKey = "identity_claim"

// Auth extracts the bearer token, verifies it through the session service,
// and injects the identity claim into the request context. Verification
// failures surface through the central error handler so the client can tell
// "expired, login again" apart from "invalid token".
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)

			claim, err := sessions.Verify(token)
			if err != nil {
				return err
			}

			c.Set(ClaimContextKey, claim)
			return next(c)
		}
	}
}

// bearerToken pulls the token out of the Authorization header. An absent or
// non-bearer header yields "", which the verifier rejects as a missing token.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ClaimFromContext retrieves the claim injected by Auth.
func ClaimFromContext(c echo.Context) (*domain.IdentityClaim, error) {
	claim, ok := c.Get(ClaimContextKey).(*domain.IdentityClaim)
	if !ok || claim == nil {
		return nil, domain.NewError(domain.KindUnauthorized, "missing authentication claims")
	}
	return claim, nil
}
