package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hackfest/submission-portal/internal/api/metrics"
	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
	Email     string `json:"email"      validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TeamID    string    `json:"team_id"`
}

// Login authenticates a team leader and returns a session credential.
//
// @Summary      Login as a team leader
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Leader identity"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cred, err := h.sessions.Issue(c.Request().Context(), req.SubjectID, req.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     cred.Token,
		ExpiresAt: cred.ExpiresAt.UTC(),
		TeamID:    cred.TeamID,
	})
}

// Logout ends the client session.
//
// Credentials are self-contained (signature plus expiry), so there is
// nothing to revoke server-side; the client discards the token.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func loginOutcome(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindInvalidInput:
			return "invalid_input"
		case domain.KindInvalidCredential:
			return "invalid_credential"
		case domain.KindForbidden:
			return "forbidden"
		}
	}
	return "error"
}
