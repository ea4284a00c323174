package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

const (
	minSubjectIDLen = 10
	maxSubjectIDLen = 128
	maxEmailLen     = 255
)

// SessionService issues and verifies signed session credentials.
type SessionService struct {
	identity  ports.IdentityProvider
	directory ports.TeamDirectory
	jwtSecret string
	tokenTTL  time.Duration
}

func NewSessionService(identity ports.IdentityProvider, directory ports.TeamDirectory, jwtSecret string, tokenTTL time.Duration) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{identity: identity, directory: directory, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Issue validates the presented (subjectID, email) pair against the identity
// provider and the team directory, then returns a signed credential.
// Authorization state (leadership, confirmation) is re-checked here rather
// than trusted from registration: team status can change between the two.
func (s *SessionService) Issue(ctx context.Context, subjectID, email string) (*domain.Credential, error) {
	subjectID = truncate(strings.TrimSpace(subjectID), maxSubjectIDLen)
	email = strings.ToLower(truncate(strings.TrimSpace(email), maxEmailLen))

	if subjectID == "" || email == "" {
		return nil, domain.NewError(domain.KindInvalidInput, "subject id and email are required")
	}
	if !validEmailShape(email) {
		return nil, domain.NewError(domain.KindInvalidInput, "email is not a valid address")
	}
	if len(subjectID) < minSubjectIDLen {
		return nil, domain.NewError(domain.KindInvalidInput, "subject id is malformed")
	}

	record, err := s.identity.Lookup(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.NewError(domain.KindInvalidCredential, "unknown identity")
		}
		return nil, domain.ExternalError("identity provider", err)
	}
	if strings.ToLower(record.Email) != email {
		return nil, domain.NewError(domain.KindInvalidCredential, "email does not match identity record")
	}

	team, err := s.directory.FindByLeaderID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, domain.NewError(domain.KindForbidden, "not a team leader")
		}
		return nil, domain.ExternalError("team directory", err)
	}
	if team.Status != domain.StatusConfirmed {
		return nil, domain.NewError(domain.KindForbidden, "registration not confirmed")
	}

	if s.jwtSecret == "" {
		return nil, domain.NewError(domain.KindConfig, "session signing secret is not configured")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":     subjectID,
		"email":   email,
		"team_id": team.TeamID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, domain.NewError(domain.KindConfig, "failed to sign session credential")
	}

	return &domain.Credential{Token: signed, ExpiresAt: expiresAt, TeamID: team.TeamID}, nil
}

// Verify parses and validates a presented token, returning the identity
// claim it carries. The failure modes are distinguishable because callers
// display different guidance ("login again" on expiry).
func (s *SessionService) Verify(token string) (*domain.IdentityClaim, error) {
	if token == "" {
		return nil, domain.NewError(domain.KindUnauthorized, "missing token")
	}
	if s.jwtSecret == "" {
		return nil, domain.NewError(domain.KindConfig, "session signing secret is not configured")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.NewError(domain.KindUnauthorized, "expired")
		}
		return nil, domain.NewError(domain.KindUnauthorized, "invalid signature")
	}
	if !parsed.Valid {
		return nil, domain.NewError(domain.KindUnauthorized, "invalid signature")
	}

	sub, _ := claims["sub"].(string)
	teamID, _ := claims["team_id"].(string)
	if sub == "" || teamID == "" {
		return nil, domain.NewError(domain.KindUnauthorized, "malformed payload")
	}
	email, _ := claims["email"].(string)

	return &domain.IdentityClaim{SubjectID: sub, Email: email, TeamID: teamID}, nil
}

// validEmailShape requires a local@domain.tld shape. checkmail alone
// accepts dotless domains, which the registration flow never produces.
func validEmailShape(email string) bool {
	if checkmail.ValidateFormat(email) != nil {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at >= 0 && strings.Contains(email[at+1:], ".")
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
