package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

const testSubjectID = "abcdefghij1234567890"

type stubIdentity struct {
	records map[string]*domain.IdentityRecord
	err     error
}

func newStubIdentity() *stubIdentity {
	return &stubIdentity{records: make(map[string]*domain.IdentityRecord)}
}

func (s *stubIdentity) Lookup(_ context.Context, subjectID string) (*domain.IdentityRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.records[subjectID]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	clone := *r
	return &clone, nil
}

type stubDirectory struct {
	teams map[string]*domain.Team
	err   error
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{teams: make(map[string]*domain.Team)}
}

func (s *stubDirectory) FindByLeaderID(_ context.Context, leaderID string) (*domain.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.teams[leaderID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	clone := *t
	return &clone, nil
}

func confirmedTeam(leaderID string) *domain.Team {
	return &domain.Team{
		TeamID:   "T1",
		TeamName: "Rubber Ducks",
		LeaderID: leaderID,
		Status:   domain.StatusConfirmed,
		Members: []domain.Member{
			{Name: "Alice", PhoneNumber: "+1555000001", Email: "leader@example.com"},
			{Name: "Bob", PhoneNumber: "+1555000002", Email: "bob@example.com"},
		},
	}
}

func sessionFixture() (*stubIdentity, *stubDirectory, *SessionService) {
	identity := newStubIdentity()
	identity.records[testSubjectID] = &domain.IdentityRecord{SubjectID: testSubjectID, Email: "Leader@Example.com"}
	directory := newStubDirectory()
	directory.teams[testSubjectID] = confirmedTeam(testSubjectID)
	svc := NewSessionService(identity, directory, "secret", 24*time.Hour)
	return identity, directory, svc
}

func TestSessionService_Issue_Success(t *testing.T) {
	_, _, svc := sessionFixture()

	cred, err := svc.Issue(context.Background(), testSubjectID, "Leader@Example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if cred.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if cred.TeamID != "T1" {
		t.Fatalf("unexpected team id: %s", cred.TeamID)
	}
	if remaining := time.Until(cred.ExpiresAt); remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", remaining)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(cred.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != testSubjectID {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["team_id"] != "T1" {
		t.Fatalf("unexpected team_id claim: %v", claims["team_id"])
	}
	if claims["email"] != "leader@example.com" {
		t.Fatalf("expected lowercased email claim, got %v", claims["email"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestSessionService_Issue_RoundTripsThroughVerify(t *testing.T) {
	_, _, svc := sessionFixture()

	cred, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claim, err := svc.Verify(cred.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claim.SubjectID != testSubjectID || claim.TeamID != "T1" {
		t.Fatalf("unexpected claim: %+v", claim)
	}
}

func TestSessionService_Issue_InvalidInput(t *testing.T) {
	_, _, svc := sessionFixture()

	cases := []struct {
		name      string
		subjectID string
		email     string
	}{
		{"empty subject", "", "leader@example.com"},
		{"empty email", testSubjectID, ""},
		{"whitespace only", "   ", "  "},
		{"bad email shape", testSubjectID, "not-an-email"},
		{"no tld", testSubjectID, "leader@localhost"},
		{"short subject", "short", "leader@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Issue(context.Background(), tc.subjectID, tc.email)
			if !domain.IsKind(err, domain.KindInvalidInput) {
				t.Fatalf("expected invalid_input, got %v", err)
			}
		})
	}
}

func TestSessionService_Issue_UnknownIdentity(t *testing.T) {
	_, _, svc := sessionFixture()

	_, err := svc.Issue(context.Background(), "zzzzzzzzzz9999999999", "leader@example.com")
	if !domain.IsKind(err, domain.KindInvalidCredential) {
		t.Fatalf("expected invalid_credential, got %v", err)
	}
}

func TestSessionService_Issue_EmailMismatch(t *testing.T) {
	_, _, svc := sessionFixture()

	_, err := svc.Issue(context.Background(), testSubjectID, "other@example.com")
	if !domain.IsKind(err, domain.KindInvalidCredential) {
		t.Fatalf("expected invalid_credential, got %v", err)
	}
}

func TestSessionService_Issue_NotATeamLeader(t *testing.T) {
	_, directory, svc := sessionFixture()
	delete(directory.teams, testSubjectID)

	_, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if !strings.Contains(err.Error(), "not a team leader") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSessionService_Issue_UnconfirmedTeam(t *testing.T) {
	_, directory, svc := sessionFixture()
	directory.teams[testSubjectID].Status = domain.StatusPending

	_, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if !strings.Contains(err.Error(), "registration not confirmed") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSessionService_Issue_DirectoryUnavailable(t *testing.T) {
	_, directory, svc := sessionFixture()
	directory.err = context.DeadlineExceeded

	_, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if !domain.IsKind(err, domain.KindExternal) {
		t.Fatalf("expected external, got %v", err)
	}
}

func TestSessionService_Issue_MissingSecret(t *testing.T) {
	identity, directory, _ := sessionFixture()
	svc := NewSessionService(identity, directory, "", 24*time.Hour)

	_, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if !domain.IsKind(err, domain.KindConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestSessionService_Verify_MissingToken(t *testing.T) {
	_, _, svc := sessionFixture()

	_, err := svc.Verify("")
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing token") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSessionService_Verify_TamperedToken(t *testing.T) {
	_, _, svc := sessionFixture()

	cred, err := svc.Issue(context.Background(), testSubjectID, "leader@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := cred.Token[:len(cred.Token)-2] + "xx"
	_, err = svc.Verify(tampered)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid signature") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSessionService_Verify_ExpiredToken(t *testing.T) {
	_, _, svc := sessionFixture()

	token := signTestToken(t, jwt.MapClaims{
		"sub":     testSubjectID,
		"team_id": "T1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.Verify(token)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected the expired failure mode, got %v", err)
	}
}

func TestSessionService_Verify_MalformedPayload(t *testing.T) {
	_, _, svc := sessionFixture()

	// Validly signed, but missing team_id.
	token := signTestToken(t, jwt.MapClaims{
		"sub": testSubjectID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Verify(token)
	if !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "malformed payload") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSessionService_Verify_MissingSecret(t *testing.T) {
	identity, directory, _ := sessionFixture()
	svc := NewSessionService(identity, directory, "", 24*time.Hour)

	_, err := svc.Verify("some-token")
	if !domain.IsKind(err, domain.KindConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}
