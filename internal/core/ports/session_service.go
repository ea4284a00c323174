package ports

import (
	"context"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// SessionService issues and verifies session credentials for team leaders.
type SessionService interface {
	// Issue authenticates (subjectID, email) against the identity provider
	// and the team directory, and returns a signed 24h credential.
	Issue(ctx context.Context, subjectID, email string) (*domain.Credential, error)

	// Verify checks a presented token and returns the identity claim it
	// carries. Expiry, bad signatures, and missing claim fields fail with
	// distinguishable unauthorized errors.
	Verify(token string) (*domain.IdentityClaim, error)
}
