package ports

import (
	"context"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// IdentityProvider is the external identity system that owns accounts and
// their verified emails. Consumed, never written.
type IdentityProvider interface {
	// Lookup returns the record for subjectID, or domain.ErrIdentityNotFound.
	Lookup(ctx context.Context, subjectID string) (*domain.IdentityRecord, error)
}
