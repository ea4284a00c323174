package ports

import (
	"context"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// TeamDirectory is the read-only registry of registered teams, keyed by the
// leader's subject identifier.
type TeamDirectory interface {
	// FindByLeaderID returns the team whose leader_id equals leaderID, or
	// domain.ErrTeamNotFound when no such team exists.
	FindByLeaderID(ctx context.Context, leaderID string) (*domain.Team, error)
}
