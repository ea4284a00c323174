package ports

import (
	"context"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// SubmissionStore persists at most one submission row per team.
type SubmissionStore interface {
	// FindByTeamID returns the stored submission for teamID, or
	// domain.ErrSubmissionNotFound when the team has not submitted yet.
	FindByTeamID(ctx context.Context, teamID string) (*domain.Submission, error)

	// Append inserts the submission if and only if no row for its TeamID
	// exists. A concurrent or prior write for the same team yields
	// domain.ErrSubmissionExists; the row must be durably visible to
	// FindByTeamID before Append returns.
	Append(ctx context.Context, s *domain.Submission) error
}
