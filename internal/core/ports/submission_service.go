package ports

import (
	"context"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// SubmissionContent carries the four user-supplied fields of a submission.
type SubmissionContent struct {
	GithubLink  string
	PptLink     string
	VideoLink   string
	Description string
}

// SubmissionResult is returned by Submit.
type SubmissionResult struct {
	Submission *domain.Submission
	// AlreadyExisted is true when the team had submitted before; the
	// returned Submission is then the original row, unmodified.
	AlreadyExisted bool
}

// SubmissionService implements the once-only submission workflow.
type SubmissionService interface {
	// Submit accepts a first-time submission or returns the existing one.
	// Resubmission after success is a no-op read, never an overwrite.
	Submit(ctx context.Context, claim *domain.IdentityClaim, content SubmissionContent) (*SubmissionResult, error)

	// Retrieve returns the team's submission, or nil when nothing has been
	// submitted yet. Absence is a valid state, not an error.
	Retrieve(ctx context.Context, claim *domain.IdentityClaim) (*domain.Submission, error)
}
