package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

const (
	maxLinkLen        = 2048
	maxDescriptionLen = 5000
)

// SubmissionService implements the once-only submission workflow.
type SubmissionService struct {
	directory ports.TeamDirectory
	store     ports.SubmissionStore
	logger    zerolog.Logger
}

func NewSubmissionService(directory ports.TeamDirectory, store ports.SubmissionStore, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{directory: directory, store: store, logger: logger}
}

// Submit accepts a team's first submission or returns the existing one.
// Once a team has submitted, repeat calls are no-op reads regardless of the
// payload they carry.
func (s *SubmissionService) Submit(ctx context.Context, claim *domain.IdentityClaim, content ports.SubmissionContent) (*ports.SubmissionResult, error) {
	content = sanitizeContent(content)
	if details := validateContent(content); len(details) > 0 {
		return nil, domain.ValidationError(details)
	}

	// Re-derive the team from the directory instead of trusting the claim:
	// the directory row is the source of truth for leader display fields.
	team, err := s.directory.FindByLeaderID(ctx, claim.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, domain.NewError(domain.KindNotFound, "team registration not found")
		}
		return nil, domain.ExternalError("team directory", err)
	}
	leader, ok := team.Leader()
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, "leader info not found")
	}

	existing, err := s.store.FindByTeamID(ctx, team.TeamID)
	if err == nil {
		s.logger.Info().Str("team_id", team.TeamID).Msg("idempotent replay, returning stored submission")
		return &ports.SubmissionResult{Submission: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrSubmissionNotFound) {
		return nil, domain.ExternalError("submission store", err)
	}

	submission := &domain.Submission{
		SubmittedAt: time.Now().UTC().Format(domain.SubmissionTimeLayout),
		TeamName:    team.TeamName,
		TeamID:      team.TeamID,
		LeaderName:  leader.Name,
		LeaderPhone: leader.PhoneNumber,
		LeaderEmail: leader.Email,
		GithubLink:  content.GithubLink,
		PptLink:     content.PptLink,
		VideoLink:   content.VideoLink,
		Description: content.Description,
	}

	if err := s.store.Append(ctx, submission); err != nil {
		if errors.Is(err, domain.ErrSubmissionExists) {
			// Lost the first-write race; the stored row wins.
			stored, findErr := s.store.FindByTeamID(ctx, team.TeamID)
			if findErr != nil {
				return nil, domain.ExternalError("submission store", findErr)
			}
			return &ports.SubmissionResult{Submission: stored, AlreadyExisted: true}, nil
		}
		s.logger.Error().Err(err).Str("team_id", team.TeamID).Msg("failed to append submission")
		return nil, domain.ExternalError("submission store", err)
	}

	s.logger.Info().Str("team_id", team.TeamID).Str("team_name", team.TeamName).Msg("submission recorded")

	return &ports.SubmissionResult{Submission: submission, AlreadyExisted: false}, nil
}

// Retrieve returns the team's submission, or nil when none exists yet.
func (s *SubmissionService) Retrieve(ctx context.Context, claim *domain.IdentityClaim) (*domain.Submission, error) {
	team, err := s.directory.FindByLeaderID(ctx, claim.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, domain.NewError(domain.KindNotFound, "team registration not found")
		}
		return nil, domain.ExternalError("team directory", err)
	}

	submission, err := s.store.FindByTeamID(ctx, team.TeamID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return nil, nil
		}
		return nil, domain.ExternalError("submission store", err)
	}
	return submission, nil
}

// sanitizeContent trims, strips angle brackets, and length-caps every field.
// Sanitization runs regardless of whether validation later rejects the call.
func sanitizeContent(c ports.SubmissionContent) ports.SubmissionContent {
	return ports.SubmissionContent{
		GithubLink:  sanitizeField(c.GithubLink, maxLinkLen),
		PptLink:     sanitizeField(c.PptLink, maxLinkLen),
		VideoLink:   sanitizeField(c.VideoLink, maxLinkLen),
		Description: sanitizeField(c.Description, maxDescriptionLen),
	}
}

func sanitizeField(s string, max int) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	return truncate(s, max)
}

// validateContent checks every field and collects all violations, so a
// single call reports every broken field at once.
func validateContent(c ports.SubmissionContent) []string {
	var details []string
	details = append(details, validateLink("github_link", c.GithubLink)...)
	details = append(details, validateLink("ppt_link", c.PptLink)...)
	details = append(details, validateLink("video_link", c.VideoLink)...)

	if c.Description == "" {
		details = append(details, "description is required")
	} else if len(c.Description) > maxDescriptionLen {
		details = append(details, fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}
	return details
}

func validateLink(field, value string) []string {
	if value == "" {
		return []string{field + " is required"}
	}
	if len(value) > maxLinkLen {
		return []string{fmt.Sprintf("%s must be at most %d characters", field, maxLinkLen)}
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return []string{field + " must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []string{field + " must use http or https"}
	}
	return nil
}
