package handler

import (
	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

// --- Request → Service input ---

func toSubmissionContent(req submitRequest) ports.SubmissionContent {
	return ports.SubmissionContent{
		GithubLink:  req.GithubLink,
		PptLink:     req.PptLink,
		VideoLink:   req.VideoLink,
		Description: req.Description,
	}
}

// --- Service result → HTTP response ---

func toSubmitResponse(r *ports.SubmissionResult) submitResponse {
	return submitResponse{
		AlreadySubmitted: r.AlreadyExisted,
		Submission:       toSubmissionPayload(r.Submission),
	}
}

func toSubmissionPayload(s *domain.Submission) submissionPayload {
	return submissionPayload{
		SubmittedAt: s.SubmittedAt,
		TeamName:    s.TeamName,
		TeamID:      s.TeamID,
		LeaderName:  s.LeaderName,
		LeaderPhone: s.LeaderPhone,
		LeaderEmail: s.LeaderEmail,
		GithubLink:  s.GithubLink,
		PptLink:     s.PptLink,
		VideoLink:   s.VideoLink,
		Description: s.Description,
	}
}
