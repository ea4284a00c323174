package domain

import "time"

// IdentityClaim is the trusted identity extracted from a verified session
// credential. Immutable; lives for one request.
type IdentityClaim struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	TeamID    string `json:"team_id"`
}

// Credential is a signed, time-bounded session token issued at login.
// Validity is self-contained: signature plus expiry, no server-side state.
type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TeamID    string    `json:"team_id"`
}
