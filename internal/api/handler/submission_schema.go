package handler

// --- Request / Response types ---

type submitRequest struct {
	GithubLink  string `json:"github_link"`
	PptLink     string `json:"ppt_link"`
	VideoLink   string `json:"video_link"`
	Description string `json:"description"`
}

// submissionPayload is the transport view of a stored submission. Kept
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type submissionPayload struct {
	SubmittedAt string `json:"submitted_at"`
	TeamName    string `json:"team_name"`
	TeamID      string `json:"team_id"`
	LeaderName  string `json:"leader_name"`
	LeaderPhone string `json:"leader_phone"`
	LeaderEmail string `json:"leader_email"`
	GithubLink  string `json:"github_link"`
	PptLink     string `json:"ppt_link"`
	VideoLink   string `json:"video_link"`
	Description string `json:"description"`
}

type submitResponse struct {
	AlreadySubmitted bool              `json:"already_submitted"`
	Submission       submissionPayload `json:"submission"`
}

type mineResponse struct {
	Submitted  bool               `json:"submitted"`
	Submission *submissionPayload `json:"submission"`
}
