package domain

// SubmissionTimeLayout is the fixed format for Submission.SubmittedAt.
// Timestamps are rendered in UTC.
const SubmissionTimeLayout = "2006-01-02 15:04:05"

// Submission is the one row a team may ever write. Created once by the
// submission workflow, never mutated, never deleted.
type Submission struct {
	SubmittedAt string `json:"submitted_at" bson:"submitted_at"`
	TeamName    string `json:"team_name" bson:"team_name"`
	TeamID      string `json:"team_id" bson:"team_id"`
	LeaderName  string `json:"leader_name" bson:"leader_name"`
	LeaderPhone string `json:"leader_phone" bson:"leader_phone"`
	LeaderEmail string `json:"leader_email" bson:"leader_email"`
	GithubLink  string `json:"github_link" bson:"github_link"`
	PptLink     string `json:"ppt_link" bson:"ppt_link"`
	VideoLink   string `json:"video_link" bson:"video_link"`
	Description string `json:"description" bson:"description"`
}
