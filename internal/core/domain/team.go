package domain

// TeamStatus represents the registration state of a team.
type TeamStatus string

const (
	StatusPending   TeamStatus = "pending"
	StatusConfirmed TeamStatus = "confirmed"
	StatusRejected  TeamStatus = "rejected"
)

// Member is a single registered team member.
type Member struct {
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	Email       string `json:"email" bson:"email"`
}

// Team is a row in the team directory. The directory is owned by the
// registration system; this service only reads it. The first member is the
// team leader.
type Team struct {
	TeamID   string     `json:"team_id" bson:"team_id"`
	TeamName string     `json:"team_name" bson:"team_name"`
	LeaderID string     `json:"leader_id" bson:"leader_id"`
	Status   TeamStatus `json:"status" bson:"status"`
	Members  []Member   `json:"members" bson:"members"`
}

// Leader returns the first member, which the directory contract designates
// as the team leader. ok is false when the member list is empty.
func (t *Team) Leader() (Member, bool) {
	if len(t.Members) == 0 {
		return Member{}, false
	}
	return t.Members[0], true
}

// IdentityRecord is what the external identity provider knows about a
// subject: its stable identifier and the verified email on file.
type IdentityRecord struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
}
