package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

const collectionTeams = "teams"

// TeamRepository reads the team directory. The registration system owns the
// collection; this service never writes to it.
type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection(collectionTeams)}
}

// FindByLeaderID retrieves the team whose leader_id matches leaderID.
func (r *TeamRepository) FindByLeaderID(ctx context.Context, leaderID string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Team
	err := r.col.FindOne(ctx, bson.M{"leader_id": leaderID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}
