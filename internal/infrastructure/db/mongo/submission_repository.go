package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

const collectionSubmissions = "submissions"

// SubmissionRepository persists at most one submission per team. The unique
// index on team_id makes the insert an atomic first-write-wins operation, so
// two racing first submissions cannot both land.
type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionSubmissions)}
}

// FindByTeamID retrieves the stored submission for teamID.
func (r *SubmissionRepository) FindByTeamID(ctx context.Context, teamID string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Submission
	err := r.col.FindOne(ctx, bson.M{"team_id": teamID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Append inserts the submission unless a row for the team already exists.
func (r *SubmissionRepository) Append(ctx context.Context, s *domain.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSubmissionExists
		}
		return err
	}
	return nil
}

// EnsureIndexes creates the unique team_id index the Append contract relies on.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "team_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
