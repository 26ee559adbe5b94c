package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobmate/engine-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SuggestionRepository interface {
	ReplaceBatch(ctx context.Context, userID string, mode models.SuggestionMode, batch []models.Suggestion) error
	ListActive(ctx context.Context, userID string, mode *models.SuggestionMode) ([]models.Suggestion, error)
	DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type suggestionRepo struct {
	col *mongo.Collection
}

func NewSuggestionRepo(db *mongo.Database) SuggestionRepository {
	return &suggestionRepo{col: db.Collection("suggestions")}
}

// ReplaceBatch deactivates the user's previous batch for the mode and
// inserts the new one, so the UI only ever shows one generation per mode.
func (r *suggestionRepo) ReplaceBatch(ctx context.Context, userID string, mode models.SuggestionMode, batch []models.Suggestion) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"user_id": userID, "mode": mode, "active": true},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}

	docs := make([]any, 0, len(batch))
	now := time.Now().UTC()
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = uuid.NewString()
		}
		if batch[i].CreatedAt.IsZero() {
			batch[i].CreatedAt = now
		}
		docs = append(docs, batch[i])
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}

func (r *suggestionRepo) ListActive(ctx context.Context, userID string, mode *models.SuggestionMode) ([]models.Suggestion, error) {
	filter := bson.M{"user_id": userID, "active": true}
	if mode != nil {
		filter["mode"] = *mode
	}

	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Suggestion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *suggestionRepo) DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"active": true, "created_at": bson.M{"$lt": cutoff.UTC()}},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
