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

type EstimateLogRepository interface {
	Append(ctx context.Context, entry *models.EstimateLog) error
	ListRecentByUser(ctx context.Context, userID string, limit int64) ([]models.EstimateLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type estimateLogRepo struct {
	col *mongo.Collection
}

func NewEstimateLogRepo(db *mongo.Database) EstimateLogRepository {
	return &estimateLogRepo{col: db.Collection("estimate_log")}
}

func (r *estimateLogRepo) Append(ctx context.Context, entry *models.EstimateLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *estimateLogRepo) ListRecentByUser(ctx context.Context, userID string, limit int64) ([]models.EstimateLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.EstimateLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *estimateLogRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff.UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
