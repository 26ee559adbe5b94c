package config

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "jobmate_engine"
	}
	db := MongoClient.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// suggestions indexes
	suggestions := db.Collection("suggestions")
	_, err := suggestions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Serves the active-suggestions listing per user and mode.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "mode", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("by_user_mode_active"),
		},
		// Serves the retention sweep.
		{
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("by_active_created"),
		},
	})
	if err != nil {
		return err
	}

	// estimate_log indexes
	estimates := db.Collection("estimate_log")
	_, err = estimates.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_created"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("by_created"),
		},
	})
	return err
}
