package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/config"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens the MongoDB connection, verifies it and ensures the indexes the app relies on.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.DBName)
	if err := EnsureIndexes(ctx, db); err != nil {
		logger.Log.WithError(err).Warn("Index creation reported errors")
	}

	logger.Log.WithField("db", cfg.DBName).Info("Connected to MongoDB")
	return db, nil
}

// EnsureIndexes creates the indexes used by report, notification and NGO queries.
// Report locations are GeoJSON points, so the 2dsphere index expects [longitude, latitude].
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		"reports": {
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "ngo_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"ngos": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"adoption_applications": {
			{Keys: bson.D{{Key: "ngo_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"animals": {
			{Keys: bson.D{{Key: "ngo_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"volunteers": {
			{Keys: bson.D{{Key: "ngo_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	var firstErr error
	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			logger.Log.WithError(err).WithField("collection", coll).Error("Failed to create indexes")
			if firstErr == nil {
				firstErr = fmt.Errorf("create indexes on %s: %w", coll, err)
			}
		}
	}
	return firstErr
}
