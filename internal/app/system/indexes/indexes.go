// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates the indexes the board depends on. Called once at
// startup; every ensure is idempotent, and errors are aggregated so any
// problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureFeatures(ctx, db); err != nil {
		problems = append(problems, "features: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "is_deleted", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("by_deleted_newest"),
		},
	})
	return err
}

func ensureFeatures(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("features").Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Listing predicate: is_deleted plus optional status, newest first.
		{
			Keys:    bson.D{{Key: "is_deleted", Value: 1}, {Key: "status", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("by_deleted_status_newest"),
		},
		// Case-insensitive title sort and duplicate probing.
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetName("by_title_ci"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_created_at"),
		},
		{
			Keys:    bson.D{{Key: "likes.count", Value: -1}},
			Options: options.Index().SetName("by_like_count"),
		},
	})
	return err
}