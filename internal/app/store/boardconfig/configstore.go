// internal/app/store/boardconfig/configstore.go
package configstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sjihq/featureboard/internal/domain/models"
)

// Store provides access to the board_config collection.
// The board has exactly one configuration document.
type Store struct {
	c *mongo.Collection
}

// New creates a new board config store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("board_config")}
}

// Defaults are used until an admin saves a configuration.
func Defaults() models.BoardConfig {
	return models.BoardConfig{
		Name:         "Feature Board",
		Title:        "Feature Requests",
		Description:  "Vote and comment on features you want to see.",
		BoardStatus:  models.BoardActive,
		SortingOrder: models.SortMostVoted,
	}
}

// Get returns the board configuration, or the defaults when none has
// been saved yet.
func (s *Store) Get(ctx context.Context) (models.BoardConfig, error) {
	var cfg models.BoardConfig
	err := s.c.FindOne(ctx, bson.M{}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Defaults(), nil
	}
	if err != nil {
		return models.BoardConfig{}, err
	}
	return cfg, nil
}

// Save upserts the singleton configuration document. Only the
// presentation fields are written, so unknown input can never reach
// the document.
func (s *Store) Save(ctx context.Context, cfg models.BoardConfig, updatedBy primitive.ObjectID) (models.BoardConfig, error) {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":          cfg.Name,
			"title":         cfg.Title,
			"description":   cfg.Description,
			"logo_url":      cfg.LogoURL,
			"board_status":  cfg.BoardStatus,
			"sorting_order": cfg.SortingOrder,
			"updated_at":    now,
			"updated_by_id": updatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.BoardConfig
	if err := s.c.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&saved); err != nil {
		return models.BoardConfig{}, err
	}
	return saved, nil
}