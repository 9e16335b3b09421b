// internal/app/store/features/listing.go
package featurestore

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sjihq/featureboard/internal/app/system/paging"
	"github.com/sjihq/featureboard/internal/domain/models"
)

// Sort keys accepted by List. Anything else falls back to the natural
// order, newest first.
const (
	SortCreatedAt = "createdAt"
	SortLikes     = "likes.count"
	SortComments  = "comments.count"
	SortTitle     = "title"
)

var sortFields = map[string]string{
	SortCreatedAt: "created_at",
	SortLikes:     "likes.count",
	SortComments:  "comments.count",
	// Sorting on the folded field keeps title order case-insensitive.
	SortTitle: "title_ci",
}

// ListParams selects and orders a page of non-deleted features.
type ListParams struct {
	Status    string // optional status filter
	SortBy    string // one of the Sort* keys; empty means newest first
	SortOrder string // "asc" or "desc" (default)
	Page      paging.Params
}

func (p ListParams) filter() bson.M {
	f := bson.M{"is_deleted": false}
	if p.Status != "" {
		f["status"] = p.Status
	}
	return f
}

func (p ListParams) sort() bson.D {
	order := -1
	if p.SortOrder == "asc" {
		order = 1
	}
	if field, ok := sortFields[p.SortBy]; ok {
		return bson.D{{Key: field, Value: order}, {Key: "_id", Value: -1}}
	}
	return bson.D{{Key: "_id", Value: -1}}
}

// List returns one page of features matching the params plus the total
// match count. Reference expansion happens in the caller; the page may
// shrink there when an owner no longer resolves.
func (s *Store) List(ctx context.Context, p ListParams) ([]models.Feature, int64, error) {
	filter := p.filter()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(p.sort()).
		SetSkip(p.Page.Skip()).
		SetLimit(int64(p.Page.Limit))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Feature
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// StatusCounts groups the non-deleted population (optionally narrowed
// to one status, matching the List predicate) by status.
func (s *Store) StatusCounts(ctx context.Context, status string) (map[string]int64, error) {
	match := bson.M{"is_deleted": false}
	if status != "" {
		match["status"] = status
	}

	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Status] = row.Count
	}
	return counts, cur.Err()
}

// Search returns one page of non-deleted features whose title or
// description contains the term, case-insensitively, newest first.
func (s *Store) Search(ctx context.Context, term string, page paging.Params) ([]models.Feature, int64, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{
		"is_deleted": false,
		"$or": bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		},
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Feature
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}