// internal/app/store/features/featurestore.go
package featurestore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sjihq/featureboard/internal/domain/models"
)

// Store provides access to the features collection. Every engagement
// mutation pairs its collection change with a matching counter change in
// a single update, so likes.count and comments.count never drift from
// their collections.
type Store struct {
	c *mongo.Collection
}

var (
	// ErrDuplicateTitle is returned when a non-deleted feature already
	// carries the same title, compared case-insensitively.
	ErrDuplicateTitle = errors.New("a feature with this title already exists")
	// ErrNotFound is returned when no feature has the given ID.
	ErrNotFound = errors.New("feature not found")
	// ErrCommentNotFound is returned when the parent feature exists but
	// holds no comment with the given ID.
	ErrCommentNotFound = errors.New("comment not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("features")}
}

// Create inserts a new feature request in the pending state with empty
// like and comment collections. It rejects the insert when any
// non-deleted feature already has the same title, ignoring case; a
// soft-deleted feature does not block reuse of its title.
func (s *Store) Create(ctx context.Context, title, description string, owner primitive.ObjectID) (models.Feature, error) {
	dup := bson.M{
		"is_deleted": false,
		"title": primitive.Regex{
			// Anchored so "Dark" does not collide with "Dark mode".
			Pattern: "^" + regexp.QuoteMeta(title) + "$",
			Options: "i",
		},
	}
	err := s.c.FindOne(ctx, dup).Err()
	if err == nil {
		return models.Feature{}, ErrDuplicateTitle
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Feature{}, err
	}

	now := time.Now().UTC()
	f := models.Feature{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: description,
		Status:      models.StatusPending,
		CreatedBy:   owner,
		Likes:       models.Likes{Count: 0, Users: []primitive.ObjectID{}},
		Comments:    models.Comments{Count: 0, Data: []models.Comment{}},
		IsDeleted:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Feature{}, err
	}
	return f, nil
}

// GetByID loads a feature by ID. Soft-deleted features are still
// returned: single-item operations fetch by ID regardless of the
// deletion flag, only listings exclude them.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Feature, error) {
	var f models.Feature
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Feature{}, ErrNotFound
		}
		return models.Feature{}, err
	}
	return f, nil
}

// UpdateInfo replaces the feature's title and description. Status,
// likes, and comments are untouched. Ownership is the caller's concern.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, title, description string) (models.Feature, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"title":       title,
		"title_ci":    text.Fold(title),
		"description": description,
		"updated_at":  time.Now().UTC(),
	}})
}

// UpdateStatus moves the feature to any of the five statuses. The
// status set is flat; no transition order is enforced.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Feature, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
}

// SoftDelete hides the feature from listings while keeping the record.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) (models.Feature, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"is_deleted": true,
		"updated_at": time.Now().UTC(),
	}})
}

// HardDelete physically removes the feature, bypassing soft delete.
func (s *Store) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Like adds the user to the like set and bumps the counter in one
// atomic update. Liking an already-liked feature is a no-op, so two
// racing likes from the same user cannot double-increment.
func (s *Store) Like(ctx context.Context, id, userID primitive.ObjectID) (models.Feature, error) {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "likes.users": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"likes.users": userID},
			"$inc":      bson.M{"likes.count": 1},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return models.Feature{}, err
	}
	return s.GetByID(ctx, id)
}

// Unlike removes the user from the like set and drops the counter.
// Unliking a feature the user never liked is a no-op.
func (s *Store) Unlike(ctx context.Context, id, userID primitive.ObjectID) (models.Feature, error) {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "likes.users": userID},
		bson.M{
			"$pull": bson.M{"likes.users": userID},
			"$inc":  bson.M{"likes.count": -1},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return models.Feature{}, err
	}
	return s.GetByID(ctx, id)
}

// ToggleLike flips the user's like: liked features are unliked and
// vice versa.
func (s *Store) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (models.Feature, error) {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Feature{}, err
	}
	if f.Likes.LikedBy(userID) {
		return s.Unlike(ctx, id, userID)
	}
	return s.Like(ctx, id, userID)
}

// AddComment appends a comment and bumps the counter atomically.
func (s *Store) AddComment(ctx context.Context, id, author primitive.ObjectID, body string) (models.Feature, error) {
	comment := models.Comment{
		ID:         uuid.NewString(),
		CommentsBy: author,
		Comment:    body,
		CreatedAt:  time.Now().UTC(),
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"comments.data": comment},
			"$inc":  bson.M{"comments.count": 1},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return models.Feature{}, err
	}
	if res.MatchedCount == 0 {
		return models.Feature{}, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// EditComment replaces a comment's body by removing the old entry and
// appending a fresh one with the same ID and author but a new
// timestamp. The edited comment therefore moves to the end of the
// sequence; that reordering is the board's documented contract.
func (s *Store) EditComment(ctx context.Context, id primitive.ObjectID, commentID, body string) (models.Feature, error) {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Feature{}, err
	}
	old, ok := f.Comments.Find(commentID)
	if !ok {
		return models.Feature{}, ErrCommentNotFound
	}

	if _, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"comments.data": bson.M{"id": commentID}},
			"$inc":  bson.M{"comments.count": -1},
		}); err != nil {
		return models.Feature{}, err
	}

	replacement := models.Comment{
		ID:         old.ID,
		CommentsBy: old.CommentsBy,
		Comment:    body,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"comments.data": replacement},
			"$inc":  bson.M{"comments.count": 1},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		}); err != nil {
		return models.Feature{}, err
	}
	return s.GetByID(ctx, id)
}

// DeleteComment removes a comment and drops the counter atomically.
// Author checks happen in the handler against the loaded feature.
func (s *Store) DeleteComment(ctx context.Context, id primitive.ObjectID, commentID string) (models.Feature, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "comments.data.id": commentID},
		bson.M{
			"$pull": bson.M{"comments.data": bson.M{"id": commentID}},
			"$inc":  bson.M{"comments.count": -1},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return models.Feature{}, err
	}
	if res.MatchedCount == 0 {
		return models.Feature{}, ErrCommentNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Store) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (models.Feature, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var f models.Feature
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Feature{}, ErrNotFound
		}
		return models.Feature{}, err
	}
	return f, nil
}