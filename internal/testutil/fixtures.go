package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sjihq/featureboard/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleAdmin)
}

// CreateDeletedUser creates a soft-deleted test user.
func (f *Fixtures) CreateDeletedUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      models.RoleUser,
		IsDeleted: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create deleted test user: %v", err)
	}
	return user
}

// CreateFeature creates a test feature request owned by the given user.
func (f *Fixtures) CreateFeature(ctx context.Context, title string, ownerID primitive.ObjectID) models.Feature {
	f.t.Helper()
	return f.CreateFeatureWithStatus(ctx, title, ownerID, models.StatusPending)
}

// CreateFeatureWithStatus creates a test feature in the given workflow status.
func (f *Fixtures) CreateFeatureWithStatus(ctx context.Context, title string, ownerID primitive.ObjectID, status string) models.Feature {
	f.t.Helper()

	now := time.Now().UTC()
	feature := models.Feature{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test feature description",
		Status:      status,
		CreatedBy:   ownerID,
		Likes:       models.Likes{Users: []primitive.ObjectID{}},
		Comments:    models.Comments{Data: []models.Comment{}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("features").InsertOne(ctx, feature); err != nil {
		f.t.Fatalf("failed to create test feature: %v", err)
	}
	return feature
}
