package userstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sjihq/featureboard/internal/app/system/auth"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
)

// Fetcher implements auth.UserFetcher so the auth middleware can load
// fresh account data on every request.
type Fetcher struct {
	store *Store
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{store: New(db)}
}

// FetchUser resolves a token subject to the current account. It returns
// ok=false for malformed IDs, missing accounts, and soft-deleted
// accounts, which the middleware treats as an anonymous request.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) (*auth.CurrentUser, bool) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	u, err := f.store.GetActiveByID(ctx, oid)
	if err != nil {
		return nil, false
	}

	return &auth.CurrentUser{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
		Role:     u.Role,
	}, true
}