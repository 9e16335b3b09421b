package configstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	configstore "github.com/sjihq/featureboard/internal/app/store/boardconfig"
	"github.com/sjihq/featureboard/internal/domain/models"
	"github.com/sjihq/featureboard/internal/testutil"
)

func TestStore_Get_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := configstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cfg.BoardStatus != models.BoardActive {
		t.Errorf("expected default status %q, got %q", models.BoardActive, cfg.BoardStatus)
	}
	if cfg.SortingOrder != models.SortMostVoted {
		t.Errorf("expected default sorting %q, got %q", models.SortMostVoted, cfg.SortingOrder)
	}
	if cfg.Name == "" {
		t.Error("expected default board name")
	}
}

func TestStore_Save_Singleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := configstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := primitive.NewObjectID()

	first, err := store.Save(ctx, models.BoardConfig{
		Name:         "My Board",
		Title:        "Requests",
		Description:  "desc",
		BoardStatus:  models.BoardActive,
		SortingOrder: models.SortNewestFirst,
	}, admin)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}

	second, err := store.Save(ctx, models.BoardConfig{
		Name:         "Renamed",
		Title:        "Requests",
		Description:  "desc",
		BoardStatus:  models.BoardInactive,
		SortingOrder: models.SortOldestFirst,
	}, admin)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	// The same document is updated, never a second one created.
	if second.ID != first.ID {
		t.Errorf("expected singleton document, got ids %s and %s", first.ID.Hex(), second.ID.Hex())
	}
	if second.Name != "Renamed" {
		t.Errorf("expected updated name, got %q", second.Name)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.BoardStatus != models.BoardInactive {
		t.Errorf("expected persisted status %q, got %q", models.BoardInactive, got.BoardStatus)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}