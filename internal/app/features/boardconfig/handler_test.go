package boardconfig_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sjihq/featureboard/internal/app/features/boardconfig"
	configstore "github.com/sjihq/featureboard/internal/app/store/boardconfig"
	"github.com/sjihq/featureboard/internal/domain/models"
	"github.com/sjihq/featureboard/internal/testutil"
)

func newTestHandler(t *testing.T) (chi.Router, *configstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := boardconfig.NewHandler(db, zap.NewNop())
	return boardconfig.Routes(handler), configstore.New(db)
}

func TestRoutes(t *testing.T) {
	router, _ := newTestHandler(t)
	if router == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestGet_DefaultsWithoutDocument(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Website info fetched successfully")
	rec.AssertContains(t, models.BoardActive)
	rec.AssertContains(t, models.SortMostVoted)
}

func TestUpdate_RequiresAdmin(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"name":"My Board"}`, testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestUpdate_MergesSuppliedFields(t *testing.T) {
	router, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"name":"My Board","sortingOrder":"NewestFirst"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Website info updated successfully")

	cfg, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("failed to fetch config: %v", err)
	}
	if cfg.Name != "My Board" {
		t.Errorf("expected name %q, got %q", "My Board", cfg.Name)
	}
	if cfg.SortingOrder != models.SortNewestFirst {
		t.Errorf("expected sorting order %q, got %q", models.SortNewestFirst, cfg.SortingOrder)
	}
	// Fields absent from the body keep their previous values.
	if cfg.BoardStatus != models.BoardActive {
		t.Errorf("expected board status %q, got %q", models.BoardActive, cfg.BoardStatus)
	}
}

func TestUpdate_NameTooLong(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"name":"This board name is far too long to be accepted"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Website name must be 1-25 characters")
}

func TestUpdate_InvalidLogoExtension(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"logoUrl":"https://cdn.test.com/logo.svg"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid file extension. Only jpg, jpeg, png are allowed.")
}

func TestUpdate_ValidLogoExtension(t *testing.T) {
	router, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"logoUrl":"https://cdn.test.com/logo.PNG"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	cfg, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("failed to fetch config: %v", err)
	}
	if cfg.LogoURL != "https://cdn.test.com/logo.PNG" {
		t.Errorf("unexpected logo URL %q", cfg.LogoURL)
	}
}

func TestUpdate_InvalidBoardStatus(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"boardStatus":"Paused"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Board status must be Active or Inactive")
}

func TestUpdate_InvalidSortingOrder(t *testing.T) {
	router, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/",
		`{"sortingOrder":"Random"}`, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Sorting order must be MostVoted, NewestFirst or OldestFirst")
}
