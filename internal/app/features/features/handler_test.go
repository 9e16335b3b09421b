package features_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sjihq/featureboard/internal/app/features/features"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
	"github.com/sjihq/featureboard/internal/domain/models"
	"github.com/sjihq/featureboard/internal/testutil"
)

func newTestHandler(t *testing.T) (chi.Router, *mongo.Database, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := features.NewHandler(db, zap.NewNop())
	return features.Routes(handler), db, testutil.NewFixtures(t, db)
}

func asTestUser(u models.User) testutil.TestUser {
	return testutil.TestUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func TestRoutes(t *testing.T) {
	router, _, _ := newTestHandler(t)
	if router == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestCreate_RequiresAuth(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := testutil.NewJSONRequest("POST", "/", `{"title":"Dark mode","description":"Please"}`)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestCreate_Success(t *testing.T) {
	router, db, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"Dark mode","description":"Please add a dark theme"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "Feature created successfully")
	rec.AssertContains(t, "Dark mode")
	rec.AssertContains(t, owner.ID.Hex())

	count, err := db.Collection("features").CountDocuments(ctx, bson.M{"title": "Dark mode"})
	if err != nil {
		t.Fatalf("failed to count features: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 stored feature, got %d", count)
	}
}

func TestCreate_StripsMarkup(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"<b>Bold idea</b>","description":"<script>alert(1)</script>Safe text"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "Bold idea")
	body := rec.BodyString()
	for _, banned := range []string{"<b>", "<script>"} {
		if strings.Contains(body, banned) {
			t.Errorf("response body should not contain %q", banned)
		}
	}
}

func TestCreate_KeepsDescriptionFormatting(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"Rich idea","description":"<strong>Bold</strong> case <script>alert(1)</script>"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var body struct {
		Feature struct {
			Description string `json:"description"`
		} `json:"feature"`
	}
	if err := json.Unmarshal([]byte(rec.BodyString()), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Feature.Description != "<strong>Bold</strong> case" {
		t.Errorf("description = %q, want formatting kept and script removed", body.Feature.Description)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"","description":"No title here"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Title and description are required")
}

func TestCreate_DuplicateTitle(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	fx.CreateFeature(ctx, "Dark Mode", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"dark mode","description":"Different casing, same title"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Feature with the same title already exists")
}

func TestList_ExcludesDeleted(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	fx.CreateFeature(ctx, "Visible feature", owner.ID)
	hidden := fx.CreateFeature(ctx, "Hidden feature", owner.ID)

	store := featurestore.New(fx.DB())
	if _, err := store.SoftDelete(ctx, hidden.ID); err != nil {
		t.Fatalf("failed to soft-delete: %v", err)
	}

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "All features retrieved successfully")
	rec.AssertContains(t, "Visible feature")
	if strings.Contains(rec.BodyString(), "Hidden feature") {
		t.Error("listing should not include soft-deleted features")
	}
}

func TestList_PageInfoAndCounts(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	for i := 0; i < 3; i++ {
		fx.CreateFeatureWithStatus(ctx, fmt.Sprintf("Feature %d", i), owner.ID, models.StatusPending)
	}
	fx.CreateFeatureWithStatus(ctx, "Shipped one", owner.ID, models.StatusComplete)

	req := testutil.NewRequest("GET", "/?page=1&limit=2")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Features []json.RawMessage `json:"features"`
		PageInfo struct {
			CurrentPage int  `json:"currentPage"`
			TotalPages  int  `json:"totalPages"`
			HasMoreNext bool `json:"hasMoreNext"`
		} `json:"pageInfo"`
		StatusCounts map[string]int `json:"statusCounts"`
	}
	if err := json.Unmarshal([]byte(rec.BodyString()), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Features) != 2 {
		t.Errorf("expected 2 features on page, got %d", len(body.Features))
	}
	if body.PageInfo.CurrentPage != 1 || body.PageInfo.TotalPages != 2 || !body.PageInfo.HasMoreNext {
		t.Errorf("unexpected pageInfo: %+v", body.PageInfo)
	}
	if body.StatusCounts[models.StatusPending] != 3 {
		t.Errorf("expected 3 pending, got %d", body.StatusCounts[models.StatusPending])
	}
	if body.StatusCounts[models.StatusComplete] != 1 {
		t.Errorf("expected 1 done, got %d", body.StatusCounts[models.StatusComplete])
	}
}

func TestList_StatusFilter(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	fx.CreateFeatureWithStatus(ctx, "Pending one", owner.ID, models.StatusPending)
	fx.CreateFeatureWithStatus(ctx, "Complete one", owner.ID, models.StatusComplete)

	req := testutil.NewRequest("GET", "/?status=Complete")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Complete one")
	if strings.Contains(rec.BodyString(), "Pending one") {
		t.Error("status filter should exclude non-matching features")
	}
}

func TestList_DropsFeaturesOfDeletedOwners(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	ghost := fx.CreateDeletedUser(ctx, "Ghost", "ghost@test.com")
	fx.CreateFeature(ctx, "Kept feature", owner.ID)
	fx.CreateFeature(ctx, "Orphaned feature", ghost.ID)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Features []json.RawMessage `json:"features"`
		PageInfo struct {
			TotalItems int `json:"totalItems"`
		} `json:"pageInfo"`
	}
	if err := json.Unmarshal([]byte(rec.BodyString()), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Features) != 1 {
		t.Errorf("expected 1 feature on the page, got %d", len(body.Features))
	}
	if body.PageInfo.TotalItems != 2 {
		t.Errorf("expected totalItems 2, got %d", body.PageInfo.TotalItems)
	}
	if strings.Contains(rec.BodyString(), "Orphaned feature") {
		t.Error("listing should not include features whose owner is deleted")
	}
}

func TestGetByID_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Detail feature", owner.ID)

	req := testutil.NewRequest("GET", "/"+f.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature fetched successfully")
	rec.AssertContains(t, "Detail feature")
	rec.AssertContains(t, owner.Name)
}

func TestGetByID_IncludesSoftDeleted(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Deleted but fetchable", owner.ID)

	store := featurestore.New(fx.DB())
	if _, err := store.SoftDelete(ctx, f.ID); err != nil {
		t.Fatalf("failed to soft-delete: %v", err)
	}

	req := testutil.NewRequest("GET", "/"+f.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Deleted but fetchable")
}

func TestGetByID_NotFound(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/"+primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Feature not found")
}

func TestGetByID_MalformedID(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/not-a-hex-id")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Feature not found")
}

func TestSearch_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	fx.CreateFeature(ctx, "Dark mode support", owner.ID)
	fx.CreateFeature(ctx, "Light theme", owner.ID)

	req := testutil.NewRequest("GET", "/search/dark")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Features retrieved successfully")
	rec.AssertContains(t, "Dark mode support")
	if strings.Contains(rec.BodyString(), "Light theme") {
		t.Error("search should not match unrelated features")
	}
}

func TestSearch_DropsFeaturesOfDeletedOwners(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	ghost := fx.CreateDeletedUser(ctx, "Ghost", "ghost@test.com")
	fx.CreateFeature(ctx, "Dark mode kept", owner.ID)
	fx.CreateFeature(ctx, "Dark mode orphaned", ghost.ID)

	req := testutil.NewRequest("GET", "/search/dark")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Dark mode kept")
	if strings.Contains(rec.BodyString(), "Dark mode orphaned") {
		t.Error("search should not include features whose owner is deleted")
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	other := fx.CreateUser(ctx, "Other", "other@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Original title", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/update",
		`{"title":"Hijacked","description":"Nope"}`, asTestUser(other))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "You are not authorized!")
}

func TestUpdate_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Original title", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/update",
		`{"title":"Updated title","description":"Updated description"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature updated successfully")
	rec.AssertContains(t, "Updated title")
}

func TestUpdateStatus_AdminOnly(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Status change", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/status",
		`{"status":"in-progress"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestUpdateStatus_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	admin := fx.CreateAdmin(ctx, "Admin", "admin@test.com")
	f := fx.CreateFeature(ctx, "Status change", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/status",
		`{"status":"In-Progress"}`, asTestUser(admin))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature status updated successfully")
	rec.AssertContains(t, models.StatusInProgress)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	admin := fx.CreateAdmin(ctx, "Admin", "admin@test.com")
	f := fx.CreateFeature(ctx, "Status change", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/status",
		`{"status":"Shipped"}`, asTestUser(admin))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid feature status")
}

func TestSoftDelete_AdminOnly(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "To hide", owner.ID)

	req := testutil.NewAuthenticatedRequest("PATCH", "/"+f.ID.Hex(), asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestSoftDelete_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	admin := fx.CreateAdmin(ctx, "Admin", "admin@test.com")
	f := fx.CreateFeature(ctx, "To hide", owner.ID)

	req := testutil.NewAuthenticatedRequest("PATCH", "/"+f.ID.Hex(), asTestUser(admin))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature deleted successfully")

	store := featurestore.New(fx.DB())
	got, err := store.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("failed to fetch feature: %v", err)
	}
	if !got.IsDeleted {
		t.Error("feature should be marked deleted")
	}
}

func TestHardDelete_OwnerOnly(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	other := fx.CreateUser(ctx, "Other", "other@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "To remove", owner.ID)

	req := testutil.NewAuthenticatedRequest("DELETE", "/"+f.ID.Hex(), asTestUser(other))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "You are not authorized!")
}

func TestHardDelete_Success(t *testing.T) {
	router, db, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "To remove", owner.ID)

	req := testutil.NewAuthenticatedRequest("DELETE", "/"+f.ID.Hex(), asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature deleted successfully")

	count, err := db.Collection("features").CountDocuments(ctx, bson.M{"_id": f.ID})
	if err != nil {
		t.Fatalf("failed to count features: %v", err)
	}
	if count != 0 {
		t.Error("feature document should be gone")
	}
}

func TestLike_Idempotent(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	liker := fx.CreateUser(ctx, "Liker", "liker@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Likeable", owner.ID)

	for i := 0; i < 2; i++ {
		req := testutil.NewAuthenticatedRequest("PATCH", "/"+f.ID.Hex()+"/like", asTestUser(liker))
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, "Feature liked successfully")
	}

	store := featurestore.New(fx.DB())
	got, err := store.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("failed to fetch feature: %v", err)
	}
	if got.Likes.Count != 1 {
		t.Errorf("expected like count 1, got %d", got.Likes.Count)
	}
}

func TestUnlike_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	liker := fx.CreateUser(ctx, "Liker", "liker@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Likeable", owner.ID)

	store := featurestore.New(fx.DB())
	if _, err := store.Like(ctx, f.ID, liker.ID); err != nil {
		t.Fatalf("failed to seed like: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("PATCH", "/"+f.ID.Hex()+"/unlike", asTestUser(liker))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Feature unliked successfully")

	got, err := store.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("failed to fetch feature: %v", err)
	}
	if got.Likes.Count != 0 {
		t.Errorf("expected like count 0, got %d", got.Likes.Count)
	}
}

func TestAddComment_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	commenter := fx.CreateUser(ctx, "Commenter", "commenter@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/comments",
		`{"comment":"Great idea"}`, asTestUser(commenter))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Comment added successfully")
	rec.AssertContains(t, "Great idea")
	rec.AssertContains(t, commenter.Name)
}

func TestAddComment_Empty(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH", "/"+f.ID.Hex()+"/comments",
		`{"comment":"  "}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Comment is required")
}

func TestEditComment_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	commenter := fx.CreateUser(ctx, "Commenter", "commenter@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	store := featurestore.New(fx.DB())
	withComment, err := store.AddComment(ctx, f.ID, commenter.ID, "First draft")
	if err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	commentID := withComment.Comments.Data[0].ID

	req := testutil.NewAuthenticatedJSONRequest("PATCH",
		"/"+f.ID.Hex()+"/comments/"+commentID,
		`{"comment":"Second draft"}`, asTestUser(commenter))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Comment updated successfully")
	rec.AssertContains(t, "Second draft")
}

func TestEditComment_UnknownID(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	req := testutil.NewAuthenticatedJSONRequest("PATCH",
		"/"+f.ID.Hex()+"/comments/no-such-comment",
		`{"comment":"Whatever"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Comment not found")
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	commenter := fx.CreateUser(ctx, "Commenter", "commenter@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	store := featurestore.New(fx.DB())
	withComment, err := store.AddComment(ctx, f.ID, commenter.ID, "Mine to keep")
	if err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	commentID := withComment.Comments.Data[0].ID

	req := testutil.NewAuthenticatedRequest("DELETE",
		"/"+f.ID.Hex()+"/comments/"+commentID, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "You are not authorized!")
}

func TestDeleteComment_Success(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	commenter := fx.CreateUser(ctx, "Commenter", "commenter@test.com", models.RoleUser)
	f := fx.CreateFeature(ctx, "Discussable", owner.ID)

	store := featurestore.New(fx.DB())
	withComment, err := store.AddComment(ctx, f.ID, commenter.ID, "Remove me")
	if err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	commentID := withComment.Comments.Data[0].ID

	req := testutil.NewAuthenticatedRequest("DELETE",
		"/"+f.ID.Hex()+"/comments/"+commentID, asTestUser(commenter))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Comment deleted successfully")

	got, err := store.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("failed to fetch feature: %v", err)
	}
	if got.Comments.Count != 0 {
		t.Errorf("expected comment count 0, got %d", got.Comments.Count)
	}
}

func TestFeatureLifecycle(t *testing.T) {
	router, _, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "Owner", "owner@test.com", models.RoleUser)
	liker := fx.CreateUser(ctx, "Liker", "liker@test.com", models.RoleUser)
	admin := fx.CreateAdmin(ctx, "Admin", "admin@test.com")

	req := testutil.NewAuthenticatedJSONRequest("POST", "/",
		`{"title":"Offline mode","description":"Cache boards for travel"}`, asTestUser(owner))
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var created struct {
		Feature struct {
			ID string `json:"id"`
		} `json:"feature"`
	}
	if err := json.Unmarshal([]byte(rec.BodyString()), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	id := created.Feature.ID

	req = testutil.NewAuthenticatedRequest("PATCH", "/"+id+"/like", asTestUser(liker))
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewAuthenticatedRequest("PATCH", "/"+id+"/unlike", asTestUser(liker))
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewAuthenticatedJSONRequest("PATCH", "/"+id+"/status",
		`{"status":"planned"}`, asTestUser(admin))
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewAuthenticatedJSONRequest("PATCH", "/"+id+"/update",
		`{"title":"Offline support","description":"Cache boards for travel"}`, asTestUser(owner))
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var updated struct {
		Feature struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Status      string `json:"status"`
			Likes       struct {
				Count int `json:"count"`
			} `json:"likes"`
		} `json:"feature"`
	}
	if err := json.Unmarshal([]byte(rec.BodyString()), &updated); err != nil {
		t.Fatalf("failed to decode update response: %v", err)
	}
	if updated.Feature.Title != "Offline support" {
		t.Errorf("title = %q, want %q", updated.Feature.Title, "Offline support")
	}
	if updated.Feature.Description != "Cache boards for travel" {
		t.Errorf("description = %q, want it untouched by the edit", updated.Feature.Description)
	}
	if updated.Feature.Status != models.StatusPlanned {
		t.Errorf("status = %q, want %q", updated.Feature.Status, models.StatusPlanned)
	}
	if updated.Feature.Likes.Count != 0 {
		t.Errorf("like count = %d, want 0 after unlike", updated.Feature.Likes.Count)
	}

	req = testutil.NewAuthenticatedRequest("DELETE", "/"+id, asTestUser(owner))
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewRequest("GET", "/"+id)
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Feature not found")
}
