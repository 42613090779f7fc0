package memberrequests

import (
	"net/http"
	"testing"

	"github.com/clubsphere/clubsphere/internal/app/system/indexes"
	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.uber.org/zap"
)

func TestCreate_FirstRequestAccepted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/memberRequests",
		testutil.JSONBody(`{"name":"A User","role":"admin"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.Create(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"email":"user@test.com"`)
}

func TestCreate_SecondRequestConflicts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	h := NewHandler(db, zap.NewNop())

	first := testutil.NewRecorder()
	h.Create(first, testutil.NewAuthenticatedRequest(http.MethodPost, "/memberRequests",
		testutil.JSONBody(`{"name":"A User","role":"admin"}`), "user@test.com"))
	first.AssertStatus(t, http.StatusCreated)

	second := testutil.NewRecorder()
	h.Create(second, testutil.NewAuthenticatedRequest(http.MethodPost, "/memberRequests",
		testutil.JSONBody(`{"name":"A User","role":"admin"}`), "user@test.com"))
	second.AssertStatus(t, http.StatusConflict)
}

func TestCreate_UnsupportedRole(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())
	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/memberRequests",
		testutil.JSONBody(`{"name":"A User","role":"owner"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.Create(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestList_ReturnsPendingRequests(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateMemberRequest(ctx, "a@test.com")
	fx.CreateMemberRequest(ctx, "b@test.com")

	h := NewHandler(db, zap.NewNop())
	rec := testutil.NewRecorder()
	h.List(rec, testutil.NewAuthenticatedRequest(http.MethodGet, "/memberRequests", nil, "admin@test.com"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"a@test.com"`)
	rec.AssertContains(t, `"b@test.com"`)
}
