package clubs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestList_ReturnsAllClubs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateClub(ctx, "Chess", 0)
	fx.CreateClub(ctx, "Robotics", 2500)

	h := NewHandler(db, zap.NewNop())
	rec := testutil.NewRecorder()
	h.List(rec, testutil.NewRequest(http.MethodGet, "/clubs", nil))

	rec.AssertStatus(t, http.StatusOK)

	var clubs []models.Club
	if err := json.Unmarshal(rec.Body.Bytes(), &clubs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(clubs) != 2 {
		t.Errorf("expected 2 clubs, got %d", len(clubs))
	}
}

func TestGet_ByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	club := fx.CreateClub(ctx, "Chess", 0)

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/clubs/"+club.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", club.ID.Hex())
	rec := testutil.NewRecorder()
	h.Get(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"name":"Chess"`)
}

func TestGet_InvalidID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())
	req := testutil.NewRequest(http.MethodGet, "/clubs/garbage", nil)
	req = testutil.WithChiURLParam(req, "id", "garbage")
	rec := testutil.NewRecorder()
	h.Get(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestGet_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())
	id := primitive.NewObjectID().Hex()
	req := testutil.NewRequest(http.MethodGet, "/clubs/"+id, nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	h.Get(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
