package joinclubs

import (
	"net/http"
	"testing"

	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, zap.NewNop()), db
}

func TestJoin_CreatesRecord(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	club := fx.CreateClub(ctx, "Chess", 0)

	req := testutil.NewRequest(http.MethodPost, "/joinClubs",
		testutil.JSONBody(`{"userEmail":"User@Test.com","clubId":"`+club.ID.Hex()+`"}`))
	rec := testutil.NewRecorder()
	h.Join(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"success":true`)

	count, err := db.Collection("club_joins").CountDocuments(ctx, bson.M{
		"user_email": "user@test.com",
		"club_id":    club.ID,
	})
	if err != nil {
		t.Fatalf("count joins: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 join record, got %d", count)
	}
}

func TestJoin_InvalidClubID(t *testing.T) {
	h, _ := setupHandler(t)

	req := testutil.NewRequest(http.MethodPost, "/joinClubs",
		testutil.JSONBody(`{"userEmail":"user@test.com","clubId":"not-an-id"}`))
	rec := testutil.NewRecorder()
	h.Join(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestJoin_UnknownClubNotFound(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewRequest(http.MethodPost, "/joinClubs",
		testutil.JSONBody(`{"userEmail":"user@test.com","clubId":"`+primitive.NewObjectID().Hex()+`"}`))
	rec := testutil.NewRecorder()
	h.Join(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)

	count, err := db.Collection("club_joins").CountDocuments(ctx, bson.M{"user_email": "user@test.com"})
	if err != nil {
		t.Fatalf("count joins: %v", err)
	}
	if count != 0 {
		t.Errorf("join for a missing club must not leave a record, got %d", count)
	}
}

func TestList_RequiresMatchingEmail(t *testing.T) {
	h, _ := setupHandler(t)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/joinClubs?email=other@test.com", nil, "user@test.com")
	rec := testutil.NewRecorder()
	h.List(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestList_ReturnsReconciledClubs(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	free := fx.CreateClub(ctx, "Chess", 0)
	paid := fx.CreateClub(ctx, "Robotics", 2500)
	fx.CreateClubJoin(ctx, "user@test.com", free.ID)
	fx.CreateMembershipPayment(ctx, "user@test.com", paid.ID, "pi_list_1")

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/joinClubs?email=user@test.com", nil, "user@test.com")
	rec := testutil.NewRecorder()
	h.List(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"membershipType":"free"`)
	rec.AssertContains(t, `"membershipType":"paid"`)
}

func TestLeave_RemovesJoinAndMemberEntry(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	club := fx.CreateClub(ctx, "Chess", 0)
	fx.CreateClubJoin(ctx, "user@test.com", club.ID)

	req := testutil.NewAuthenticatedRequest(http.MethodDelete,
		"/joinClubs/"+club.ID.Hex()+"?email=user@test.com", nil, "user@test.com")
	req = testutil.WithChiURLParam(req, "clubID", club.ID.Hex())
	rec := testutil.NewRecorder()
	h.Leave(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	count, err := db.Collection("club_joins").CountDocuments(ctx, bson.M{"club_id": club.ID})
	if err != nil {
		t.Fatalf("count joins: %v", err)
	}
	if count != 0 {
		t.Errorf("expected join record removed, got %d", count)
	}
}

func TestLeave_NotAMember(t *testing.T) {
	h, _ := setupHandler(t)

	clubID := primitive.NewObjectID()
	req := testutil.NewAuthenticatedRequest(http.MethodDelete,
		"/joinClubs/"+clubID.Hex()+"?email=user@test.com", nil, "user@test.com")
	req = testutil.WithChiURLParam(req, "clubID", clubID.Hex())
	rec := testutil.NewRecorder()
	h.Leave(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
