package joinevents

import (
	"net/http"
	"testing"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestRegister_CreatesRecordAndBumpsCounter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	event := fx.CreateEvent(ctx, "Hackathon", 0)

	h := NewHandler(db, zap.NewNop())

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/joinEvents/"+event.ID.Hex(), nil, "user@test.com")
	req = testutil.WithChiURLParam(req, "id", event.ID.Hex())
	rec := testutil.NewRecorder()
	h.Register(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"success":true`)

	count, err := db.Collection("event_joins").CountDocuments(ctx, bson.M{
		"user_email": "user@test.com",
		"event_id":   event.ID,
	})
	if err != nil {
		t.Fatalf("count joins: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 registration, got %d", count)
	}

	var updated models.Event
	if err := db.Collection("events").FindOne(ctx, bson.M{"_id": event.ID}).Decode(&updated); err != nil {
		t.Fatalf("fetch event: %v", err)
	}
	if updated.Participants != 1 {
		t.Errorf("expected participants=1, got %d", updated.Participants)
	}
}

func TestRegister_UnknownEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())
	id := primitive.NewObjectID().Hex()
	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/joinEvents/"+id, nil, "user@test.com")
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	h.Register(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestList_ReturnsReconciledEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	free := fx.CreateEvent(ctx, "Meetup", 0)
	paid := fx.CreateEvent(ctx, "Hackathon", 1500)
	fx.CreateEventJoin(ctx, "user@test.com", free.ID)
	fx.CreateEventPayment(ctx, "user@test.com", paid.ID, "pi_ev_list")

	h := NewHandler(db, zap.NewNop())
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/joinEvents?email=user@test.com", nil, "user@test.com")
	rec := testutil.NewRecorder()
	h.List(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"membershipType":"free"`)
	rec.AssertContains(t, `"membershipType":"paid"`)
}
