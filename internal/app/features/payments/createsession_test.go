package payments

import (
	"net/http"
	"testing"

	"github.com/clubsphere/clubsphere/internal/app/system/checkout"
	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateSession_PaidClub(t *testing.T) {
	h, db := setupHandler(t, &fakeProvider{sessions: map[string]checkout.SessionDetails{}})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	club := fx.CreateClub(ctx, "Robotics", 2500)

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/payments/checkout",
		testutil.JSONBody(`{"type":"membership","clubId":"`+club.ID.Hex()+`"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.CreateSession(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"sessionId":"cs_test"`)
	rec.AssertContains(t, `"url":"https://checkout.test/cs_test"`)
}

func TestCreateSession_FreeClubRejected(t *testing.T) {
	h, db := setupHandler(t, &fakeProvider{sessions: map[string]checkout.SessionDetails{}})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	club := fx.CreateClub(ctx, "Chess", 0)

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/payments/checkout",
		testutil.JSONBody(`{"type":"membership","clubId":"`+club.ID.Hex()+`"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.CreateSession(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestCreateSession_UnknownClub(t *testing.T) {
	h, _ := setupHandler(t, &fakeProvider{sessions: map[string]checkout.SessionDetails{}})

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/payments/checkout",
		testutil.JSONBody(`{"type":"membership","clubId":"`+primitive.NewObjectID().Hex()+`"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.CreateSession(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestCreateSession_BadType(t *testing.T) {
	h, _ := setupHandler(t, &fakeProvider{sessions: map[string]checkout.SessionDetails{}})

	req := testutil.NewAuthenticatedRequest(http.MethodPost, "/payments/checkout",
		testutil.JSONBody(`{"type":"donation"}`), "user@test.com")
	rec := testutil.NewRecorder()
	h.CreateSession(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}
