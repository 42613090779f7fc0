// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
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

// CreateClub inserts a club with the given name and membership fee
// (zero means free to join).
func (f *Fixtures) CreateClub(ctx context.Context, name string, fee int64) models.Club {
	f.t.Helper()

	club := models.Club{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Wing:        "Test Wing",
		Description: "A test club",
		Fee:         fee,
		Currency:    "usd",
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("clubs").InsertOne(ctx, club); err != nil {
		f.t.Fatalf("failed to create test club: %v", err)
	}
	return club
}

// CreateEvent inserts an event with the given title and fee.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, fee int64) models.Event {
	f.t.Helper()

	event := models.Event{
		ID:       primitive.NewObjectID(),
		Title:    title,
		Wing:     "Test Wing",
		Fee:      fee,
		Currency: "usd",
		Date:     time.Now().UTC().Add(24 * time.Hour),
	}
	if _, err := f.db.Collection("events").InsertOne(ctx, event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateClubJoin inserts a free-join record for (email, clubID).
func (f *Fixtures) CreateClubJoin(ctx context.Context, email string, clubID primitive.ObjectID) models.ClubJoin {
	f.t.Helper()

	join := models.ClubJoin{
		ID:        primitive.NewObjectID(),
		UserEmail: email,
		ClubID:    clubID,
		JoinedAt:  time.Now().UTC(),
		Status:    models.JoinStatusActive,
	}
	if _, err := f.db.Collection("club_joins").InsertOne(ctx, join); err != nil {
		f.t.Fatalf("failed to create test club join: %v", err)
	}
	return join
}

// CreateEventJoin inserts a registration record for (email, eventID).
func (f *Fixtures) CreateEventJoin(ctx context.Context, email string, eventID primitive.ObjectID) models.EventJoin {
	f.t.Helper()

	join := models.EventJoin{
		ID:           primitive.NewObjectID(),
		UserEmail:    email,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
		Status:       models.JoinStatusRegistered,
	}
	if _, err := f.db.Collection("event_joins").InsertOne(ctx, join); err != nil {
		f.t.Fatalf("failed to create test event join: %v", err)
	}
	return join
}

// CreateMembershipPayment inserts a paid membership payment for
// (email, clubID) with a unique transaction id.
func (f *Fixtures) CreateMembershipPayment(ctx context.Context, email string, clubID primitive.ObjectID, transactionID string) models.Payment {
	f.t.Helper()

	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		TransactionID: transactionID,
		UserEmail:     email,
		Type:          models.PaymentTypeMembership,
		ClubID:        clubID,
		Amount:        2500,
		Currency:      "usd",
		Status:        "paid",
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("payments").InsertOne(ctx, payment); err != nil {
		f.t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateEventPayment inserts a paid event payment for (email, eventID).
func (f *Fixtures) CreateEventPayment(ctx context.Context, email string, eventID primitive.ObjectID, transactionID string) models.Payment {
	f.t.Helper()

	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		TransactionID: transactionID,
		UserEmail:     email,
		Type:          models.PaymentTypeEvent,
		EventID:       eventID,
		Amount:        1500,
		Currency:      "usd",
		Status:        "paid",
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("payments").InsertOne(ctx, payment); err != nil {
		f.t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateUser inserts a user profile with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Name:         "Test User",
		Role:         role,
		CreatedAt:    now,
		LastLoggedIn: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateMemberRequest inserts a pending role-change request.
func (f *Fixtures) CreateMemberRequest(ctx context.Context, email string) models.MemberRequest {
	f.t.Helper()

	req := models.MemberRequest{
		ID:          primitive.NewObjectID(),
		Email:       email,
		Name:        "Test User",
		Role:        models.RoleAdmin,
		RequestedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("member_requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test member request: %v", err)
	}
	return req
}
