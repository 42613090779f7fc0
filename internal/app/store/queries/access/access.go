// internal/app/store/queries/access/access.go

// Package access is the membership reconciler: given a verified user
// email it produces the deduplicated list of clubs (or events) that
// user can reach, derived from two independent sources — direct
// free-join records and confirmed-payment records.
//
// The same entity id appearing in both sources collapses to one entry,
// tagged "paid" when any payment references it, else "free". Payment
// records pointing at entities that no longer exist are dropped
// silently (the batch fetch simply returns fewer documents). Result
// ordering follows the underlying fetch and is not part of the
// contract.
//
// The reconciler performs no authentication; callers must already have
// proven the email belongs to the requester.
package access

import (
	"context"
	"fmt"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Membership types attached to each reconciled entry.
const (
	MembershipFree = "free"
	MembershipPaid = "paid"
)

// ClubAccess is one reconciled club membership. JoinInfo carries the
// free-join record when one exists, otherwise the payment record; it is
// an empty object only if both sources lost their detail rows.
type ClubAccess struct {
	models.Club
	MembershipType string `json:"membershipType"`
	JoinInfo       any    `json:"joinInfo"`
}

// EventAccess is one reconciled event registration.
type EventAccess struct {
	models.Event
	MembershipType string `json:"membershipType"`
	JoinInfo       any    `json:"joinInfo"`
}

// Resolver runs the reconciliation queries. All failures surface as a
// single wrapped lookup error; partial results are never returned.
type Resolver struct {
	clubs      *mongo.Collection
	events     *mongo.Collection
	clubJoins  *mongo.Collection
	eventJoins *mongo.Collection
	payments   *mongo.Collection
}

func NewResolver(db *mongo.Database) *Resolver {
	return &Resolver{
		clubs:      db.Collection("clubs"),
		events:     db.Collection("events"),
		clubJoins:  db.Collection("club_joins"),
		eventJoins: db.Collection("event_joins"),
		payments:   db.Collection("payments"),
	}
}

// Clubs resolves the user's club access list.
func (r *Resolver) Clubs(ctx context.Context, userEmail string) ([]ClubAccess, error) {
	var joins []models.ClubJoin
	if err := r.findAll(ctx, r.clubJoins, bson.M{"user_email": userEmail}, &joins); err != nil {
		return nil, fmt.Errorf("club access lookup: %w", err)
	}

	var payments []models.Payment
	filter := bson.M{"user_email": userEmail, "type": models.PaymentTypeMembership}
	if err := r.findAll(ctx, r.payments, filter, &payments); err != nil {
		return nil, fmt.Errorf("club access lookup: %w", err)
	}

	ids := unionIDs(clubJoinIDs(joins), paymentClubIDs(payments))
	if len(ids) == 0 {
		return []ClubAccess{}, nil
	}

	var clubs []models.Club
	if err := r.findAll(ctx, r.clubs, bson.M{"_id": bson.M{"$in": ids}}, &clubs); err != nil {
		return nil, fmt.Errorf("club access lookup: %w", err)
	}

	return MergeClubAccess(clubs, joins, payments), nil
}

// Events resolves the user's event access list.
func (r *Resolver) Events(ctx context.Context, userEmail string) ([]EventAccess, error) {
	var joins []models.EventJoin
	if err := r.findAll(ctx, r.eventJoins, bson.M{"user_email": userEmail}, &joins); err != nil {
		return nil, fmt.Errorf("event access lookup: %w", err)
	}

	var payments []models.Payment
	filter := bson.M{"user_email": userEmail, "type": models.PaymentTypeEvent}
	if err := r.findAll(ctx, r.payments, filter, &payments); err != nil {
		return nil, fmt.Errorf("event access lookup: %w", err)
	}

	ids := unionIDs(eventJoinIDs(joins), paymentEventIDs(payments))
	if len(ids) == 0 {
		return []EventAccess{}, nil
	}

	var events []models.Event
	if err := r.findAll(ctx, r.events, bson.M{"_id": bson.M{"$in": ids}}, &events); err != nil {
		return nil, fmt.Errorf("event access lookup: %w", err)
	}

	return MergeEventAccess(events, joins, payments), nil
}

func (r *Resolver) findAll(ctx context.Context, c *mongo.Collection, filter bson.M, out any) error {
	cur, err := c.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

/* -------------------------------------------------------------------------- */
/* Pure merge logic — no database access, unit-testable in isolation          */
/* -------------------------------------------------------------------------- */

// MergeClubAccess annotates fetched club documents with how access was
// obtained. clubs is assumed to be the batch fetch for the union of ids
// in joins and payments; ids with no club document are absent from it
// and therefore dropped.
func MergeClubAccess(clubs []models.Club, joins []models.ClubJoin, payments []models.Payment) []ClubAccess {
	joinByID := make(map[primitive.ObjectID]models.ClubJoin, len(joins))
	for _, j := range joins {
		if _, seen := joinByID[j.ClubID]; !seen {
			joinByID[j.ClubID] = j
		}
	}
	payByID := make(map[primitive.ObjectID]models.Payment, len(payments))
	for _, p := range payments {
		if p.ClubID.IsZero() {
			continue
		}
		if _, seen := payByID[p.ClubID]; !seen {
			payByID[p.ClubID] = p
		}
	}

	result := make([]ClubAccess, 0, len(clubs))
	for _, club := range clubs {
		entry := ClubAccess{Club: club, MembershipType: MembershipFree, JoinInfo: struct{}{}}
		if p, ok := payByID[club.ID]; ok {
			entry.MembershipType = MembershipPaid
			entry.JoinInfo = p
		}
		if j, ok := joinByID[club.ID]; ok {
			entry.JoinInfo = j
		}
		result = append(result, entry)
	}
	return result
}

// MergeEventAccess is the event-side counterpart of MergeClubAccess.
func MergeEventAccess(events []models.Event, joins []models.EventJoin, payments []models.Payment) []EventAccess {
	joinByID := make(map[primitive.ObjectID]models.EventJoin, len(joins))
	for _, j := range joins {
		if _, seen := joinByID[j.EventID]; !seen {
			joinByID[j.EventID] = j
		}
	}
	payByID := make(map[primitive.ObjectID]models.Payment, len(payments))
	for _, p := range payments {
		if p.EventID.IsZero() {
			continue
		}
		if _, seen := payByID[p.EventID]; !seen {
			payByID[p.EventID] = p
		}
	}

	result := make([]EventAccess, 0, len(events))
	for _, event := range events {
		entry := EventAccess{Event: event, MembershipType: MembershipFree, JoinInfo: struct{}{}}
		if p, ok := payByID[event.ID]; ok {
			entry.MembershipType = MembershipPaid
			entry.JoinInfo = p
		}
		if j, ok := joinByID[event.ID]; ok {
			entry.JoinInfo = j
		}
		result = append(result, entry)
	}
	return result
}

// unionIDs returns the set union of the two id slices, preserving first
// occurrence order.
func unionIDs(a, b []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(a)+len(b))
	out := make([]primitive.ObjectID, 0, len(a)+len(b))
	for _, id := range a {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func clubJoinIDs(joins []models.ClubJoin) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.ClubID)
	}
	return ids
}

func eventJoinIDs(joins []models.EventJoin) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.EventID)
	}
	return ids
}

func paymentClubIDs(payments []models.Payment) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ClubID)
	}
	return ids
}

func paymentEventIDs(payments []models.Payment) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.EventID)
	}
	return ids
}
