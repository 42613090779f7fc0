package requeststore

import (
	"errors"
	"testing"

	"github.com/clubsphere/clubsphere/internal/app/system/indexes"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/clubsphere/clubsphere/internal/testutil"
)

func TestCreate_OnePendingPerEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	store := New(db)
	req := models.MemberRequest{
		Email: "a@test.com",
		Name:  "A",
		Role:  models.RoleAdmin,
	}

	if _, err := store.Create(ctx, req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := store.Create(ctx, req)
	if !errors.Is(err, ErrPendingExists) {
		t.Fatalf("expected ErrPendingExists, got %v", err)
	}

	// Actioning the request clears the way for a new one.
	deleted, err := store.DeleteByEmail(ctx, "a@test.com")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}

	if _, err := store.Create(ctx, req); err != nil {
		t.Fatalf("create after delete failed: %v", err)
	}
}
