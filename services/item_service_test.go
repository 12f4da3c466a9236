package services

import (
	"errors"
	"testing"

	"github.com/reclaim/api-go/models"
)

func TestCreateItemValidation(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")
	svc := NewItemService(db)

	tests := []struct {
		name   string
		mutate func(*CreateItemInput)
	}{
		{"invalid status", func(in *CreateItemInput) { in.Status = "misplaced" }},
		{"empty name", func(in *CreateItemInput) { in.Name = "  " }},
		{"empty location", func(in *CreateItemInput) { in.Location = "" }},
		{"bad date", func(in *CreateItemInput) { in.Date = "10/03/2024" }},
		{"empty description", func(in *CreateItemInput) { in.Description = "" }},
		{"empty contact", func(in *CreateItemInput) { in.Contact = "" }},
		{"found item without image", func(in *CreateItemInput) { in.ImageKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := foundItemInput("wallet")
			tt.mutate(&in)
			_, err := svc.Create(owner.ID, in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	// No record should have been created by the failed attempts.
	var count int64
	db.Model(&models.Item{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no items after failed creates, got %d", count)
	}
}

func TestCreateLostItemWithoutImage(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")

	item, err := NewItemService(db).Create(owner.ID, lostItemInput("keys"))
	if err != nil {
		t.Fatalf("lost item without image should be allowed: %v", err)
	}
	if item.ImageKey != nil {
		t.Errorf("expected nil image key, got %v", *item.ImageKey)
	}
	if item.Returned {
		t.Error("new item should not be returned")
	}
}

func TestCreateItemTitleCasesForDisplay(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")

	in := foundItemInput("blue leather wallet")
	in.Location = "main library"
	item, err := NewItemService(db).Create(owner.ID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if item.Name != "Blue Leather Wallet" {
		t.Errorf("name = %q, want %q", item.Name, "Blue Leather Wallet")
	}
	if item.Location != "Main Library" {
		t.Errorf("location = %q, want %q", item.Location, "Main Library")
	}
}

func TestGetItem(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")
	created := createTestItem(t, db, owner.ID, lostItemInput("keys"))

	svc := NewItemService(db)
	item, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.ID != created.ID {
		t.Errorf("got item %d, want %d", item.ID, created.ID)
	}

	_, err = svc.Get(9999)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for missing item, got %v", err)
	}
}

func TestListItemsPartition(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")
	svc := NewItemService(db)

	first := createTestItem(t, db, owner.ID, lostItemInput("keys"))
	second := createTestItem(t, db, owner.ID, foundItemInput("wallet"))
	third := createTestItem(t, db, owner.ID, lostItemInput("umbrella"))

	if _, err := svc.MarkReturned(second.ID, owner.ID); err != nil {
		t.Fatalf("mark returned: %v", err)
	}

	active, total, err := svc.List(ListItemsInput{Section: models.SectionActive})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if total != 2 || len(active) != 2 {
		t.Fatalf("active: got %d items (total %d), want 2", len(active), total)
	}
	for _, it := range active {
		if it.Returned {
			t.Errorf("active section contains returned item %d", it.ID)
		}
	}
	// Newest first.
	if active[0].ID != third.ID || active[1].ID != first.ID {
		t.Errorf("active order = [%d %d], want [%d %d]", active[0].ID, active[1].ID, third.ID, first.ID)
	}

	previous, _, err := svc.List(ListItemsInput{Section: models.SectionPrevious})
	if err != nil {
		t.Fatalf("list previous: %v", err)
	}
	if len(previous) != 1 || previous[0].ID != second.ID {
		t.Fatalf("previous: got %v, want just item %d", previous, second.ID)
	}
	if !previous[0].Returned {
		t.Error("previous section item should be returned")
	}

	_, _, err = svc.List(ListItemsInput{Section: "archive"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for unknown section, got %v", err)
	}
}

func TestListItemsQueryIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")
	svc := NewItemService(db)

	createTestItem(t, db, owner.ID, foundItemInput("black wallet"))
	createTestItem(t, db, owner.ID, lostItemInput("umbrella"))

	items, _, err := svc.List(ListItemsInput{Section: models.SectionActive, Query: "WALL"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Black Wallet" {
		t.Fatalf("query match: got %v, want only the wallet", items)
	}

	// Summaries carry no contact details.
	for _, it := range items {
		if it.Status == "" || it.Name == "" {
			t.Errorf("summary missing public fields: %+v", it)
		}
	}
}

func TestMarkReturned(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Alice", "alice@example.edu")
	other := createTestUser(t, db, "Bob", "bob@example.edu")
	svc := NewItemService(db)

	item := createTestItem(t, db, owner.ID, lostItemInput("keys"))

	_, err := svc.MarkReturned(item.ID, other.ID)
	var authz *AuthorizationError
	if !errors.As(err, &authz) {
		t.Fatalf("expected AuthorizationError for non-owner, got %v", err)
	}

	updated, err := svc.MarkReturned(item.ID, owner.ID)
	if err != nil {
		t.Fatalf("owner mark returned: %v", err)
	}
	if !updated.Returned {
		t.Error("item should be returned")
	}

	// Idempotent: marking again is a no-op, not an error.
	if _, err := svc.MarkReturned(item.ID, owner.ID); err != nil {
		t.Errorf("second mark returned should be a no-op, got %v", err)
	}

	_, err = svc.MarkReturned(9999, owner.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for missing item, got %v", err)
	}
}
