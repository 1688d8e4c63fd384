package box

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/stockbox/internal/models"
	"github.com/thenoetrevino/stockbox/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestCreateBox(t *testing.T) {
	t.Parallel()

	store := testutil.SetupTestStore(t)
	svc := NewService(store)

	b, err := svc.CreateBox(context.Background(), CreateBoxRequest{Name: " Box A ", Location: "Shelf 1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.ID == 0 {
		t.Error("Expected box ID to be set")
	}
	if b.DisplayName() != "Box A" {
		t.Errorf("Expected trimmed name 'Box A', got '%s'", b.DisplayName())
	}

	if _, err := svc.CreateBox(context.Background(), CreateBoxRequest{Name: "Box A"}); !errors.Is(err, ErrBoxExists) {
		t.Errorf("Expected ErrBoxExists, got %v", err)
	}
	if _, err := svc.CreateBox(context.Background(), CreateBoxRequest{Name: "  "}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestUpdateBox(t *testing.T) {
	t.Parallel()

	store := testutil.SetupTestStore(t)
	svc := NewService(store)
	id := testutil.CreateTestBox(t, store, "Box A", "Shelf 1")
	testutil.CreateTestBox(t, store, "Box B", "")

	b, err := svc.UpdateBox(context.Background(), UpdateBoxRequest{ID: id, Location: strPtr("")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.Location != nil {
		t.Errorf("Expected location to be cleared, got %q", *b.Location)
	}

	// Renaming to its own name is allowed, taking another box's name is not
	if _, err := svc.UpdateBox(context.Background(), UpdateBoxRequest{ID: id, Name: strPtr("Box A")}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if _, err := svc.UpdateBox(context.Background(), UpdateBoxRequest{ID: id, Name: strPtr("Box B")}); !errors.Is(err, ErrBoxExists) {
		t.Errorf("Expected ErrBoxExists, got %v", err)
	}
	if _, err := svc.UpdateBox(context.Background(), UpdateBoxRequest{ID: 999, Name: strPtr("Box C")}); !errors.Is(err, ErrBoxNotFound) {
		t.Errorf("Expected ErrBoxNotFound, got %v", err)
	}
}

func TestDeleteBox(t *testing.T) {
	t.Parallel()

	store := testutil.SetupTestStore(t)
	svc := NewService(store)
	p := testutil.CreateTestProduct(t, store, "Bolt", 10, "Hardware", "Box A")

	if err := svc.DeleteBox(context.Background(), *p.BoxID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := store.GetProduct(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Expected product to survive, got %v", err)
	}
	if got.BoxID != nil {
		t.Errorf("Expected product to be unboxed, got box %d", *got.BoxID)
	}

	if err := svc.DeleteBox(context.Background(), 0); !errors.Is(err, ErrInvalidBoxID) {
		t.Errorf("Expected ErrInvalidBoxID, got %v", err)
	}
}

func TestFindOrCreateBox(t *testing.T) {
	t.Parallel()

	store := testutil.SetupTestStore(t)
	svc := NewService(store)

	if _, err := svc.FindOrCreateBox(context.Background(), FindOrCreateRequest{Name: "Bin 1"}); !errors.Is(err, ErrBoxNotFound) {
		t.Fatalf("Expected ErrBoxNotFound without confirmation, got %v", err)
	}

	id, err := svc.FindOrCreateBox(context.Background(), FindOrCreateRequest{Name: "Bin 1", Location: "Attic", Create: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	found, err := svc.FindBoxID(context.Background(), "Bin 1")
	if err != nil || found != id {
		t.Errorf("Expected FindBoxID to return %d, got %d (%v)", id, found, err)
	}

	b, err := svc.GetBox(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if models.StringValue(b.Location) != "Attic" {
		t.Errorf("Expected location 'Attic', got '%s'", models.StringValue(b.Location))
	}
}
