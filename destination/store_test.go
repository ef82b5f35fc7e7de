package destination

import (
	"errors"
	"testing"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		record := store.Create("Paris", "City of lights", "France", "admin@example.com")
		if record.ID == "" {
			t.Fatal("Create returned an empty ID")
		}
		if seen[record.ID] {
			t.Fatalf("duplicate ID issued: %s", record.ID)
		}
		seen[record.ID] = true
	}
}

func TestCreateAndGet(t *testing.T) {
	store := NewStore()

	created := store.Create("Kyoto", "Temples and gardens", "Japan", "admin@example.com")

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != created {
		t.Fatalf("record mismatch: %+v != %+v", got, created)
	}

	if _, err := store.Get("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	store := NewStore()

	names := []string{"Paris", "Maldives", "Kyoto"}
	for _, name := range names {
		store.Create(name, "desc", "loc", "admin@example.com")
	}

	all := store.All()
	if len(all) != len(names) {
		t.Fatalf("expected %d records, got %d", len(names), len(all))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, all[i].Name)
		}
	}
}

func TestUpdatePartialFields(t *testing.T) {
	store := NewStore()
	created := store.Create("Paris", "City of lights", "France", "admin@example.com")

	newName := "Paris, France"
	updated, err := store.Update(created.ID, Patch{Name: &newName})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Description != "City of lights" || updated.Location != "France" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.CreatedBy != "admin@example.com" {
		t.Fatalf("creator changed: %+v", updated)
	}

	// The returned copy reflects the stored record.
	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != updated {
		t.Fatalf("stored record diverges from update result: %+v != %+v", got, updated)
	}

	if _, err := store.Update("missing-id", Patch{Name: &newName}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesFromListing(t *testing.T) {
	store := NewStore()
	first := store.Create("Paris", "d", "l", "admin@example.com")
	second := store.Create("Kyoto", "d", "l", "admin@example.com")
	third := store.Create("Maldives", "d", "l", "admin@example.com")

	if err := store.Delete(second.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	all := store.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != third.ID {
		t.Fatalf("listing order broken after delete: %+v", all)
	}

	if _, err := store.Get(second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted record still retrievable: %v", err)
	}
	if err := store.Delete(second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
