package users

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")

	source, err := OpenSQLiteSource(path)
	if err != nil {
		t.Fatalf("OpenSQLiteSource failed: %v", err)
	}
	defer source.Close()

	t.Run("empty database reports no store", func(t *testing.T) {
		if _, err := source.Load(); !errors.Is(err, ErrNoStore) {
			t.Errorf("expected ErrNoStore, got %v", err)
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		records := []UserRecord{
			{Identity: "admin1", SecretHash: "aaaa", Role: RoleAdmin},
			{Identity: "gv01", SecretHash: "bbbb", Role: RoleProctor, Scope: "E01"},
		}
		if err := source.Save(records); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := source.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != 2 {
			t.Fatalf("expected 2 records, got %d", len(loaded))
		}
		if loaded[0] != records[0] || loaded[1] != records[1] {
			t.Errorf("round trip mismatch: %+v", loaded)
		}
	})

	t.Run("save replaces, not appends", func(t *testing.T) {
		if err := source.Save([]UserRecord{{Identity: "only", SecretHash: "cc", Role: RoleViewer}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		loaded, err := source.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != 1 || loaded[0].Identity != "only" {
			t.Errorf("expected single replaced record, got %+v", loaded)
		}
	})
}

func TestSQLiteSource_BacksStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	source, err := OpenSQLiteSource(path)
	if err != nil {
		t.Fatalf("OpenSQLiteSource failed: %v", err)
	}
	defer source.Close()

	// Empty database falls back to the built-in defaults
	store, err := NewStore(source, nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := NewStore(source, nil)
	if err != nil {
		t.Fatalf("NewStore (reload) failed: %v", err)
	}
	if _, ok := reloaded.FindByIdentity("gv01"); !ok {
		t.Error("defaults not persisted through sqlite")
	}
}
