package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	testStoreRoundTrip(t, NewMemory())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	defer s.Close()
	testStoreRoundTrip(t, s)
}

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}

	payload := []byte(`{"score":42,"deep_focus_minutes":95}`)
	if err := s.Set(ctx, "drift:daily_history", payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get(ctx, "drift:daily_history")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("value did not round-trip: got %q, want %q", got, payload)
	}

	// Overwrite is last-write-wins.
	updated := []byte(`{"score":12,"deep_focus_minutes":140}`)
	if err := s.Set(ctx, "drift:daily_history", updated); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err = s.Get(ctx, "drift:daily_history")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if !bytes.Equal(got, updated) {
		t.Errorf("overwrite not visible: got %q, want %q", got, updated)
	}

	if err := s.Delete(ctx, "drift:daily_history"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "drift:daily_history"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	original := []byte("abc")
	if err := s.Set(ctx, "k", original); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	original[0] = 'x'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("store aliased caller's slice: got %q", got)
	}
}
