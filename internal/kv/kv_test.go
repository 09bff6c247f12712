package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := m.Set(ctx, "a", "1"); err != nil {
		t.Fatal(err)
	}
	val, err := m.Get(ctx, "a")
	if err != nil || val != "1" {
		t.Fatalf("Get = (%q, %v)", val, err)
	}

	if err := m.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "prayer:cache:1", "x")
	m.Set(ctx, "prayer:cache:2", "y")
	m.Set(ctx, "location:1", "z")

	keys, err := m.Keys(ctx, "prayer:cache:*")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Errorf("got %d keys, want 2: %v", len(keys), keys)
	}
}

func TestGetJSONCorruptValueIsAMiss(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "broken", "{not json")

	var dest map[string]string
	err := GetJSON(ctx, m, "broken", &dest)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("corrupt value should read as ErrNotFound, got %v", err)
	}
	// The offending entry must be evicted.
	if m.Has("broken") {
		t.Error("corrupt entry was not deleted")
	}
}

func TestSetGetJSON(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := map[string]int{"surah": 2, "ayah": 255}
	if err := SetJSON(ctx, m, "bookmark", in); err != nil {
		t.Fatal(err)
	}
	var out map[string]int
	if err := GetJSON(ctx, m, "bookmark", &out); err != nil {
		t.Fatal(err)
	}
	if out["surah"] != 2 || out["ayah"] != 255 {
		t.Errorf("round-trip mismatch: %v", out)
	}
}
