package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	mem := NewMemory()
	if _, err := mem.Get(context.Background(), CartKey("s1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_SetGetDelete(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	if err := mem.Set(ctx, UserKey("s1"), []byte(`{"id":9}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, err := mem.Get(ctx, UserKey("s1"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != `{"id":9}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := mem.Delete(ctx, UserKey("s1")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := mem.Get(ctx, UserKey("s1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	original := []byte("abc")
	if err := mem.Set(ctx, "k", original); err != nil {
		t.Fatalf("Set: %v", err)
	}
	original[0] = 'z'

	stored, err := mem.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(stored) != "abc" {
		t.Fatalf("stored value aliased caller slice: %q", stored)
	}
}

func TestKeyNamespaces(t *testing.T) {
	if CartKey("s1") != "cart:s1" {
		t.Fatalf("unexpected cart key %q", CartKey("s1"))
	}
	if UserKey("s1") != "user:s1" {
		t.Fatalf("unexpected user key %q", UserKey("s1"))
	}
	if CartKey("s1") == UserKey("s1") {
		t.Fatalf("cart and user keys must not collide")
	}
}
