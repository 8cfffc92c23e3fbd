package store

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/prodkit/core"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Fatalf("Get(missing) error = %v, want store not found", err)
	}

	if err := ms.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := ms.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get() = %q, want v1", got)
	}

	if err := ms.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Errorf("Get() after Delete error = %v, want store not found", err)
	}
}

func TestMemoryStore_TTL(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if err := ms.Set(ctx, "k1", []byte("v1"), 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k1"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	time.Sleep(1100 * time.Millisecond)
	if _, err := ms.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Errorf("Get() after expiry error = %v, want store not found", err)
	}
}

func TestMemoryStore_Batch(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}
	if err := ms.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := ms.BatchGet(ctx, []string{"a", "b", "missing"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("BatchGet() len = %d, want 2 (missing key skipped)", len(got))
	}
	if string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("BatchGet() = %v", got)
	}
}

func TestMemoryStore_Name(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	if ms.Name() != "memory" {
		t.Errorf("Name() = %q, want memory", ms.Name())
	}
}
