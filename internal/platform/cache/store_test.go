package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "team:1", "Lakers")
	value, ok := store.Get(ctx, "team:1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if value != "Lakers" {
		t.Fatalf("unexpected value: %v", value)
	}

	store.Delete(ctx, "team:1")
	if _, ok := store.Get(ctx, "team:1"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStore_GetOrLoadCachesResult(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "catalog", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != 42 {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
}

func TestStore_GetOrLoadDoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	var loads atomic.Int32
	boom := errors.New("catalog down")

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return nil, boom
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(ctx, "catalog", loader); !errors.Is(err, boom) {
			t.Fatalf("expected loader error, got %v", err)
		}
	}

	if got := loads.Load(); got != 2 {
		t.Fatalf("expected two loads, got %d", got)
	}
}
