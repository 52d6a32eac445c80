package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewLRU[int](4, time.Minute)
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected (1, true), got (%d, %v)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a retained")
	}
	if c.Size() != 2 {
		t.Fatalf("expected size 2, got %d", c.Size())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewLRU[int](4, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Fatalf("expired entry should be removed on read, size %d", c.Size())
	}
}

func TestPurge(t *testing.T) {
	c := NewLRU[string](4, time.Minute)
	c.Set("a", "x")
	c.Set("b", "y")
	c.Purge()
	if c.Size() != 0 {
		t.Fatalf("expected empty cache after purge, size %d", c.Size())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected miss after purge")
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRU[int](8, 10*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	c.Set("c", 3)

	if n := c.CleanExpired(); n != 2 {
		t.Fatalf("expected 2 expired entries cleaned, got %d", n)
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("fresh entry must survive cleanup")
	}
}

func TestSetOverwrites(t *testing.T) {
	c := NewLRU[int](4, time.Minute)
	c.Set("a", 1)
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("expected overwrite to 2, got %d", v)
	}
	if c.Size() != 1 {
		t.Fatalf("overwrite must not grow the cache, size %d", c.Size())
	}
}
