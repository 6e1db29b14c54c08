package cache

import (
	"testing"
	"time"
)

func TestInMemoryCache_SetGet(t *testing.T) {
	c := NewInMemoryCache(3600)

	err := c.Set("abc123:en-US:fr-FR", "Bonjour")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("abc123:en-US:fr-FR")
	if !ok {
		t.Fatal("Get returned not found for existing key")
	}
	if val != "Bonjour" {
		t.Errorf("Get returned %q, want %q", val, "Bonjour")
	}
}

func TestInMemoryCache_GetMissing(t *testing.T) {
	c := NewInMemoryCache(3600)

	val, ok := c.Get("nonexistent")
	if ok {
		t.Error("Get returned found for nonexistent key")
	}
	if val != "" {
		t.Errorf("Get returned %q for nonexistent key, want empty", val)
	}
}

func TestInMemoryCache_TTLExpiration(t *testing.T) {
	c := NewInMemoryCache(1) // 1 second TTL

	c.Set("key", "value")

	// Should be found immediately
	if _, ok := c.Get("key"); !ok {
		t.Error("key should be found before TTL expires")
	}

	time.Sleep(1100 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("key should be expired after TTL")
	}
}

func TestInMemoryCache_NoExpiration(t *testing.T) {
	c := NewInMemoryCache(0) // No TTL

	c.Set("key", "value")
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("key"); !ok {
		t.Error("key should never expire with TTL 0")
	}
}

func TestInMemoryCache_Overwrite(t *testing.T) {
	c := NewInMemoryCache(3600)

	c.Set("key", "first")
	c.Set("key", "second")

	val, _ := c.Get("key")
	if val != "second" {
		t.Errorf("Get returned %q after overwrite, want %q", val, "second")
	}
}

func TestInMemoryCache_Len(t *testing.T) {
	c := NewInMemoryCache(3600)

	if c.Len() != 0 {
		t.Errorf("Len of empty cache = %d, want 0", c.Len())
	}

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestInMemoryCache_Clear(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("key1 should be gone after Clear")
	}
}

func TestInMemoryCache_Entries(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	entries := c.Entries()

	if len(entries) != 2 {
		t.Errorf("Entries returned %d items, want 2", len(entries))
	}
	if entries["key1"] != "value1" {
		t.Errorf("entries[key1] = %q, want value1", entries["key1"])
	}
}

func TestInMemoryCache_EntriesSkipsExpired(t *testing.T) {
	c := NewInMemoryCache(1)
	c.Set("key", "value")

	time.Sleep(1100 * time.Millisecond)

	if entries := c.Entries(); len(entries) != 0 {
		t.Errorf("Entries returned %d expired items, want 0", len(entries))
	}
}
