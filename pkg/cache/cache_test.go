package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCache_RoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	key := Key("png", 42, 800, 600, "flow", "spin")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	payload := []byte("encoded image bytes")
	if err := c.Set(ctx, key, payload, 0); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("after set: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Errorf("Get = %q, want %q", got, payload)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("entry survived Delete")
	}
	// Deleting again is fine.
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry should be a miss")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("null cache Get: ok=%v err=%v", ok, err)
	}
}

func TestKey(t *testing.T) {
	a := Key("png", 1, 2, "flow")
	b := Key("png", 1, 2, "flow")
	cKey := Key("png", 1, 2, "wave")

	if a != b {
		t.Error("equal parameters must produce equal keys")
	}
	if a == cKey {
		t.Error("different parameters must produce different keys")
	}
	if !strings.HasPrefix(a, "png:") {
		t.Errorf("key %q missing prefix", a)
	}
}
