package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("resume_analyze", "some text")
	b := CacheKey("resume_analyze", "some text")
	if a != b {
		t.Errorf("same parts produced %q and %q", a, b)
	}
	if a == CacheKey("resume_analyze", "other text") {
		t.Error("different parts produced identical keys")
	}
	if len(a) != len("gr:")+24 {
		t.Errorf("unexpected key length: %q", a)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "round-trip")
	if _, ok := CacheGet(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	CacheSet(ctx, key, []byte("payload"))
	data, ok := CacheGet(ctx, key)
	if !ok || string(data) != "payload" {
		t.Errorf("got %q ok=%v", data, ok)
	}
}

func TestCacheJSONHelpers(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	key := CacheKey("test", "json")
	if _, ok := CacheLoadJSON[payload](ctx, key); ok {
		t.Fatal("unexpected hit before store")
	}

	CacheStoreJSON(ctx, key, payload{Name: "alice", Score: 42})
	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.Name != "alice" || got.Score != 42 {
		t.Errorf("got %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "expiry")
	CacheSet(ctx, key, []byte("x"))
	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expired entry should miss")
	}
}
