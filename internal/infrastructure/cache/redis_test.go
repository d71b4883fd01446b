package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "k").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "v" {
		t.Fatalf("GET value = %q, want %q", v, "v")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStatusCache_RoundTripAndInvalidate(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewStatusCache(rdb, time.Minute)
	ctx := context.Background()

	type projection struct {
		Status string `json:"status"`
	}

	// miss before set
	var got projection
	hit, err := c.Get(ctx, "app1", &got)
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "app1", projection{Status: "under_review"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	hit, err = c.Get(ctx, "app1", &got)
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if got.Status != "under_review" {
		t.Fatalf("cached status = %q", got.Status)
	}

	if err := c.Invalidate(ctx, "app1"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	hit, _ = c.Get(ctx, "app1", &got)
	if hit {
		t.Fatal("Get after Invalidate should miss")
	}
}
