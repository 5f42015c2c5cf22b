package ratelimit

import (
	"testing"
	"time"

	"github.com/smallbiznis/rentora/internal/clock"
	"github.com/smallbiznis/rentora/internal/config"
)

func TestAllowConsumesBurstThenBlocks(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	bucket := NewTokenBucket(fake)

	for i := 0; i < 3; i++ {
		result, err := bucket.Allow("k", 1, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("expected attempt %d within burst to be allowed", i+1)
		}
	}

	result, err := bucket.Allow("k", 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Allowed {
		t.Fatal("expected attempt past burst to be blocked")
	}
	if result.RetryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", result.RetryAfter)
	}
}

func TestAllowRefillsOverTime(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	bucket := NewTokenBucket(fake)

	for i := 0; i < 2; i++ {
		if result, _ := bucket.Allow("k", 1, 2); !result.Allowed {
			t.Fatal("expected burst attempts to be allowed")
		}
	}
	if result, _ := bucket.Allow("k", 1, 2); result.Allowed {
		t.Fatal("expected empty bucket to block")
	}

	fake.Advance(2 * time.Second)
	if result, _ := bucket.Allow("k", 1, 2); !result.Allowed {
		t.Fatal("expected refilled bucket to allow")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	bucket := NewTokenBucket(fake)

	if result, _ := bucket.Allow("a", 1, 1); !result.Allowed {
		t.Fatal("expected first attempt on key a to be allowed")
	}
	if result, _ := bucket.Allow("a", 1, 1); result.Allowed {
		t.Fatal("expected key a to be exhausted")
	}
	if result, _ := bucket.Allow("b", 1, 1); !result.Allowed {
		t.Fatal("expected key b to be unaffected")
	}
}

func TestLoginLimiterDisabledAllowsEverything(t *testing.T) {
	limiter := NewLoginLimiter(LoginLimiterParams{
		Config: config.Config{LoginRateLimitEnabled: false},
		Clock:  clock.NewFakeClock(time.Now()),
	})

	for i := 0; i < 100; i++ {
		if ok, _ := limiter.Allow("user@example.com", "10.0.0.1"); !ok {
			t.Fatal("disabled limiter must never block")
		}
	}
}

func TestLoginLimiterBlocksRepeatedAttempts(t *testing.T) {
	limiter := NewLoginLimiter(LoginLimiterParams{
		Config: config.Config{
			LoginRateLimitEnabled: true,
			LoginRatePerSecond:    0.2,
			LoginBurst:            2,
		},
		Clock: clock.NewFakeClock(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	})

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("user@example.com", "10.0.0.1"); !ok {
			t.Fatal("expected attempts within burst to be allowed")
		}
	}
	ok, retryAfter := limiter.Allow("user@example.com", "10.0.0.1")
	if ok {
		t.Fatal("expected third attempt to be blocked")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}

	// A different address is throttled independently.
	if ok, _ := limiter.Allow("user@example.com", "10.0.0.2"); !ok {
		t.Fatal("expected attempt from another address to be allowed")
	}
}
