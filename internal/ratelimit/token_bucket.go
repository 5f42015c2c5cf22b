// Package ratelimit provides an in-memory token bucket. This service
// runs as a single instance, so no shared store is needed; state is lost
// on restart, which is acceptable for throttling login attempts.
package ratelimit

import (
	"errors"
	"sync"
	"time"

	"github.com/smallbiznis/rentora/internal/clock"
)

type bucketState struct {
	tokens float64
	ts     time.Time
}

type TokenBucket struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	clock   clock.Clock

	lastPrune time.Time
}

type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

func NewTokenBucket(c clock.Clock) *TokenBucket {
	return &TokenBucket{
		buckets:   make(map[string]*bucketState),
		clock:     c,
		lastPrune: c.Now(),
	}
}

const pruneInterval = 10 * time.Minute

// Allow takes one token from the bucket for key, refilling at rate
// tokens per second up to burst. When the bucket is empty the result
// carries how long until one token is available again.
func (t *TokenBucket) Allow(key string, rate float64, burst int) (*RateLimitResult, error) {
	if key == "" {
		return &RateLimitResult{}, errors.New("rate limiter key is empty")
	}
	if rate <= 0 {
		return &RateLimitResult{}, errors.New("rate limiter rate must be positive")
	}
	if burst <= 0 {
		return &RateLimitResult{}, errors.New("rate limiter burst must be positive")
	}

	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(now, rate, burst)

	state, ok := t.buckets[key]
	if !ok {
		state = &bucketState{tokens: float64(burst), ts: now}
		t.buckets[key] = state
	} else {
		delta := now.Sub(state.ts)
		if delta < 0 {
			delta = 0
		}
		state.tokens += delta.Seconds() * rate
		if state.tokens > float64(burst) {
			state.tokens = float64(burst)
		}
		state.ts = now
	}

	allowed := state.tokens >= 1
	if allowed {
		state.tokens--
	}

	var retryAfter time.Duration
	if !allowed {
		needed := 1 - state.tokens
		retryAfter = time.Duration(needed / rate * float64(time.Second))
	}

	return &RateLimitResult{
		Allowed:    allowed,
		Limit:      burst,
		Remaining:  int(state.tokens),
		RetryAfter: retryAfter,
	}, nil
}

// pruneLocked drops buckets that have refilled to capacity; they hold
// no throttling state worth keeping.
func (t *TokenBucket) pruneLocked(now time.Time, rate float64, burst int) {
	if now.Sub(t.lastPrune) < pruneInterval {
		return
	}
	t.lastPrune = now
	for key, state := range t.buckets {
		idle := now.Sub(state.ts)
		if state.tokens+idle.Seconds()*rate >= float64(burst) {
			delete(t.buckets, key)
		}
	}
}
