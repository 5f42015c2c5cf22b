package ratelimit

import (
	"fmt"
	"strings"
	"time"

	"github.com/smallbiznis/rentora/internal/clock"
	"github.com/smallbiznis/rentora/internal/config"
	"go.uber.org/fx"
)

const keyLoginAttempt = "login:%s:%s"

// LoginLimiter throttles credential attempts per email+IP pair.
type LoginLimiter struct {
	enabled bool
	bucket  *TokenBucket
	rate    float64
	burst   int
}

type LoginLimiterParams struct {
	fx.In

	Config config.Config
	Clock  clock.Clock
}

func NewLoginLimiter(p LoginLimiterParams) *LoginLimiter {
	if !p.Config.LoginRateLimitEnabled {
		return &LoginLimiter{enabled: false}
	}
	return &LoginLimiter{
		enabled: true,
		bucket:  NewTokenBucket(p.Clock),
		rate:    p.Config.LoginRatePerSecond,
		burst:   p.Config.LoginBurst,
	}
}

// Allow reports whether another login attempt for this email+IP pair
// may proceed. A disabled limiter allows everything.
func (l *LoginLimiter) Allow(email, ipAddress string) (bool, time.Duration) {
	if l == nil || !l.enabled {
		return true, 0
	}

	email = strings.ToLower(strings.TrimSpace(email))
	key := fmt.Sprintf(keyLoginAttempt, email, ipAddress)
	result, err := l.bucket.Allow(key, l.rate, l.burst)
	if err != nil {
		// Never lock users out because the limiter misbehaved.
		return true, 0
	}
	return result.Allowed, result.RetryAfter
}
