// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBansAfterMaxAttempts(t *testing.T) {
	limiter := NewMemoryRateLimiter(&Config{
		WindowSize:    time.Minute,
		MaxAttempts:   3,
		CleanupPeriod: time.Hour,
		BanDuration:   time.Minute,
	})
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1")
		require.True(t, allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, 3-(i+1), info.Remaining)
	}

	allowed, info := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.True(t, info.Banned)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// Other clients are unaffected.
	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestRecordSuccessResetsAttempts(t *testing.T) {
	limiter := NewMemoryRateLimiter(&Config{
		WindowSize:    time.Minute,
		MaxAttempts:   2,
		CleanupPeriod: time.Hour,
		BanDuration:   time.Minute,
	})
	defer limiter.Close()

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	limiter.RecordSuccess("10.0.0.1")

	allowed, info := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 1, info.Remaining)
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.168.1.10:4567"
	assert.Equal(t, "192.168.1.10", GetClientIP(r))

	r.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", GetClientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", GetClientIP(r))
}
