package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_AllowsUpToBurst(t *testing.T) {
	bucket := newTokenBucket(3, 1.0)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	// 100 tokens/second so the test does not need to sleep long
	bucket := newTokenBucket(1, 100.0)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLimiter_CheckATSEndpointLimit(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/check-ats", "POST")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/check-ats", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/check-ats", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.1.1.1", "/check-ats", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("2.2.2.2", "/check-ats", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLimit = 1
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/check-ats", "POST")
		require.True(t, allowed)
	}
}
