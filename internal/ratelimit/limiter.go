package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Limiter decides whether a client identified by key may proceed. When the
// budget is exhausted it reports how long the client should wait.
type Limiter interface {
	Consume(key string) (ok bool, retryAfter time.Duration)
}

// bucket tracks one client's token balance.
type bucket struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// tokenBucket is a per-key token bucket limiter. Buckets live in an
// expiring LRU so idle clients fall out of memory instead of accumulating.
type tokenBucket struct {
	buckets *expirable.LRU[string, *bucket]
	rate    float64 // tokens refilled per second
	burst   float64
	now     func() time.Time
}

// NewTokenBucket creates a limiter allowing perMinute sustained requests with
// the given burst headroom per client key.
func NewTokenBucket(perMinute, burst int) Limiter {
	return newTokenBucket(perMinute, burst, time.Now)
}

func newTokenBucket(perMinute, burst int, now func() time.Time) *tokenBucket {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	// Idle buckets refill to full within a minute anyway, so a short TTL
	// is safe: an evicted bucket reappears full.
	return &tokenBucket{
		buckets: expirable.NewLRU[string, *bucket](MaxTrackedClients, nil, BucketTTL),
		rate:    float64(perMinute) / 60.0,
		burst:   float64(burst),
		now:     now,
	}
}

// Consume takes one token from the key's bucket. It reports false with a
// retry hint when the bucket is empty.
func (l *tokenBucket) Consume(key string) (bool, time.Duration) {
	b, found := l.buckets.Get(key)
	if !found {
		b = &bucket{tokens: l.burst, last: l.now()}
		l.buckets.Add(key, b)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := l.now()
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.rate
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	deficit := 1 - b.tokens
	retryAfter := time.Duration(deficit / l.rate * float64(time.Second))
	return false, retryAfter
}
