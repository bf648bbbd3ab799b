package rate

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when an identifier exceeds its attempt budget.
var ErrRateLimited = errors.New("rate limited")

// Config holds throttle tuning parameters. MaxAttempts tokens are available
// per identifier, refilled over Cooldown.
type Config struct {
	Enabled     bool
	MaxAttempts int
	Cooldown    time.Duration
}

// Limiter paces attempts per identifier with local token buckets.
type Limiter struct {
	config Config
	limit  rate.Limit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// New creates a Limiter. Returns nil when disabled; a nil Limiter allows
// everything.
func New(cfg Config) *Limiter {
	if !cfg.Enabled {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Minute
	}
	return &Limiter{
		config:  cfg,
		limit:   rate.Every(cfg.Cooldown / time.Duration(cfg.MaxAttempts)),
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow consumes one attempt for identifier, returning [ErrRateLimited] when
// the bucket is empty.
func (l *Limiter) Allow(identifier string) error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	bucket, ok := l.buckets[identifier]
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.config.MaxAttempts)
		l.buckets[identifier] = bucket
	}
	l.mu.Unlock()

	if !bucket.Allow() {
		return ErrRateLimited
	}
	return nil
}
