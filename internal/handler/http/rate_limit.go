package http

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-accounts/internal/utils"
	"golang.org/x/time/rate"
)

// sweepThreshold is the number of tracked addresses after which idle
// limiters are dropped. It is also the hard cap on tracked addresses.
const sweepThreshold = 1024

type emailLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// emailRateLimiter throttles verification re-sends per normalized e-mail.
// A nil *emailRateLimiter allows everything.
type emailRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*emailLimiter

	every rate.Limit
	burst int
	idle  time.Duration

	now func() time.Time
}

func newEmailRateLimiter(interval time.Duration, burst int) *emailRateLimiter {
	if interval <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	return &emailRateLimiter{
		limiters: make(map[string]*emailLimiter),
		every:    rate.Every(interval),
		burst:    burst,
		// a limiter idle this long has refilled its bucket
		idle: interval * time.Duration(burst),
		now:  time.Now,
	}
}

// Allow reports whether a re-send to email may happen now. Empty addresses
// are not throttled; they are rejected further down the chain.
func (l *emailRateLimiter) Allow(email string) bool {
	if l == nil {
		return true
	}

	key := utils.NormalizeEmail(email)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= sweepThreshold {
			l.sweep(now)
		}
		if len(l.limiters) >= sweepThreshold {
			l.evictOldest()
		}
		entry = &emailLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (l *emailRateLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.limiters, key)
		}
	}
}

func (l *emailRateLimiter) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
	)
	for key, entry := range l.limiters {
		if oldestKey == "" || entry.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, entry.lastSeen
		}
	}
	delete(l.limiters, oldestKey)
}
