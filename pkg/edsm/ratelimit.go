package edsm

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// lowRateLimitThreshold is the remaining-request count below which every
// response logs a warning
const lowRateLimitThreshold = 25

// RateLimit is the most recent X-Rate-Limit-* header set EDSM sent back.
// The client only records it; nothing is throttled.
type RateLimit struct {
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	Reset      time.Time `json:"reset"`
	ObservedAt time.Time `json:"observed_at"`
}

// Known reports whether any rate-limit header has been seen yet
func (r RateLimit) Known() bool {
	return !r.ObservedAt.IsZero()
}

type rateLimitObserver struct {
	mu      sync.RWMutex
	current RateLimit
	now     func() time.Time
}

func newRateLimitObserver() *rateLimitObserver {
	return &rateLimitObserver{now: time.Now}
}

// observe updates the snapshot from response headers. X-Rate-Limit-Reset is
// the number of seconds until the window resets.
func (o *rateLimitObserver) observe(ctx context.Context, req *http.Request, headers http.Header) {
	limitStr := headers.Get("X-Rate-Limit-Limit")
	remainStr := headers.Get("X-Rate-Limit-Remaining")
	resetStr := headers.Get("X-Rate-Limit-Reset")
	if limitStr == "" && remainStr == "" && resetStr == "" {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.now()
	o.current.ObservedAt = now

	if limit, err := strconv.Atoi(limitStr); err == nil {
		o.current.Limit = limit
	}
	if reset, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
		o.current.Reset = now.Add(time.Duration(reset) * time.Second)
	}
	if remain, err := strconv.Atoi(remainStr); err == nil {
		o.current.Remaining = remain

		if remain <= lowRateLimitThreshold {
			slog.WarnContext(ctx, "EDSM rate limit running low",
				"x_rate_limit_remaining", remain,
				"x_rate_limit_limit", o.current.Limit,
				"endpoint", req.URL.Path,
				"reset_time", o.current.Reset.Format(time.RFC3339),
			)
		}
	}
}

func (o *rateLimitObserver) snapshot() RateLimit {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}
