// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/models"
)

const (
	shareRateWindow       = time.Minute
	limiterCleanupPeriod  = 5 * time.Minute
	rateLimitErrorMessage = "Too many requests. Please try again later."
)

// rateLimiter keeps one token bucket per client IP. A nil *rateLimiter
// allows everything.
type rateLimiter struct {
	limiters  sync.Map // map[string]*rate.Limiter
	limit     rate.Limit
	burst     int
	perWindow int
	window    time.Duration

	mu          sync.Mutex
	lastCleanup time.Time
	now         func() time.Time
}

// newRateLimiter allows requestsPerWindow requests per window and client,
// all of them available as a burst. A non-positive count disables limiting.
func newRateLimiter(requestsPerWindow int, window time.Duration) *rateLimiter {
	if requestsPerWindow <= 0 || window <= 0 {
		return nil
	}

	return &rateLimiter{
		limit:       rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:       requestsPerWindow,
		perWindow:   requestsPerWindow,
		window:      window,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	if l, ok := rl.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}

	actual, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.limit, rl.burst))
	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose bucket is full again, i.e. clients that
// have been idle for a while.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.now().Sub(rl.lastCleanup) < limiterCleanupPeriod {
		return
	}
	rl.lastCleanup = rl.now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// allow reports whether the client may proceed and, if not, how long it
// should wait.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	l := rl.limiter(key)
	if l.Allow() {
		return true, 0
	}

	reservation := l.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	return false, delay
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (h *Handler) withShareRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.shareLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := clientIP(r)
		ok, delay := h.shareLimiter.allow(key)
		if ok {
			next.ServeHTTP(w, r)
			return
		}

		retryAfter := max(int(delay.Seconds()), 1)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(h.shareLimiter.perWindow))
		w.Header().Set("X-RateLimit-Window", h.shareLimiter.window.String())

		logger.FromRequest(r).Warn().Err(ErrRateLimited).
			Str("func", "*Handler.withShareRateLimit").
			Str("key", key).
			Int("retry_after", retryAfter).
			Send()

		writeJSON(w, r, models.ErrorResponse{Error: "rate_limit_exceeded", Details: rateLimitErrorMessage}, http.StatusTooManyRequests)
	})
}
