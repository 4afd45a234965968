// Package ratelimit provides a per-client token bucket rate limiter for
// HTTP handlers backed by golang.org/x/time/rate.
package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/patric-chuzhbe/guessnum/internal/models"
)

const (
	cleanupInterval = time.Minute
	entryTTL        = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out a token bucket per client IP and evicts buckets which
// stayed idle longer than entryTTL.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	done     chan struct{}
}

// New creates a Limiter allowing requestsPerSecond sustained requests with
// the given burst per client and starts the background eviction loop.
func New(requestsPerSecond, burst int) *Limiter {
	limiter := &Limiter{
		visitors: map[string]*visitor{},
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go limiter.cleanupLoop()

	return limiter
}

// Stop terminates the background eviction loop.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *Limiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.visitors {
		if time.Since(entry.lastSeen) > entryTTL {
			delete(l.visitors, key)
		}
	}
}

func (l *Limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, found := l.visitors[key]
	if !found {
		entry = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

func clientKey(request *http.Request) string {
	if realIP := request.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if xff := request.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}

// Limit is an HTTP middleware which rejects requests above the per client
// budget with 429 Too Many Requests.
func (l *Limiter) Limit(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		if !l.allow(clientKey(request)) {
			response.Header().Set("Content-Type", "application/json")
			response.Header().Set("Retry-After", "1")
			response.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(response).Encode(models.ErrorResponse{Error: "too many requests"})
			return
		}
		h.ServeHTTP(response, request)
	}
	return http.HandlerFunc(middleware)
}
