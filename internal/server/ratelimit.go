package server

import (
	"sync"
	"time"
)

// RateLimiter enforces a sliding-window request limit per session
type RateLimiter struct {
	requests map[string][]time.Time
	mutex    sync.Mutex
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) IsAllowed(sessionID string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	if requests, exists := rl.requests[sessionID]; exists {
		var valid []time.Time
		for _, t := range requests {
			if now.Sub(t) < rl.window {
				valid = append(valid, t)
			}
		}
		rl.requests[sessionID] = valid
	}

	if len(rl.requests[sessionID]) >= rl.limit {
		return false
	}

	rl.requests[sessionID] = append(rl.requests[sessionID], now)
	return true
}

// Forget drops the request history for a session
func (rl *RateLimiter) Forget(sessionID string) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	delete(rl.requests, sessionID)
}
