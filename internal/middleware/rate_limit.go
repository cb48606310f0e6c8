package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"launchkit-backend/internal/config"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitManager keeps one token bucket per client IP and evicts idle
// entries in the background.
type RateLimitManager struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewRateLimitManager(ctx context.Context) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	m := &RateLimitManager{
		visitors: make(map[string]*visitor),
		cancel:   cancel,
	}

	m.wg.Add(1)
	go m.cleanupLoop(managerCtx)

	return m
}

// getVisitor retrieves or creates the limiter for an IP. A non-positive
// request budget disables limiting.
func (m *RateLimitManager) getVisitor(ip string, requestsPerWindow, windowSeconds, burst int) *rate.Limiter {
	if requestsPerWindow <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, exists := m.visitors[ip]; exists {
		v.lastSeen = time.Now()
		return v.limiter
	}

	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	if burst <= 0 {
		burst = requestsPerWindow
	}

	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerWindow)/float64(windowSeconds)), burst)
	m.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (m *RateLimitManager) cleanupLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			for ip, v := range m.visitors {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(m.visitors, ip)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Shutdown stops the cleanup loop and waits for it to exit.
func (m *RateLimitManager) Shutdown() {
	m.cancel()
	m.wg.Wait()
}

// RateLimit limits request rate per client IP using the shared manager.
func RateLimit(manager *RateLimitManager, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil {
			c.Next()
			return
		}

		limiter := manager.getVisitor(
			c.ClientIP(),
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			cfg.RateLimitBurst,
		)
		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
