package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// impressionTTL keeps last-shown timestamps just past the longest
	// frequency window (one week).
	impressionTTL = 8 * 24 * time.Hour
	// sessionTTL outlives any realistic browser session.
	sessionTTL = 24 * time.Hour
)

// History is the Redis-backed modal view-history store feeding the frequency
// gate. It satisfies display.HistoryStore. Concurrent tabs race with
// last-write-wins, which is acceptable for a marketing cap.
type History struct {
	cache *Cache
}

func NewHistory(cache *Cache) *History {
	return &History{cache: cache}
}

func impressionKey(modalID uint, visitorID string) string {
	return fmt.Sprintf("modal:shown:%d:%s", modalID, visitorID)
}

func sessionKey(modalID uint, visitorID, sessionID string) string {
	return fmt.Sprintf("modal:session:%d:%s:%s", modalID, visitorID, sessionID)
}

func (h *History) LastShown(modalID uint, visitorID string) (time.Time, bool, error) {
	if !h.cache.Enabled() {
		return time.Time{}, false, fmt.Errorf("history store disabled")
	}

	ctx, cancel := h.cache.operationContext()
	defer cancel()

	val, err := h.cache.client.Get(ctx, impressionKey(modalID, visitorID)).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	} else if err != nil {
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func (h *History) ShownInSession(modalID uint, visitorID, sessionID string) (bool, error) {
	if !h.cache.Enabled() {
		return false, fmt.Errorf("history store disabled")
	}
	if sessionID == "" {
		return false, nil
	}

	ctx, cancel := h.cache.operationContext()
	defer cancel()

	val, err := h.cache.client.Exists(ctx, sessionKey(modalID, visitorID, sessionID)).Result()
	if err != nil {
		return false, err
	}
	return val > 0, nil
}

func (h *History) RecordImpression(modalID uint, visitorID, sessionID string, at time.Time) error {
	if !h.cache.Enabled() {
		return fmt.Errorf("history store disabled")
	}

	ctx, cancel := h.cache.operationContext()
	defer cancel()

	pipe := h.cache.client.TxPipeline()
	pipe.Set(ctx, impressionKey(modalID, visitorID), at.UTC().Format(time.RFC3339Nano), impressionTTL)
	if sessionID != "" {
		pipe.Set(ctx, sessionKey(modalID, visitorID, sessionID), "1", sessionTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}
