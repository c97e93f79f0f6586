package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const replayTTL = 24 * time.Hour

// idempotentReply is what handlers cache after a successful submit: the
// exact status and response body, so a duplicate request replays them
// unchanged.
type idempotentReply struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency protects POST routes against rapid double submits (two clicks
// on "Submit Attendance" racing each other). The first request takes a short
// Redis lock; duplicates either replay the cached response or get a 409 while
// the original is still in flight. Handlers release the lock and fill the
// cache after committing, via CacheIdempotentReply.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var reply idempotentReply
			if json.Unmarshal([]byte(val), &reply) == nil && reply.Status != 0 {
				c.Data(reply.Status, "application/json; charset=utf-8", reply.Body)
				c.Abort()
				return
			}
		}

		// Short expiry so a crashed server does not hold the lock forever.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "This submission is already being processed",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// CacheIdempotentReply stores the response under the cache key issued by
// Idempotency. envelope must be the exact body the first request returned.
func CacheIdempotentReply(ctx context.Context, rdb *redis.Client, cacheKey string, status int, envelope any) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return
	}
	payload, err := json.Marshal(idempotentReply{Status: status, Body: body})
	if err != nil {
		return
	}
	_ = rdb.Set(ctx, cacheKey, payload, replayTTL).Err()
}
