package middleware

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter connects the shared Redis client used by the rate
// limiters. With an empty addr, or when the ping fails, the client stays nil
// and the limiters fall back to their per-process windows.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// keep the server available without redis
		redisClient = nil
	}
}

// redisAllow runs one fixed-window INCR/EXPIRE round. A redis error reports
// allowed=true so an outage never takes the API down with it.
func redisAllow(ctx context.Context, key string, limit int, window time.Duration) (remaining int64, allowed bool, err error) {
	val, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, true, err
	}
	if val == 1 {
		// first hit opens the window
		redisClient.Expire(ctx, key, window)
	}
	if val > int64(limit) {
		return 0, false, nil
	}
	return int64(limit) - val, true, nil
}
