package throttle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed window counter shared by every instance of the API.
// Each key gets one counter per window, created with INCR and expired with the
// window.
type RedisLimiter struct {
	client redis.Cmdable
	rate   Rate
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client redis.Cmdable, rate Rate) *RedisLimiter {
	return &RedisLimiter{client: client, rate: rate, prefix: "throttle:", now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := l.now().UnixNano() / int64(l.rate.Period)
	redisKey := l.prefix + key + ":" + strconv.FormatInt(window, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.rate.Period)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("throttle %s: %w", key, err)
	}

	return incr.Val() <= int64(l.rate.Limit), nil
}

// NewRedisClient connects with REDIS_URL when given, with the address otherwise,
// and pings the server so callers can fall back when it is unreachable.
func NewRedisClient(ctx context.Context, url, addr, password string) (*redis.Client, error) {
	var opt *redis.Options
	if url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr, Password: password}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
