package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter counts requests per client in fixed windows stored in Redis,
// so every instance behind a load balancer shares the same budget.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, perWindow int, window time.Duration) *RedisLimiter {
	if window < time.Second {
		window = time.Second
	}

	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(perWindow),
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowSeconds := int64(r.window / time.Second)
	slot := r.now().Unix() / windowSeconds
	counterKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(counterKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		cmd := r.client.B().Expire().Key(counterKey).Seconds(windowSeconds).Build()
		if err := r.client.Do(ctx, cmd).Error(); err != nil {
			return false, err
		}
	}

	return count <= r.limit, nil
}
