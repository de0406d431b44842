package config

import (
	"fmt"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the Redis instance holding shared rate limit
// counters. Client-side caching is off; the limiter only issues writes.
func NewRedisClient(addr string) (rueidis.Client, error) {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			DisableCache: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	return redisClient, nil
}
