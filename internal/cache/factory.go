package cache

import (
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Backend string // "memory" or "redis"
	Prefix  string
}

func NewContentCache(cfg Config, redisClient *redis.Client) ContentCache {
	switch cfg.Backend {
	case "redis":
		return NewRedisContentCache(redisClient, RedisConfig{
			Prefix: cfg.Prefix,
		})
	default:
		return NewMemoryContentCache()
	}
}
