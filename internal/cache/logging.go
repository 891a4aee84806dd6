package cache

import (
	"context"
	"time"

	"chronotense/internal/metrics"
	"chronotense/pkg/logging/logging"

	"go.uber.org/zap"
)

// LoggingContentCache wraps a ContentCache with logging + metrics.
type LoggingContentCache struct {
	inner ContentCache
}

func NewLoggingContentCache(inner ContentCache) ContentCache {
	return &LoggingContentCache{inner: inner}
}

func (c *LoggingContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := c.inner.Get(ctx, key)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	result := "miss"
	if err != nil {
		result = "error"
	} else if ok {
		result = "hit"
	}
	metrics.ContentCacheLookupsTotal.WithLabelValues(result).Inc()

	fields := append(keyFields(key),
		zap.String("cache_result", result),
		zap.Float64("latency_ms", latencyMs),
	)

	logger := logging.L(ctx)
	if err != nil {
		logger.Error("content_cache_get", append(fields, zap.Error(err))...)
	} else {
		logger.Debug("content_cache_get", fields...)
	}

	return value, ok, err
}

func (c *LoggingContentCache) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := c.inner.Set(ctx, key, value)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	fields := append(keyFields(key),
		zap.Int("bytes", len(value)),
		zap.Float64("latency_ms", latencyMs),
	)

	logger := logging.L(ctx)
	if err != nil {
		logger.Error("content_cache_set", append(fields, zap.Error(err))...)
	} else {
		logger.Info("content_cache_set", fields...)
	}

	return err
}

func keyFields(key string) []zap.Field {
	fields := []zap.Field{zap.String("cache_key", key)}
	if k, ok := ParseContentKey(key); ok {
		fields = append(fields,
			zap.String("level", k.Level.String()),
			zap.Bool("include_modals", k.Modals),
			zap.Bool("include_conditionals", k.Conditionals),
		)
	}
	return fields
}
