package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chronotense/internal/cache"
	"chronotense/internal/content"
	"chronotense/internal/llm"
	"chronotense/pkg/logging/logging"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg     Config
	logger  *zap.Logger
	service *content.Service
	closers []func() error
}

func newApp(ctx context.Context, cfg Config) (*app, error) {
	logger, err := logging.NewLogger(logging.Options{Env: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logging.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}

	logger.Info("loaded config",
		zap.String("port", cfg.Port),
		zap.String("cache_backend", cfg.CacheBackend),
		zap.String("redis_addr", cfg.RedisAddr),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.String("llm_model", cfg.LLMModel),
		zap.Bool("api_key_set", cfg.APIKey != ""),
	)

	// ----- Redis client (only if needed) -----
	var redisClient *redis.Client
	if cfg.CacheBackend == "redis" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		// Fail fast if Redis is misconfigured
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			logger.Error("redis connection failed", zap.Error(err))
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)
		logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	}

	contentCache := cache.NewContentCache(cache.Config{
		Backend: cfg.CacheBackend,
		Prefix:  cfg.CachePrefix,
	}, redisClient)
	contentCache = cache.NewLoggingContentCache(contentCache)

	// ----- Generator (fallback-only without a key) -----
	var generator llm.Generator
	if cfg.APIKey != "" {
		g, err := llm.NewGenerator(ctx, llm.Config{
			Provider: llm.Provider(cfg.LLMProvider),
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.LLMBaseURL,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		if closer, ok := g.(interface{ Close() error }); ok {
			a.closers = append(a.closers, closer.Close)
		}
		generator = g
	} else {
		logger.Warn("API_KEY not set, serving fallback content only")
	}

	a.service = content.NewService(generator, contentCache, cfg.LLMModel, logger)
	return a, nil
}

// Close releases clients and flushes the logger.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close error", zap.Error(err))
		}
	}
	a.closers = nil
	_ = a.logger.Sync()
}
