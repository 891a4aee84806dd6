package content

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"chronotense/internal/cache"
	"chronotense/internal/catalog"
	"chronotense/internal/llm"
	"chronotense/internal/metrics"
	"chronotense/pkg/logging/logging"
)

// MissingKeyMessage is returned by GetSingleExample when no provider
// credential is configured.
const MissingKeyMessage = "API Key missing. Cannot generate new example."

const (
	opLevelContent  = "level_content"
	opSingleExample = "single_example"
)

// Options are the grammar toggles that shape generated examples.
type Options struct {
	IncludeModals       bool `json:"includeModals"`
	IncludeConditionals bool `json:"includeConditionals"`
}

// Source records which path produced a LevelContent.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceCache     Source = "cache"
	SourceFallback  Source = "fallback"
)

// LevelContent is the complete content for one (level, options) pair.
// Tenses always holds exactly the twelve catalog tenses.
type LevelContent struct {
	Level            catalog.Level                            `json:"level"`
	Options          Options                                  `json:"options"`
	Tenses           map[catalog.TenseID]catalog.TenseContent `json:"tenses"`
	LevelDescription catalog.LevelDescription                 `json:"levelDescription"`
	Source           Source                                   `json:"source"`
}

// Service turns a (level, options) pair into tense content. None of its
// methods fail: every error path degrades to static content.
type Service struct {
	generator llm.Generator
	cache     cache.ContentCache
	model     string
	logger    *zap.Logger
}

// NewService wires a Service. A nil generator means no credential is
// configured and only fallback content is served. A nil cache gets a fresh
// in-memory cache.
func NewService(generator llm.Generator, c cache.ContentCache, model string, logger *zap.Logger) *Service {
	if c == nil {
		c = cache.NewMemoryContentCache()
	}
	if model == "" {
		model = llm.DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		cache:     c,
		model:     model,
		logger:    logger.Named("content"),
	}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s.generator != nil
}

// GetLevelContent returns content for every tense at level under opts,
// preferring cached, then freshly generated, then fallback content.
// Fallback results are never cached.
func (s *Service) GetLevelContent(ctx context.Context, level catalog.Level, opts Options) LevelContent {
	logger := logging.FromContextOr(ctx, s.logger).With(
		zap.String("level", level.String()),
		zap.Bool("include_modals", opts.IncludeModals),
		zap.Bool("include_conditionals", opts.IncludeConditionals),
	)

	if s.generator == nil {
		logger.Warn("no api key configured, serving fallback content")
		return s.fallback(level, opts)
	}
	if !level.Valid() {
		logger.Warn("unknown level, serving fallback content")
		return s.fallback(level, opts)
	}

	key := cache.BuildContentKey(level, opts.IncludeModals, opts.IncludeConditionals).String()

	if cached, ok := s.lookup(ctx, logger, key); ok {
		metrics.GenerationsTotal.WithLabelValues(opLevelContent, string(SourceCache)).Inc()
		return LevelContent{
			Level:            level,
			Options:          opts,
			Tenses:           cached.Tenses,
			LevelDescription: cached.LevelDescription,
			Source:           SourceCache,
		}
	}

	start := time.Now()
	resp, err := s.generator.Generate(ctx, &llm.GenerateRequest{
		Model:             s.model,
		Prompt:            levelPrompt(level),
		SystemInstruction: levelSystemInstruction(level, opts),
		Output:            llm.OutputJSON,
		Schema:            levelResponseSchema,
	})
	metrics.GenerationLatencySeconds.WithLabelValues(opLevelContent).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("level content generation failed", zap.Error(err))
		return s.fallback(level, opts)
	}
	if resp == nil {
		logger.Error("level content generation returned no response")
		return s.fallback(level, opts)
	}

	merged, err := parseAndMerge(resp.Text)
	if err != nil {
		logger.Error("level content response rejected",
			zap.Error(err),
			zap.Int("response_bytes", len(resp.Text)),
		)
		return s.fallback(level, opts)
	}

	s.store(ctx, logger, key, merged)

	metrics.GenerationsTotal.WithLabelValues(opLevelContent, string(SourceGenerated)).Inc()
	logger.Info("level content generated", zap.Duration("duration", time.Since(start)))

	return LevelContent{
		Level:            level,
		Options:          opts,
		Tenses:           merged.Tenses,
		LevelDescription: merged.LevelDescription,
		Source:           SourceGenerated,
	}
}

// GetSingleExample asks for one new example sentence for a tense. It
// returns MissingKeyMessage without a credential and currentExample on any
// failure. Results are not cached and do not touch level content.
func (s *Service) GetSingleExample(ctx context.Context, level catalog.Level, tenseTitle, currentExample string, opts Options) string {
	logger := logging.FromContextOr(ctx, s.logger).With(
		zap.String("level", level.String()),
		zap.String("tense_title", tenseTitle),
	)

	if s.generator == nil {
		logger.Warn("no api key configured, cannot refresh example")
		metrics.GenerationsTotal.WithLabelValues(opSingleExample, "missing_key").Inc()
		return MissingKeyMessage
	}

	start := time.Now()
	resp, err := s.generator.Generate(ctx, &llm.GenerateRequest{
		Model:  s.model,
		Prompt: examplePrompt(level, tenseTitle, currentExample, opts),
		Output: llm.OutputText,
	})
	metrics.GenerationLatencySeconds.WithLabelValues(opSingleExample).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("example generation failed", zap.Error(err))
		metrics.GenerationsTotal.WithLabelValues(opSingleExample, string(SourceFallback)).Inc()
		return currentExample
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text)
	}
	if text == "" {
		logger.Warn("example generation returned no text")
		metrics.GenerationsTotal.WithLabelValues(opSingleExample, string(SourceFallback)).Inc()
		return currentExample
	}

	metrics.GenerationsTotal.WithLabelValues(opSingleExample, string(SourceGenerated)).Inc()
	return text
}

func (s *Service) fallback(level catalog.Level, opts Options) LevelContent {
	metrics.GenerationsTotal.WithLabelValues(opLevelContent, string(SourceFallback)).Inc()
	return LevelContent{
		Level:            level,
		Options:          opts,
		Tenses:           catalog.FallbackContent(),
		LevelDescription: catalog.DefaultLevelDescription(),
		Source:           SourceFallback,
	}
}

// lookup treats cache errors and undecodable entries as misses. Backend
// errors are logged by cache.LoggingContentCache.
func (s *Service) lookup(ctx context.Context, logger *zap.Logger, key string) (entry, bool) {
	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil || !hit {
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		logger.Warn("content_cache_unmarshal_error", zap.Error(err))
		return entry{}, false
	}
	return e, true
}

func (s *Service) store(ctx context.Context, logger *zap.Logger, key string, e entry) {
	raw, err := json.Marshal(e)
	if err != nil {
		logger.Warn("marshal_content_error", zap.Error(err))
		return
	}
	// a failed write only costs a regeneration later
	_ = s.cache.Set(ctx, key, raw)
}
