package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// contentModels is the subset of *genai.Models the generator uses.
type contentModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	models contentModels
	logger *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return newGeminiGenerator(client.Models, logger), nil
}

func newGeminiGenerator(models contentModels, logger *zap.Logger) *GeminiGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiGenerator{
		models: models,
		logger: logger.Named("gemini"),
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("gemini: request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("gemini: invalid request: %w", err)
	}

	ctx, span := otel.Tracer("chronotense/llm").Start(ctx, "gemini.GenerateContent",
		trace.WithAttributes(
			attribute.String("llm.model", req.Model),
			attribute.String("llm.output", req.Output.String()),
			attribute.Int("llm.prompt_length", len(req.Prompt)),
		),
	)
	defer span.End()

	start := time.Now()

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}
	switch req.Output {
	case OutputJSON:
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(req.Schema)
	default:
		config.ResponseMIMEType = "text/plain"
	}

	g.logger.Debug("llm request starting",
		zap.String("model", req.Model),
		zap.Stringer("output", req.Output),
	)

	resp, err := g.models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		g.logger.Error("llm request failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		span.AddEvent("EmptyResponse")
		span.SetStatus(codes.Error, "empty response")
		return nil, ErrEmptyResponse
	}

	fields := []zap.Field{
		zap.String("model", req.Model),
		zap.Duration("duration", time.Since(start)),
	}
	if resp.UsageMetadata != nil {
		fields = append(fields,
			zap.Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount),
			zap.Int32("completion_tokens", resp.UsageMetadata.CandidatesTokenCount),
		)
	}
	g.logger.Info("llm request completed", fields...)

	return &GenerateResponse{Model: req.Model, Text: text}, nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:             genaiType(s.Type),
		Description:      s.Description,
		PropertyOrdering: append([]string(nil), s.PropertyOrdering...),
		Required:         append([]string(nil), s.Required...),
		Items:            toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func genaiType(t Type) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
