package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxRequestSize  = 2 * 1024 * 1024 // 2MB total JSON payload
	maxResponseSize = 4 * 1024 * 1024
)

// OpenAIGenerator talks to any OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOpenAIGenerator(cfg Config, logger *zap.Logger) *OpenAIGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: defaultTransport(cfg),
		}
	}

	return &OpenAIGenerator{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.Named("openai"),
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if req == nil {
		return nil, fmt.Errorf("openai: request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("openai: invalid request: %w", err)
	}

	pReq := providerChatRequest{
		Model: req.Model,
	}
	if req.SystemInstruction != "" {
		pReq.Messages = append(pReq.Messages, chatMessage{Role: roleSystem, Content: req.SystemInstruction})
	}
	pReq.Messages = append(pReq.Messages, chatMessage{Role: roleUser, Content: req.Prompt})

	if req.Output == OutputJSON {
		pReq.ResponseFormat = &providerResponseFormat{
			Type: "json_schema",
			JSONSchema: &providerJSONSchema{
				Name:   "response",
				Schema: req.Schema.JSONSchema(),
				// Optional properties are allowed, which strict mode forbids.
				Strict: false,
			},
		}
	}

	bodyBytes, err := json.Marshal(pReq)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}
	if len(bodyBytes) > maxRequestSize {
		return nil, fmt.Errorf("openai: request too large (%d bytes, max %d)", len(bodyBytes), maxRequestSize)
	}

	g.logger.Debug("llm request starting",
		zap.String("model", req.Model),
		zap.Stringer("output", req.Output),
	)

	url := g.cfg.BaseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("openai: build HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logger.Error("llm request failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("openai: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("openai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var perr providerErrorResponse
		if err := json.Unmarshal(body, &perr); err == nil && perr.Error.Message != "" {
			g.logger.Error("llm provider error",
				zap.Int("status", resp.StatusCode),
				zap.String("error_type", perr.Error.Type),
				zap.String("error_message", perr.Error.Message),
			)
			return nil, fmt.Errorf("openai: upstream %d: %s (%s)",
				resp.StatusCode, perr.Error.Message, perr.Error.Type)
		}

		g.logger.Error("llm upstream error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 200)),
		)
		return nil, fmt.Errorf("openai: upstream %d: %s",
			resp.StatusCode, truncate(string(body), 200))
	}

	var pResp providerChatResponse
	if err := json.Unmarshal(body, &pResp); err != nil {
		return nil, fmt.Errorf("openai: decode upstream response: %w", err)
	}
	if len(pResp.Choices) == 0 {
		return nil, fmt.Errorf("openai: provider returned no choices: %w", ErrEmptyResponse)
	}

	text := strings.TrimSpace(pResp.Choices[0].Message.Content)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	fields := []zap.Field{
		zap.String("model", pResp.Model),
		zap.Duration("duration", time.Since(start)),
	}
	if pResp.Usage != nil {
		fields = append(fields,
			zap.Int("prompt_tokens", pResp.Usage.PromptTokens),
			zap.Int("completion_tokens", pResp.Usage.CompletionTokens),
		)
	}
	g.logger.Info("llm request completed", fields...)

	model := pResp.Model
	if model == "" {
		model = req.Model
	}
	return &GenerateResponse{Model: model, Text: text}, nil
}

// Close releases idle connections held by the generator.
func (g *OpenAIGenerator) Close() error {
	g.httpClient.CloseIdleConnections()
	return nil
}

// truncate limits string length for logging
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
