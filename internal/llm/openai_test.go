package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator(context.Background(), Config{}, zaptest.NewLogger(t)); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	_, err := NewGenerator(context.Background(), Config{Provider: ProviderOpenAI, APIKey: "k"}, zaptest.NewLogger(t))
	if err == nil || !strings.Contains(err.Error(), "BaseURL") {
		t.Fatalf("expected BaseURL validation error, got %v", err)
	}

	_, err = NewGenerator(context.Background(), Config{Provider: "carrier-pigeon", APIKey: "k"}, zaptest.NewLogger(t))
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestOpenAIGenerateJSON(t *testing.T) {
	t.Parallel()

	var gotReq providerChatRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		gotAuth = r.Header.Get("Authorization")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if err := json.Unmarshal(body, &gotReq); err != nil {
			t.Errorf("unmarshal request: %v", err)
		}

		resp := providerChatResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o-mini",
			Choices: []providerChatChoice{
				{Message: chatMessage{Role: "assistant", Content: ` {"answer":"yes"} `}, FinishReason: "stop"},
			},
			Usage: &providerUsage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	gen, err := NewGenerator(context.Background(), Config{
		Provider: ProviderOpenAI,
		BaseURL:  srv.URL + "/",
		APIKey:   "test-key",
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	schema := &Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"answer": {Type: TypeString}},
		Required:   []string{"answer"},
	}

	resp, err := gen.Generate(context.Background(), &GenerateRequest{
		Model:             "gpt-4o-mini",
		Prompt:            "ping",
		SystemInstruction: "be brief",
		Output:            OutputJSON,
		Schema:            schema,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected Authorization header: %s", gotAuth)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != roleSystem || gotReq.Messages[1].Content != "ping" {
		t.Fatalf("unexpected request messages: %#v", gotReq.Messages)
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_schema" {
		t.Fatalf("expected json_schema response format, got %#v", gotReq.ResponseFormat)
	}
	if gotReq.ResponseFormat.JSONSchema.Schema["type"] != "object" {
		t.Fatalf("schema not forwarded: %#v", gotReq.ResponseFormat.JSONSchema.Schema)
	}

	if resp.Text != `{"answer":"yes"}` {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestOpenAIGenerateTextHasNoResponseFormat(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_, _ = io.WriteString(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"I ran home."}}]}`)
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator(Config{BaseURL: srv.URL, APIKey: "k"}, zaptest.NewLogger(t))
	defer gen.Close()

	resp, err := gen.Generate(context.Background(), &GenerateRequest{Model: "m", Prompt: "one sentence"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "I ran home." || resp.Model != "m" {
		t.Fatalf("unexpected response: %#v", resp)
	}
	if _, ok := raw["response_format"]; ok {
		t.Fatalf("text requests must not send response_format: %#v", raw)
	}
	msgs, _ := raw["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected only a user message, got %#v", raw["messages"])
	}
}

func TestOpenAIGenerateUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"message":"overloaded","type":"server_error"}}`)
	}))
	defer srv.Close()

	calls := 0
	countingClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return http.DefaultTransport.RoundTrip(r)
	})}

	gen := NewOpenAIGenerator(Config{BaseURL: srv.URL, APIKey: "k", HTTPClient: countingClient}, zaptest.NewLogger(t))

	_, err := gen.Generate(context.Background(), &GenerateRequest{Model: "m", Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
}

func TestOpenAIGenerateEmptyContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"  "}}]}`)
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator(Config{BaseURL: srv.URL, APIKey: "k"}, zaptest.NewLogger(t))

	_, err := gen.Generate(context.Background(), &GenerateRequest{Model: "m", Prompt: "p"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestOpenAIGenerateValidationError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("server should not be called for invalid request")
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator(Config{BaseURL: srv.URL, APIKey: "k"}, zaptest.NewLogger(t))

	_, err := gen.Generate(context.Background(), &GenerateRequest{Model: "m", Prompt: "p", Output: OutputJSON})
	if err == nil || !strings.Contains(err.Error(), "invalid request") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
