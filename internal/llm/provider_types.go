package llm

const (
	roleSystem = "system"
	roleUser   = "user"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request shape we send to an OpenAI-compatible upstream.
type providerChatRequest struct {
	Model          string                  `json:"model"`
	Messages       []chatMessage           `json:"messages"`
	ResponseFormat *providerResponseFormat `json:"response_format,omitempty"`
}

type providerResponseFormat struct {
	Type       string              `json:"type"` // "text" | "json_schema"
	JSONSchema *providerJSONSchema `json:"json_schema,omitempty"`
}

type providerJSONSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

type providerChatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

type providerUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type providerChatResponse struct {
	ID      string               `json:"id"`
	Object  string               `json:"object"`
	Created int64                `json:"created"`
	Model   string               `json:"model"`
	Choices []providerChatChoice `json:"choices"`
	Usage   *providerUsage       `json:"usage,omitempty"`
}

type providerErrorResponse struct {
	Error struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}
