package llm

import (
	"context"
	"errors"
)

// OutputMode selects how the provider should shape its reply.
type OutputMode int

const (
	OutputText OutputMode = iota
	OutputJSON
)

func (m OutputMode) String() string {
	switch m {
	case OutputJSON:
		return "json"
	default:
		return "text"
	}
}

var (
	ErrEmptyResponse   = errors.New("llm: empty response")
	ErrSchemaViolation = errors.New("llm: schema violation")
	ErrMissingAPIKey   = errors.New("llm: api key is required")
)

type GenerateRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string
	Output            OutputMode
	// Schema is required when Output is OutputJSON.
	Schema *Schema
}

func (r *GenerateRequest) Validate() error {
	if r.Model == "" {
		return errors.New("model is required")
	}
	if r.Prompt == "" {
		return errors.New("prompt is required")
	}
	if r.Output == OutputJSON && r.Schema == nil {
		return errors.New("schema is required for json output")
	}
	return nil
}

type GenerateResponse struct {
	Model string
	Text  string
}

// Generator is a single-shot call to a generative-language provider.
// Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}
