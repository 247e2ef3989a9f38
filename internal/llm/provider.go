package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for talking to a hosted chat model.
type Provider interface {
	// Generate sends a prompt and returns the model's reply. When the
	// request carries a Schema the reply lands in Response.Content as
	// validated JSON; otherwise it lands in Response.Text as prose.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the optional system prompt.
	System string

	// Messages is the conversation. Judging is single-turn, so this is
	// normally one user message.
	Messages []Message

	// Schema, when set, asks the provider for JSON conforming to it.
	Schema *Schema

	// MaxTokens caps the length of the reply.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0).
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "scenario-verdict".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model's output. Exactly one of Text and Content is
// set, depending on whether the request carried a Schema.
type Response struct {
	// Text is the trimmed prose reply for schema-less requests.
	Text string

	// Content is the schema-validated JSON for structured requests.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Body returns whichever of Text and Content was filled in.
func (r *Response) Body() string {
	if r == nil {
		return ""
	}
	if r.Content != nil {
		return string(r.Content)
	}
	return r.Text
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
