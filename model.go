package probe

import (
	"context"
)

// ModelOption configures a single request.
type ModelOption func(*ModelOptions)

// ModelOptions holds request-time sampling controls. Zero values leave the
// provider default in place.
type ModelOptions struct {
	MaxOutputTokens int64
	Temperature     float64
	TopP            float64
	TopK            float64
}

// ModelRequest is a chat-style request to the provider.
type ModelRequest struct {
	Model            string     `json:"model"`
	Messages         []*Message `json:"messages"`
	Tools            []*Tool    `json:"tools,omitempty"`
	ResponseMIMEType MIMEType   `json:"responseMimeType,omitempty"`
}

// Source is a web document the model grounded its answer on.
type Source struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri"`
}

// Grounding describes the searches behind a grounded response.
type Grounding struct {
	Queries []string `json:"webSearchQueries,omitempty"`
	Sources []Source `json:"sources,omitempty"`
}

// Usage reports token accounting for a response.
type Usage struct {
	PromptTokens int64 `json:"promptTokens"`
	OutputTokens int64 `json:"outputTokens"`
	TotalTokens  int64 `json:"totalTokens"`
}

// ModelResponse is a complete response, or one chunk of a streamed response.
type ModelResponse struct {
	Message      *Message   `json:"message"`
	Grounding    *Grounding `json:"grounding,omitempty"`
	Usage        *Usage     `json:"usage,omitempty"`
	FinishReason string     `json:"finishReason,omitempty"`
}

// Text returns the text carried by the response message.
func (r *ModelResponse) Text() string {
	if r == nil {
		return ""
	}
	return r.Message.Text()
}

// ModelProvider is an interface for chat-style generative models.
type ModelProvider interface {
	// Generate executes the request and returns a single complete response.
	Generate(context.Context, *ModelRequest, ...ModelOption) (*ModelResponse, error)
	// NewStreaming executes the request and yields response chunks as they arrive.
	NewStreaming(context.Context, *ModelRequest, ...ModelOption) Generator[*ModelResponse, error]
}
