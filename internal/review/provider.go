// Package review provides the LLM provider interface and registry for
// the optional content review stage: academic-language feedback on the
// thesis sections that the rule engine cannot judge mechanically.
package review

import "context"

// Provider is the interface that all review providers implement.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai", "anthropic").
	Name() string

	// Review sends one section for content review and returns the
	// model's feedback.
	Review(ctx context.Context, req Request) (*Result, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// Request is one section review request.
type Request struct {
	// SectionTitle names the section under review (Özet, Giriş, ...).
	SectionTitle string  `json:"section_title"`
	Text         string  `json:"text"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
}

// Result is the provider's feedback for one request.
type Result struct {
	Feedback string     `json:"feedback"`
	Usage    TokenUsage `json:"usage"`
	Model    string     `json:"model"`
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// DefaultRequest returns a request with the default sampling options.
func DefaultRequest(title, text string) Request {
	return Request{
		SectionTitle: title,
		Text:         text,
		MaxTokens:    4096,
		Temperature:  0.3,
	}
}
