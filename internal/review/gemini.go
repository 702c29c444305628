package review

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider reviews sections with the Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a Gemini provider. The client is created
// per request because the SDK binds it to a context.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Validate implements Provider.
func (p *GeminiProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("gemini: API key is not set")
	}
	if p.model == "" {
		return fmt.Errorf("gemini: model is not set")
	}
	return nil
}

// Review implements Provider.
func (p *GeminiProvider) Review(ctx context.Context, req Request) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client creation failed: %w", err)
	}

	cfg := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(BuildPrompt(req)), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	result := &Result{
		Feedback: resp.Text(),
		Model:    p.model,
	}
	if resp.UsageMetadata != nil {
		result.Usage = TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}
