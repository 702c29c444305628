package review

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/config"
)

// NewProvider builds a provider from its configuration.
func NewProvider(name string, cfg config.Provider) (Provider, error) {
	switch name {
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}

// RegisterFromConfig builds and registers every configured provider in
// the given registry. Providers that fail to build are skipped.
func RegisterFromConfig(reg *Registry, cfg *config.Config) {
	for name, pc := range cfg.Providers {
		p, err := NewProvider(name, pc)
		if err != nil {
			continue
		}
		_ = reg.Register(p)
	}
}
