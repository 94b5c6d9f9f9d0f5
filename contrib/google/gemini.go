package google

import (
	"context"
	"net/http"

	"github.com/go-kratos/probe"
	"google.golang.org/genai"
)

// ClientConfig returns a Gemini API client configuration bound to the probe's API key.
func ClientConfig(config *probe.Config) *genai.ClientConfig {
	return &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Headers: http.Header{"User-Agent": []string{"geminiprobe/" + probe.Version}},
		},
	}
}

// NewFactory returns a probe.ProviderFactory creating a Provider per run.
func NewFactory(opts ...Option) probe.ProviderFactory {
	return func(ctx context.Context, config *probe.Config) (probe.ModelProvider, error) {
		provider, err := NewProvider(ctx, ClientConfig(config), opts...)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}
}
