package probe

import "errors"

var (
	// ErrMissingAPIKey is returned when the Gemini API key is not configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")
	// ErrUnknownMode is returned when GEMINI_PROBE_MODE names an unsupported mode.
	ErrUnknownMode = errors.New("unknown probe mode")
	// ErrNilProvider is returned when a provider factory yields no provider.
	ErrNilProvider = errors.New("provider factory returned nil provider")
)
