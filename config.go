package probe

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvModel     = "GEMINI_MODEL"
	EnvMode      = "GEMINI_PROBE_MODE"
	EnvOutputDir = "GEMINI_PROBE_OUTPUT_DIR"
)

// Mode selects how the probe talks to the model.
type Mode string

const (
	// ModeStream streams the response and prints each chunk as it arrives.
	ModeStream Mode = "stream"
	// ModeGenerate issues a single grounded request and reports its metadata.
	ModeGenerate Mode = "generate"
)

const (
	// DefaultModel is the model probed when GEMINI_MODEL is unset.
	DefaultModel = "gemini-2.0-flash"
	// DefaultPrompt is sent in stream mode.
	DefaultPrompt = "What are the latest technology news headlines?"
	// DefaultGroundedPrompt is sent in generate mode.
	DefaultGroundedPrompt = "Time now in India?"
)

// Config holds everything the probe needs for one run.
type Config struct {
	APIKey    string
	Model     string
	Mode      Mode
	OutputDir string
}

// Prompt returns the prompt sent for the configured mode.
func (c *Config) Prompt() string {
	if c.Mode == ModeGenerate {
		return DefaultGroundedPrompt
	}
	return DefaultPrompt
}

// LoadConfig reads the configuration through getenv, which is usually os.Getenv.
// The environment is only read, never written.
func LoadConfig(getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}
	apiKey := lookup(EnvAPIKey, "")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	mode := Mode(strings.ToLower(lookup(EnvMode, string(ModeStream))))
	switch mode {
	case ModeStream, ModeGenerate:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return &Config{
		APIKey:    apiKey,
		Model:     lookup(EnvModel, DefaultModel),
		Mode:      mode,
		OutputDir: lookup(EnvOutputDir, "."),
	}, nil
}
