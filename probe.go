package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Option configures a Probe.
type Option func(*Probe)

// WithOutput sets the writer receiving progress and response text. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Probe) {
		p.out = w
	}
}

// WithGetenv sets the environment lookup used to load the configuration.
func WithGetenv(getenv func(string) string) Option {
	return func(p *Probe) {
		p.getenv = getenv
	}
}

// WithMiddleware wraps the provider built by the factory.
func WithMiddleware(mws ...Middleware) Option {
	return func(p *Probe) {
		p.middlewares = append(p.middlewares, mws...)
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(p *Probe) {
		p.logger = logger
	}
}

// Probe performs one end-to-end call against a generative model and reports
// whether it succeeded.
type Probe struct {
	factory     ProviderFactory
	out         io.Writer
	getenv      func(string) string
	logger      *log.Logger
	middlewares []Middleware
}

// New creates a Probe that builds its provider with factory.
func New(factory ProviderFactory, opts ...Option) *Probe {
	p := &Probe{
		factory: factory,
		out:     os.Stdout,
		getenv:  os.Getenv,
		logger:  log.Default(),
	}
	for _, apply := range opts {
		apply(p)
	}
	return p
}

// Run executes the probe once. Every failure, whatever its cause, is printed
// and reported as false; output already written is left in place.
func (p *Probe) Run(ctx context.Context) bool {
	if err := p.run(ctx); err != nil {
		fmt.Fprintf(p.out, "Error testing Gemini API: %v\n", err)
		return false
	}
	return true
}

func (p *Probe) run(ctx context.Context) error {
	config, err := LoadConfig(p.getenv)
	if err != nil {
		return err
	}
	invocation, ctx := EnsureInvocationContext(ctx)
	invocation.Model = config.Model
	invocation.Mode = config.Mode

	provider, err := p.factory(ctx, config)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	if provider == nil {
		return ErrNilProvider
	}
	if len(p.middlewares) > 0 {
		provider = ChainMiddlewares(p.middlewares...)(provider)
	}
	req := NewRequest(config)
	if config.Mode == ModeGenerate {
		return p.generate(ctx, provider, req, config.OutputDir)
	}
	return p.stream(ctx, provider, req)
}

// NewRequest builds the fixed request sent for the configured mode.
func NewRequest(config *Config) *ModelRequest {
	req := &ModelRequest{
		Model:    config.Model,
		Messages: []*Message{UserMessage(config.Prompt())},
		Tools:    []*Tool{GoogleSearch()},
	}
	if config.Mode != ModeGenerate {
		req.ResponseMIMEType = MIMEText
	}
	return req
}

// GroundedOptions are the sampling options used in generate mode.
func GroundedOptions() []ModelOption {
	return []ModelOption{
		Temperature(1),
		TopP(0.95),
		TopK(40),
		MaxOutputTokens(8192),
	}
}

func (p *Probe) stream(ctx context.Context, provider ModelProvider, req *ModelRequest) error {
	fmt.Fprintln(p.out, "Sending test prompt to Gemini API...")
	fmt.Fprintln(p.out, "\nAPI Response:")
	fmt.Fprintln(p.out, "=============")
	for chunk, err := range provider.NewStreaming(ctx, req) {
		if err != nil {
			return err
		}
		if _, err := io.WriteString(p.out, chunk.Text()); err != nil {
			return err
		}
	}
	fmt.Fprintln(p.out, "\n\nTest completed successfully!")
	return nil
}

func (p *Probe) generate(ctx context.Context, provider ModelProvider, req *ModelRequest, dir string) error {
	fmt.Fprintln(p.out, "Sending test prompt to Gemini API with search grounding...")
	resp, err := provider.Generate(ctx, req, GroundedOptions()...)
	if err != nil {
		return err
	}
	if resp == nil {
		resp = &ModelResponse{}
	}
	if resp.Grounding != nil {
		b, err := json.MarshalIndent(resp.Grounding, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding grounding metadata: %w", err)
		}
		fmt.Fprintln(p.out, "\nGrounding Metadata:")
		fmt.Fprintln(p.out, "==================")
		fmt.Fprintln(p.out, string(b))
	}
	if resp.Message != nil {
		for i, part := range resp.Message.Parts {
			data, ok := part.(DataPart)
			if !ok {
				continue
			}
			p.writeData(dir, 0, i, data)
		}
	}
	fmt.Fprintln(p.out, "\nAPI Response:")
	fmt.Fprintln(p.out, "=============")
	fmt.Fprintln(p.out, resp.Text())
	fmt.Fprintln(p.out, "\nTest completed successfully!")
	return nil
}

// writeData stores one inline data part. A failed write is logged and does
// not fail the run.
func (p *Probe) writeData(dir string, candidate, index int, data DataPart) {
	name := fmt.Sprintf("output_%d_%d.%s", candidate, index, data.MIMEType.Extension())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data.Bytes, 0o644); err != nil {
		p.logger.Printf("writing %s: %v", path, err)
		return
	}
	fmt.Fprintf(p.out, "Output written to: %s\n", path)
}
