package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/probe"
	"github.com/go-kratos/probe/stream"
	"google.golang.org/genai"
)

var _ probe.ModelProvider = (*Provider)(nil)

// ErrEmptyResponse indicates the provider returned no response at all.
var ErrEmptyResponse = errors.New("empty generate content response")

// Option defines a configuration option for the Provider.
type Option func(*Options)

// WithThinkingConfig sets the thinking config for the provider.
func WithThinkingConfig(c *genai.ThinkingConfig) Option {
	return func(o *Options) {
		o.ThinkingConfig = c
	}
}

// WithSafetySettings sets custom safety filtering settings.
func WithSafetySettings(settings []*genai.SafetySetting) Option {
	return func(o *Options) {
		o.SafetySettings = settings
	}
}

// WithBaseURL overrides the API endpoint, e.g. to target a proxy.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// Options holds configuration options for the Provider.
type Options struct {
	ThinkingConfig *genai.ThinkingConfig
	SafetySettings []*genai.SafetySetting
	BaseURL        string
}

// Provider calls the Gemini API through the genai SDK.
type Provider struct {
	opts   Options
	client *genai.Client
}

// NewProvider creates a Provider backed by a new genai client.
func NewProvider(ctx context.Context, clientConfig *genai.ClientConfig, opts ...Option) (*Provider, error) {
	if clientConfig == nil {
		return nil, fmt.Errorf("clientConfig cannot be nil")
	}
	opt := Options{}
	for _, apply := range opts {
		apply(&opt)
	}
	if opt.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = opt.BaseURL
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating GenAI client: %w", err)
	}
	return &Provider{
		opts:   opt,
		client: client,
	}, nil
}

// Generate executes the request and returns the complete response.
func (c *Provider) Generate(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) (*probe.ModelResponse, error) {
	system, contents, config, err := c.prepare(req, probe.NewModelOptions(opts...))
	if err != nil {
		return nil, err
	}
	config.SystemInstruction = system
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	return convertGenAIToProbe(resp)
}

// NewStreaming executes the request and yields every chunk as soon as the SDK delivers it.
func (c *Provider) NewStreaming(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) probe.Generator[*probe.ModelResponse, error] {
	system, contents, config, err := c.prepare(req, probe.NewModelOptions(opts...))
	if err != nil {
		return stream.Error[*probe.ModelResponse](err)
	}
	config.SystemInstruction = system
	return stream.Map(c.client.Models.GenerateContentStream(ctx, req.Model, contents, config), convertGenAIToProbe)
}

func (c *Provider) prepare(req *probe.ModelRequest, opt probe.ModelOptions) (*genai.Content, []*genai.Content, *genai.GenerateContentConfig, error) {
	if req == nil {
		return nil, nil, nil, fmt.Errorf("request cannot be nil")
	}
	system, contents, err := convertMessageToGenAI(req)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("converting request: %w", err)
	}
	config, err := c.toGenerateConfig(req, opt)
	if err != nil {
		return nil, nil, nil, err
	}
	return system, contents, config, nil
}

func (c *Provider) toGenerateConfig(req *probe.ModelRequest, opt probe.ModelOptions) (*genai.GenerateContentConfig, error) {
	var config genai.GenerateContentConfig
	if opt.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(opt.Temperature))
	}
	if opt.TopP > 0 {
		config.TopP = genai.Ptr(float32(opt.TopP))
	}
	if opt.TopK > 0 {
		config.TopK = genai.Ptr(float32(opt.TopK))
	}
	if opt.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(opt.MaxOutputTokens)
	}
	if req.ResponseMIMEType != "" {
		config.ResponseMIMEType = string(req.ResponseMIMEType)
	}
	if c.opts.ThinkingConfig != nil {
		config.ThinkingConfig = c.opts.ThinkingConfig
	}
	if len(c.opts.SafetySettings) > 0 {
		config.SafetySettings = c.opts.SafetySettings
	}
	if len(req.Tools) > 0 {
		tools, err := convertToolsToGenAI(req.Tools)
		if err != nil {
			return nil, fmt.Errorf("converting tools: %w", err)
		}
		config.Tools = tools
	}
	return &config, nil
}
