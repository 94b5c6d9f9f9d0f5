package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-kratos/probe"
)

const (
	traceScope = "github.com/go-kratos/probe"
)

// TraceOption defines options for tracing middleware
type TraceOption func(*tracing)

// tracing holds configuration for the model tracing middleware
type tracing struct {
	system string
	tracer trace.Tracer
	next   probe.ModelProvider
}

// WithSystem sets the AI system name for tracing, e.g. "gcp.gemini".
func WithSystem(system string) TraceOption {
	return func(t *tracing) {
		t.system = system
	}
}

// WithTracerProvider sets a custom TracerProvider for the tracing middleware
func WithTracerProvider(tr trace.TracerProvider) TraceOption {
	return func(t *tracing) {
		t.tracer = tr.Tracer(traceScope)
	}
}

// Tracing returns a middleware that records one OpenTelemetry span per model
// call. Without a configured TracerProvider the spans are no-ops.
func Tracing(opts ...TraceOption) probe.Middleware {
	return func(next probe.ModelProvider) probe.ModelProvider {
		t := &tracing{
			system: "_OTHER",
			tracer: otel.GetTracerProvider().Tracer(traceScope),
			next:   next,
		}
		for _, o := range opts {
			o(t)
		}
		return t
	}
}

func (t *tracing) start(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, fmt.Sprintf("chat %s", req.Model), trace.WithSpanKind(trace.SpanKindClient))

	mo := probe.NewModelOptions(opts...)
	attrs := []attribute.KeyValue{
		semconv.GenAIOperationNameKey.String("chat"),
		semconv.GenAISystemKey.String(t.system),
		semconv.GenAIRequestModel(req.Model),
	}
	if mo.Temperature > 0 {
		attrs = append(attrs, semconv.GenAIRequestTemperature(mo.Temperature))
	}
	if mo.TopP > 0 {
		attrs = append(attrs, semconv.GenAIRequestTopP(mo.TopP))
	}
	if mo.TopK > 0 {
		attrs = append(attrs, semconv.GenAIRequestTopK(mo.TopK))
	}
	if mo.MaxOutputTokens > 0 {
		attrs = append(attrs, semconv.GenAIRequestMaxTokens(int(mo.MaxOutputTokens)))
	}
	span.SetAttributes(attrs...)

	// the run id doubles as the conversation id: a probe run is one exchange
	if invocation, ok := probe.FromInvocationContext(ctx); ok {
		span.SetAttributes(semconv.GenAIConversationID(invocation.InvocationID))
	}
	return ctx, span
}

// Generate traces a single non-streaming call.
func (t *tracing) Generate(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) (*probe.ModelResponse, error) {
	ctx, span := t.start(ctx, req, opts...)
	resp, err := t.next.Generate(ctx, req, opts...)
	t.end(span, resp, err)
	return resp, err
}

// NewStreaming traces a streaming call; the span ends with the stream.
func (t *tracing) NewStreaming(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) probe.Generator[*probe.ModelResponse, error] {
	return func(yield func(*probe.ModelResponse, error) bool) {
		ctx, span := t.start(ctx, req, opts...)
		var last *probe.ModelResponse
		for resp, err := range t.next.NewStreaming(ctx, req, opts...) {
			if err != nil {
				t.end(span, nil, err)
				yield(nil, err)
				return
			}
			last = resp
			if !yield(resp, nil) {
				t.end(span, last, nil)
				return
			}
		}
		t.end(span, last, nil)
	}
}

func (t *tracing) end(span trace.Span, resp *probe.ModelResponse, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, codes.Ok.String())
	if resp == nil {
		return
	}
	if resp.FinishReason != "" {
		span.SetAttributes(semconv.GenAIResponseFinishReasons(resp.FinishReason))
	}
	if resp.Usage != nil {
		span.SetAttributes(
			semconv.GenAIUsageInputTokens(int(resp.Usage.PromptTokens)),
			semconv.GenAIUsageOutputTokens(int(resp.Usage.OutputTokens)),
		)
	}
}
