package otel

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-kratos/probe"
	"github.com/go-kratos/probe/stream"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	return recorder, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
}

func attr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracingStream(t *testing.T) {
	recorder, tp := newRecorder()
	provider := Tracing(WithSystem("gcp.gemini"), WithTracerProvider(tp))(&probe.ProviderFunc{
		HandleStream: func(context.Context, *probe.ModelRequest, ...probe.ModelOption) probe.Generator[*probe.ModelResponse, error] {
			return stream.Just(
				&probe.ModelResponse{Message: probe.UserMessage("a")},
				&probe.ModelResponse{FinishReason: "STOP", Usage: &probe.Usage{PromptTokens: 3, OutputTokens: 5, TotalTokens: 8}},
			)
		},
	})
	invocation, ctx := probe.EnsureInvocationContext(context.Background())
	for _, err := range provider.NewStreaming(ctx, &probe.ModelRequest{Model: "gemini-2.0-flash"}, probe.Temperature(0.5)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "chat gemini-2.0-flash" {
		t.Errorf("unexpected span name %q", span.Name())
	}
	if span.Status().Code != codes.Ok {
		t.Errorf("expected ok status, got %v", span.Status())
	}
	checks := map[attribute.Key]attribute.Value{
		"gen_ai.system":              attribute.StringValue("gcp.gemini"),
		"gen_ai.request.model":       attribute.StringValue("gemini-2.0-flash"),
		"gen_ai.request.temperature": attribute.Float64Value(0.5),
		"gen_ai.conversation.id":     attribute.StringValue(invocation.InvocationID),
		"gen_ai.usage.output_tokens": attribute.IntValue(5),
	}
	for key, want := range checks {
		got, ok := attr(span, key)
		if !ok {
			t.Errorf("missing attribute %s", key)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", key, want.Emit(), got.Emit())
		}
	}
}

func TestTracingGenerateError(t *testing.T) {
	recorder, tp := newRecorder()
	boom := errors.New("boom")
	provider := Tracing(WithTracerProvider(tp))(&probe.ProviderFunc{
		Handle: func(context.Context, *probe.ModelRequest, ...probe.ModelOption) (*probe.ModelResponse, error) {
			return nil, boom
		},
	})
	if _, err := provider.Generate(context.Background(), &probe.ModelRequest{Model: "m"}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error || spans[0].Status().Description != "boom" {
		t.Errorf("unexpected status %+v", spans[0].Status())
	}
	if len(spans[0].Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}
