package middleware

import (
	"context"
	"log"
	"time"

	"github.com/go-kratos/probe"
	"github.com/go-kratos/probe/stream"
)

type logging struct {
	next   probe.ModelProvider
	logger *log.Logger
}

// Logging returns a middleware that logs the outcome and duration of every
// model call. A nil logger uses log.Default().
func Logging(logger *log.Logger) probe.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next probe.ModelProvider) probe.ModelProvider {
		return &logging{next: next, logger: logger}
	}
}

func (m *logging) invocationID(ctx context.Context) string {
	if invocation, ok := probe.FromInvocationContext(ctx); ok {
		return invocation.InvocationID
	}
	return "-"
}

func (m *logging) onError(ctx context.Context, req *probe.ModelRequest, start time.Time, err error) {
	m.logger.Printf("logging: invocation(%s) model(%s) failed after %s: %v", m.invocationID(ctx), req.Model, time.Since(start), err)
}

func (m *logging) onSuccess(ctx context.Context, req *probe.ModelRequest, start time.Time, chunks int) {
	m.logger.Printf("logging: invocation(%s) model(%s) succeeded after %s: %d chunk(s)", m.invocationID(ctx), req.Model, time.Since(start), chunks)
}

func (m *logging) Generate(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) (*probe.ModelResponse, error) {
	start := time.Now()
	resp, err := m.next.Generate(ctx, req, opts...)
	if err != nil {
		m.onError(ctx, req, start, err)
	} else {
		m.onSuccess(ctx, req, start, 1)
	}
	return resp, err
}

func (m *logging) NewStreaming(ctx context.Context, req *probe.ModelRequest, opts ...probe.ModelOption) probe.Generator[*probe.ModelResponse, error] {
	return func(yield func(*probe.ModelResponse, error) bool) {
		var (
			start  = time.Now()
			chunks int
			failed bool
		)
		observed := stream.Observe(m.next.NewStreaming(ctx, req, opts...), func(_ *probe.ModelResponse, err error) error {
			if err != nil {
				failed = true
				m.onError(ctx, req, start, err)
				return nil
			}
			chunks++
			return nil
		})
		for resp, err := range observed {
			if !yield(resp, err) {
				return
			}
		}
		if !failed {
			m.onSuccess(ctx, req, start, chunks)
		}
	}
}
