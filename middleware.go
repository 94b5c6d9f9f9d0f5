package probe

import "context"

// Middleware wraps a ModelProvider and returns a new ModelProvider with additional behavior.
// It is applied in a chain (outermost first) using ChainMiddlewares.
type Middleware func(ModelProvider) ModelProvider

// ChainMiddlewares composes middlewares into one, applying them in order.
// The first middleware becomes the outermost wrapper.
func ChainMiddlewares(mws ...Middleware) Middleware {
	return func(next ModelProvider) ModelProvider {
		h := next
		for i := len(mws) - 1; i >= 0; i-- { // apply in reverse to make mws[0] outermost
			h = mws[i](h)
		}
		return h
	}
}

// ProviderFunc is a helper to easily create ModelProvider instances from functions.
// It is especially useful for testing, lightweight adapters, or wrapping logic with middleware.
type ProviderFunc struct {
	Handle       func(context.Context, *ModelRequest, ...ModelOption) (*ModelResponse, error)
	HandleStream func(context.Context, *ModelRequest, ...ModelOption) Generator[*ModelResponse, error]
}

// Generate calls Handle.
func (f *ProviderFunc) Generate(ctx context.Context, req *ModelRequest, opts ...ModelOption) (*ModelResponse, error) {
	return f.Handle(ctx, req, opts...)
}

// NewStreaming calls HandleStream.
func (f *ProviderFunc) NewStreaming(ctx context.Context, req *ModelRequest, opts ...ModelOption) Generator[*ModelResponse, error] {
	return f.HandleStream(ctx, req, opts...)
}
