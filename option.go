package probe

// MaxOutputTokens sets the maximum number of tokens to generate in the response.
func MaxOutputTokens(n int64) ModelOption {
	return func(o *ModelOptions) {
		o.MaxOutputTokens = n
	}
}

// TopP sets the nucleus sampling parameter.
func TopP(p float64) ModelOption {
	return func(o *ModelOptions) {
		o.TopP = p
	}
}

// TopK sets the number of highest probability tokens considered while sampling.
func TopK(k float64) ModelOption {
	return func(o *ModelOptions) {
		o.TopK = k
	}
}

// Temperature sets the sampling temperature.
func Temperature(t float64) ModelOption {
	return func(o *ModelOptions) {
		o.Temperature = t
	}
}

// NewModelOptions applies opts over the zero options.
func NewModelOptions(opts ...ModelOption) ModelOptions {
	var o ModelOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
