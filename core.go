package probe

import (
	"context"
	"iter"
)

// Generator yields a sequence of values until completion or the first error.
type Generator[T, E any] = iter.Seq2[T, E]

// ProviderFactory builds a ModelProvider from a loaded configuration.
// It is invoked only after the configuration has been validated.
type ProviderFactory func(context.Context, *Config) (ModelProvider, error)
