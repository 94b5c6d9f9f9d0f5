// Command geminiprobe sends one grounded prompt to the Gemini API and streams
// the answer to standard output. It exits with status 1 on any failure.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kratos/probe"
	"github.com/go-kratos/probe/contrib/google"
	probeotel "github.com/go-kratos/probe/contrib/otel"
	"github.com/go-kratos/probe/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; variables already set take precedence.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Getenv, google.NewFactory())
	stop()
	os.Exit(code)
}

func run(ctx context.Context, out io.Writer, getenv func(string) string, factory probe.ProviderFactory) int {
	logger := log.New(os.Stderr, "geminiprobe: ", log.LstdFlags)
	p := probe.New(factory,
		probe.WithOutput(out),
		probe.WithGetenv(getenv),
		probe.WithLogger(logger),
		probe.WithMiddleware(
			probeotel.Tracing(probeotel.WithSystem("gcp.gemini")),
			middleware.Logging(logger),
		),
	)
	if !p.Run(ctx) {
		return 1
	}
	return 0
}
