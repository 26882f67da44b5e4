package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx), "expected the stored logger back")

	// A context without a logger falls back to the default.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Empty context falls back to the provided default.
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))

	// Context logger wins over the provided default.
	ctxLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, FromContextOrDefault(ctx, def))

	// Nil default falls back to the global default.
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
