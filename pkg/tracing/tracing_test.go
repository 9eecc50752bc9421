package tracing_test

import (
	"context"
	"matchup/pkg/tracing"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogExporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(tracing.NewLogExporter(zap.New(core))),
	)

	ctx, parent := provider.Tracer("test").Start(context.Background(), "GET /v1/user")
	parent.SetAttributes(attribute.Int("http.status_code", 500))
	parent.SetStatus(codes.Error, "Internal Server Error")
	_, child := provider.Tracer("test").Start(ctx, "query")
	child.End()
	parent.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "span query", entries[0].Message)
	require.Equal(t, parent.SpanContext().SpanID().String(), entries[0].ContextMap()["parent_span_id"])

	fields := entries[1].ContextMap()
	require.Equal(t, "span GET /v1/user", entries[1].Message)
	require.Equal(t, "500", fields["http.status_code"])
	require.Equal(t, "Error", fields["status"])
	require.Equal(t, parent.SpanContext().TraceID().String(), fields["trace_id"])
}

func TestLogExporter_SkipsBelowDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(tracing.NewLogExporter(zap.New(core))),
	)

	_, span := provider.Tracer("test").Start(context.Background(), "ignored")
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	require.Zero(t, logs.Len())
}

func TestNewProvider_Sampling(t *testing.T) {
	never := tracing.NewProvider(tracing.Options{ServiceName: "matchup", SampleRatio: 0}, zap.NewNop())
	_, span := never.Tracer("test").Start(context.Background(), "dropped")
	require.False(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, never.Shutdown(context.Background()))

	always := tracing.NewProvider(tracing.Options{ServiceName: "matchup", SampleRatio: 1}, zap.NewNop())
	_, span = always.Tracer("test").Start(context.Background(), "kept")
	require.True(t, span.SpanContext().IsSampled())
	require.True(t, span.SpanContext().IsValid())
	span.End()
	require.NoError(t, always.Shutdown(context.Background()))
}
