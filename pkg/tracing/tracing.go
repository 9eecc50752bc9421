// Package tracing configures the OpenTelemetry tracer provider. Finished
// spans are written to the application log at debug level.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Options configures NewProvider.
type Options struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string
	// SampleRatio is the fraction of root spans kept, between 0 and 1.
	SampleRatio float64
}

// NewProvider returns a tracer provider sampling root spans by SampleRatio
// and exporting them in batches to log. Child spans follow their parent.
func NewProvider(opts Options, log *zap.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", opts.ServiceName))),
		sdktrace.WithBatcher(NewLogExporter(log)),
	)
}

// LogExporter is a sdktrace.SpanExporter writing one debug entry per span.
type LogExporter struct {
	log *zap.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

func NewLogExporter(log *zap.Logger) *LogExporter {
	return &LogExporter{log: log}
}

// ExportSpans logs spans. It never fails.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	if !e.log.Core().Enabled(zap.DebugLevel) {
		return nil
	}

	for _, span := range spans {
		fields := []zap.Field{
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
			zap.String("kind", span.SpanKind().String()),
			zap.Duration("duration", span.EndTime().Sub(span.StartTime())),
			zap.String("status", span.Status().Code.String()),
		}
		if parent := span.Parent(); parent.IsValid() {
			fields = append(fields, zap.String("parent_span_id", parent.SpanID().String()))
		}
		for _, kv := range span.Attributes() {
			fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
		}

		e.log.Debug("span "+span.Name(), fields...)
	}

	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
