package controller_test

import (
	"matchup/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracedRouter(t *testing.T) (*chi.Mux, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	router := chi.NewRouter()
	router.Use(controller.WithTracing(provider.Tracer("test")))

	return router, recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestWithTracing(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		router, recorder := newTracedRouter(t)

		var handlerSpan trace.SpanContext
		router.Get("/v1/messages/{messageID}", func(w http.ResponseWriter, r *http.Request) {
			handlerSpan = trace.SpanFromContext(r.Context()).SpanContext()
			w.WriteHeader(http.StatusInternalServerError)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/messages/42", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		span := spans[0]
		require.Equal(t, "GET /v1/messages/{messageID}", span.Name())
		require.Equal(t, trace.SpanKindServer, span.SpanKind())
		require.Equal(t, codes.Error, span.Status().Code)
		require.True(t, handlerSpan.IsValid())
		require.Equal(t, span.SpanContext().SpanID(), handlerSpan.SpanID())

		status, ok := spanAttr(span, "http.status_code")
		require.True(t, ok)
		require.Equal(t, int64(http.StatusInternalServerError), status.AsInt64())
	})

	t.Run("client error keeps status unset", func(t *testing.T) {
		router, recorder := newTracedRouter(t)
		router.Get("/v1/hobbies/{hobbyID}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/hobbies/3", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		require.Equal(t, "GET /v1/hobbies/{hobbyID}", spans[0].Name())
		require.Equal(t, codes.Unset, spans[0].Status().Code)
	})
}
