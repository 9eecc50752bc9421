// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the matchup service.
package api

import (
	_ "embed"
	"fmt"
	"matchup/internal/api/handler/v1handler"
	"matchup/internal/config"
	"matchup/pkg/controller"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins are the origins allowed to call the API. Empty allows any.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// Tokens verifies bearer tokens of protected routes.
	Tokens v1handler.TokenVerifier
	// Gatherer serves the metrics endpoint.
	Gatherer prometheus.Gatherer
	// Meter records HTTP request metrics.
	Meter metric.Meter
	// Tracer opens request spans. The global tracer is used when nil.
	Tracer trace.Tracer
}

// NewHandler builds the root router:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes and public photo downloads
// - pprof endpoints for profiling
// Every request gets a request ID, an access log line and CORS headers.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer("matchup/api")
	}

	withMetrics, err := controller.WithMetrics(deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		controller.WithLogger,
		controller.WithCORS(opts.CORSOrigins...),
		middleware.Recoverer,
	)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Matchup API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// pprof
	r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	h := v1handler.New(deps.Deps)
	r.Group(func(r chi.Router) {
		r.Use(withMetrics, controller.WithTracing(deps.Tracer))

		r.Mount("/v1", h.Routes(v1handler.NewSecHandler(deps.Tokens)))
		r.Get("/photos/{key}", h.ServePhoto)
	})

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. Request handling is bounded by RequestTimeout, except for photo
// downloads.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	if opts.RequestTimeout > 0 {
		// photo downloads are streamed and only bounded by WriteTimeout,
		// http.TimeoutHandler would buffer the whole file
		root := chi.NewRouter()
		root.Handle("/photos/*", handler)
		root.Handle("/*", http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`))
		handler = root
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
