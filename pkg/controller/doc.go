// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - WithCORS: CORS headers for the configured origins and OPTIONS preflight.
//   - WithLogger: request ID, request scoped logger and access log.
//   - WithMetrics: request count and latency per route pattern.
//   - WithTracing: one server span per request.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers to mount under a debug path.
package controller
