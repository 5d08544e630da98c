// Package middleware provides event middleware for the demo server.
//
// The server dispatches every client event through a chain of
// server.Middleware before it reaches the registered handler. This
// package supplies two chain links:
//
//   - Prometheus metrics for event counts, durations, and errors
//   - OpenTelemetry tracing with one span per event
//
// Both wrap the event handler and pass the result through unchanged:
//
//	srv := server.New(nil, nil)
//	srv.Use(
//	    middleware.Prometheus(),
//	    middleware.OpenTelemetry(),
//	)
package middleware
