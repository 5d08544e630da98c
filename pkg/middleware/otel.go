package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/TheNexusGroup/simplistic/pkg/server"
)

const defaultTracerName = "simplistic"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "simplistic").
	TracerName string

	// Filter determines which events to trace. Return true to trace the
	// event, false to skip. If nil, all events are traced.
	Filter func(s *server.Session, ev server.Event) bool

	// AttributeExtractor adds custom attributes to each traced event.
	AttributeExtractor func(s *server.Session, ev server.Event) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(s *server.Session, ev server.Event) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(s *server.Session, ev server.Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that traces every dispatched event.
//
// The middleware:
//   - Creates a span per event named "event.<type>"
//   - Tags it with the demo name, session ID, event type, and target
//   - Records errors and sets span status
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) server.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next server.EventHandler) server.EventHandler {
		return func(s *server.Session, ev server.Event) error {
			if config.Filter != nil && !config.Filter(s, ev) {
				return next(s, ev)
			}

			attrs := []attribute.KeyValue{
				attribute.String("demo.name", s.DemoName()),
				attribute.String("session.id", s.ID()),
				attribute.String("event.type", ev.Type),
				attribute.String("event.target", ev.Target),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(s, ev)...)
			}

			_, span := config.tracer.Start(
				context.Background(),
				"event."+ev.Type,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			err := next(s, ev)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
