package middleware

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TheNexusGroup/simplistic/pkg/server"
)

// counterValue finds a counter in the gathered families by name and
// label subset. Returns -1 when no sample matches.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	sample:
		for _, m := range fam.GetMetric() {
			got := make(map[string]string)
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue sample
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return -1
}

func TestPrometheusRecordsSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("test"))

	calls := 0
	handler := mw(func(s *server.Session, ev server.Event) error {
		calls++
		return nil
	})

	sess := &server.Session{}
	if err := handler(sess, server.Event{Type: "click", Target: "s1"}); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	got := counterValue(t, reg, "test_events_total", map[string]string{
		"type":   "click",
		"status": "success",
	})
	if got != 1 {
		t.Errorf("events_total = %v, want 1", got)
	}
}

func TestPrometheusRecordsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("test"))

	wantErr := errors.New("demo: no handler for event")
	handler := mw(func(s *server.Session, ev server.Event) error {
		return wantErr
	})

	sess := &server.Session{}
	if err := handler(sess, server.Event{Type: "click"}); !errors.Is(err, wantErr) {
		t.Fatalf("error not passed through: %v", err)
	}

	if got := counterValue(t, reg, "test_events_total", map[string]string{"status": "error"}); got != 1 {
		t.Errorf("events_total{status=error} = %v, want 1", got)
	}
	if got := counterValue(t, reg, "test_event_errors_total", map[string]string{"error_type": "no_handler"}); got != 1 {
		t.Errorf("event_errors_total{error_type=no_handler} = %v, want 1", got)
	}
}

func TestPrometheusDefaultRegistryIsSingleton(t *testing.T) {
	// Two middlewares on the default registerer must share one metrics
	// instance instead of panicking on duplicate registration.
	_ = Prometheus()
	_ = Prometheus()
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  string
		want string
	}{
		{"demo: no handler for event", "no_handler"},
		{"read timeout exceeded", "timeout"},
		{"websocket: close sent", "websocket"},
		{"something else entirely", "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(errors.New(tt.err)); got != tt.want {
			t.Errorf("categorizeError(%q) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
