package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServerIndexListsDemos(t *testing.T) {
	srv := New(nil, BuiltinRegistry())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get index: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, `href="/demos/counter"`) {
		t.Errorf("index missing counter link:\n%s", page)
	}
	if !strings.Contains(page, `href="/demos/todo"`) {
		t.Errorf("index missing todo link:\n%s", page)
	}
}

func TestServerNoCacheHeaders(t *testing.T) {
	srv := New(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get index: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := resp.Header.Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q", got)
	}
	if got := resp.Header.Get("Expires"); got != "0" {
		t.Errorf("Expires = %q", got)
	}
}

func TestServerDemoPage(t *testing.T) {
	srv := New(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/demos/counter")
	if err != nil {
		t.Fatalf("get demo: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, `id="app"`) {
		t.Errorf("demo page missing app mount point")
	}
	if !strings.Contains(page, "/ws/counter") {
		t.Errorf("demo page missing websocket path")
	}
	if !strings.Contains(page, "Count: 0") {
		t.Errorf("demo page missing initial counter render:\n%s", page)
	}
}

func TestServerUnknownDemoIs404(t *testing.T) {
	srv := New(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/demos/nope")
	if err != nil {
		t.Fatalf("get demo: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServerHealthz(t *testing.T) {
	srv := New(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := New(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestChainOrdering(t *testing.T) {
	srv := New(nil, nil)
	var order []string
	mw := func(name string) Middleware {
		return func(next EventHandler) EventHandler {
			return func(s *Session, ev Event) error {
				order = append(order, name)
				return next(s, ev)
			}
		}
	}
	srv.Use(mw("outer"), mw("inner"))

	// A session with a nil connection is fine for dispatching directly.
	inst := NewInstance()
	fired := false
	inst.OnEvent(inst.Root, "click", func(ev Event) {
		fired = true
	})
	sess := &Session{inst: inst}
	sid := inst.Root.Attr("data-sid")

	if err := srv.chain()(sess, Event{Type: "click", Target: sid}); err != nil {
		t.Fatalf("chain: %v", err)
	}
	if !fired {
		t.Error("handler did not fire")
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v", order)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	if cfg.Address != "localhost:9292" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.ShutdownTimeout <= 0 {
		t.Error("ShutdownTimeout must be positive")
	}

	var nilCfg *ServerConfig
	filled := nilCfg.withDefaults()
	if filled == nil || filled.Address == "" {
		t.Error("withDefaults on nil should produce usable config")
	}
}
