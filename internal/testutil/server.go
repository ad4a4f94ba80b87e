package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"devkwon.dev/internal/config"
	"devkwon.dev/internal/content"
	"devkwon.dev/internal/handlers"
)

// ServerOption customises the configuration used by NewServer.
type ServerOption func(*config.Config)

// WithClock fixes the clock the page reads the footer year from.
func WithClock(now func() time.Time) ServerOption {
	return func(cfg *config.Config) {
		cfg.Clock = now
	}
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewServer constructs an httptest server running the full HTTP stack with the embedded content.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	page, err := content.Default()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	cfg := &config.Config{
		ServerAddr:     ":0",
		RequestTimeout: 5 * time.Second,
		Page:           page,
		Clock:          time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h, err := handlers.SetupRoutes(cfg)
	if err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}
