package foodhabits

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/foodhabits/foodhabits-go/internal/persist"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Do not enable in production: logs include
// full request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithPersistence injects a custom persistence backend. Tests typically
// pass NewMemPersistence().
func WithPersistence(p Persistence) Option {
	return func(c *Client) error {
		if p == nil {
			return fmt.Errorf("persistence cannot be nil")
		}
		c.disk = p
		return nil
	}
}

// WithDataDir overrides the directory the default file persistence writes
// to. Ignored when WithPersistence is also given.
func WithDataDir(dir string) Option {
	return func(c *Client) error {
		if dir == "" {
			return fmt.Errorf("data dir cannot be empty")
		}
		c.dataDir = dir
		return nil
	}
}

// WithSyncErrorHandler registers fn to run whenever a sync job is given up
// on. The handler runs on an executor worker goroutine and must not block.
func WithSyncErrorHandler(fn func(error)) Option {
	return func(c *Client) error {
		c.onSyncError = fn
		return nil
	}
}

// WithoutExecutor disables background sync entirely. Mutations still apply
// locally and persist; nothing is sent to the server. For offline use and
// for tests that only exercise local state.
func WithoutExecutor() Option {
	return func(c *Client) error {
		c.noExec = true
		return nil
	}
}

// WithExecutor swaps in a custom executor implementation.
func WithExecutor(e executor) Option {
	return func(c *Client) error {
		if e == nil {
			return fmt.Errorf("executor cannot be nil")
		}
		c.exec = e
		return nil
	}
}

// NewMemPersistence returns an in-memory persistence backend.
func NewMemPersistence() Persistence {
	return persist.NewMemStore()
}
