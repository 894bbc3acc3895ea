package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds blocking reads in unit tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context that ends before the test deadline, so a stuck
// read fails the test instead of hanging it.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
