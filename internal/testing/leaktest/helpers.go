// Package leaktest checks that components started in a test stop their
// goroutines again.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	pollInterval   = 10 * time.Millisecond
	defaultTimeout = time.Second
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to a second for the goroutine count to come back within
// tolerance of the recorded count
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	if leaked, ok := settle(g.before+tolerance, defaultTimeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, g.before+leaked, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most target goroutines remain. It returns how many
// are left above the start of the measurement when it gives up.
func settle(target int, timeout time.Duration) (excess int, ok bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return 0, true
		}
		if time.Now().After(deadline) {
			return n - target, false
		}
		time.Sleep(pollInterval)
	}
}
