package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(1)
}

func TestCheckNoGoroutineLeak_WaitsForExit(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestSettle_ReportsExcess(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	for range 3 {
		go func() { <-done }()
	}

	// A target of zero can never be met while the test itself runs
	excess, ok := settle(0, 3*pollInterval)
	assert.False(t, ok)
	assert.Positive(t, excess)
}
