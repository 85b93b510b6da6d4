package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsTokenChanges(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveToken("first"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var seen []string
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, func(token string) {
			mu.Lock()
			seen = append(seen, token)
			mu.Unlock()
		})
	}()

	last := func() string {
		mu.Lock()
		defer mu.Unlock()
		if len(seen) == 0 {
			return ""
		}
		return seen[len(seen)-1]
	}

	// the watcher registers asynchronously, so keep writing until it reports
	assert.Eventually(t, func() bool {
		_ = s.SaveToken("second")
		return last() == "second"
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, s.ClearAll())
	assert.Eventually(t, func() bool { return last() == "" }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
