package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/sse"
)

func newTestServer(t *testing.T, apiKey string, ready error) (*httptest.Server, *sse.Hub) {
	t.Helper()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(Options{
		APIKey:         apiKey,
		AllowedOrigins: []string{"*"},
		Version:        "1.2.3",
	}, &stubGarden{}, hub, readyFunc(func(context.Context) error { return ready }))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, hub
}

func TestServer_Routes(t *testing.T) {
	ts, _ := newTestServer(t, "", nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"readyz", http.MethodGet, "/readyz", http.StatusOK},
		{"version", http.MethodGet, "/version", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"state", http.MethodGet, "/api/v1/state", http.StatusOK},
		{"tap", http.MethodPost, "/api/v1/tap", http.StatusOK},
		{"tap wrong method", http.MethodGet, "/api/v1/tap", http.StatusMethodNotAllowed},
		{"unknown", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestServer_SecurityHeadersAndCORS(t *testing.T) {
	ts, _ := newTestServer(t, "", nil)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/state", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_TapErrorMapsToConflict(t *testing.T) {
	ts, _ := newTestServer(t, "", nil)

	for _, want := range []int{http.StatusOK, http.StatusConflict} {
		resp, err := http.Post(ts.URL+"/api/v1/tap", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode)
	}
}

func TestServer_RequiresKeyWhenConfigured(t *testing.T) {
	ts, _ := newTestServer(t, "control", nil)

	resp, err := http.Get(ts.URL + "/api/v1/state")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/state", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, "control")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Frame domain.DisplayFrame `json:"frame"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.PhaseEmpty, body.Frame.Phase)

	// health stays public
	resp, err = http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ReadyzReportsNotReady(t *testing.T) {
	ts, _ := newTestServer(t, "", errors.New("no token"))

	resp, err := http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_WebSocketStreamsFrames(t *testing.T) {
	ts, hub := newTestServer(t, "", nil)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/ws?types=" + sse.EventTypeFrame
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("combo.tap", map[string]int{"clicks": 1})
	hub.PublishFrame(domain.DisplayFrame{Phase: domain.PhaseGrowing, RemainingText: "59m 59s"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt struct {
		Type    string              `json:"type"`
		Payload domain.DisplayFrame `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&evt))

	// the filtered tap event never arrives
	assert.Equal(t, sse.EventTypeFrame, evt.Type)
	assert.Equal(t, "59m 59s", evt.Payload.RemainingText)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestServer_WebSocketRejectsForeignOrigin(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(Options{AllowedOrigins: []string{"http://localhost:5173"}}, &stubGarden{}, hub,
		readyFunc(func(context.Context) error { return nil }))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/api/v1/ws", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://a.test"})

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://a.test", true},
		{"http://b.test", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, check(req), tt.origin)
	}
}
