package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/recorder"
	"github.com/battlesnakeio/torus/rules"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func createAPIServer() (*Server, *Hub) {
	hub := NewHub(recorder.NewRunInfo(board.Default(), rules.TailVacates, 20))
	return New(":1234", hub), hub
}

func frameAt(turn int64) rules.Frame {
	return rules.Frame{
		Turn:      turn,
		Snake:     []board.Point{{X: 320 + 20*int(turn), Y: 240}},
		Length:    1,
		Direction: board.Right,
		Apple:     board.Point{X: 0, Y: 0},
		Result:    rules.Advanced,
	}
}

func TestStatusBeforeFirstFrame(t *testing.T) {
	s, _ := createAPIServer()

	req, _ := http.NewRequest("GET", "/status", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStatus(t *testing.T) {
	s, hub := createAPIServer()
	require.NoError(t, hub.WriteFrame(frameAt(1)))
	require.NoError(t, hub.WriteFrame(frameAt(2)))

	req, _ := http.NewRequest("GET", "/status", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Run   recorder.RunInfo `json:"run"`
		Frame rules.Frame      `json:"frame"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, hub.Info().ID, resp.Run.ID)
	require.Equal(t, frameAt(2), resp.Frame)
}

func TestStatusCORS(t *testing.T) {
	s, hub := createAPIServer()
	require.NoError(t, hub.WriteFrame(frameAt(1)))

	req, _ := http.NewRequest("GET", "/status", nil)
	req.Header.Set("Origin", "http://board.example.com")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	s, _ := createAPIServer()

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestSocketStreamsFrames(t *testing.T) {
	s, hub := createAPIServer()
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/socket", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	require.NoError(t, hub.WriteFrame(frameAt(1)))
	f := rules.Frame{}
	require.NoError(t, conn.ReadJSON(&f))
	require.Equal(t, frameAt(1), f)

	require.NoError(t, hub.WriteFrame(frameAt(2)))
	f = rules.Frame{}
	require.NoError(t, conn.ReadJSON(&f))
	require.Equal(t, frameAt(2), f)
}

func TestHubSubscribeStartsWithLatest(t *testing.T) {
	_, hub := createAPIServer()
	require.NoError(t, hub.WriteFrame(frameAt(3)))

	frames, unsubscribe := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())
	require.Equal(t, frameAt(3), <-frames)

	unsubscribe()
	unsubscribe()
	require.Equal(t, 0, hub.Subscribers())
	_, open := <-frames
	require.False(t, open)
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	_, hub := createAPIServer()
	frames, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	for i := int64(1); i <= subscriberBuffer+5; i++ {
		require.NoError(t, hub.WriteFrame(frameAt(i)))
	}
	require.Len(t, frames, subscriberBuffer)

	latest, ok := hub.Latest()
	require.True(t, ok)
	require.Equal(t, int64(subscriberBuffer+5), latest.Turn)
}
