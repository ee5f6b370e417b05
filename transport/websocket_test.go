package transport

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollType(t *testing.T, tr Transport, want EventType) Event {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := tr.Poll(50 * time.Millisecond)
		if ok && ev.Type == want {
			return ev
		}
	}
	t.Fatalf("no %s event", want)
	return Event{}
}

func TestWebSocketRoundTrip(t *testing.T) {
	tr := NewWebSocket(WebSocketConfig{})
	srv := httptest.NewServer(tr)
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = tr.Close() })

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()

	conn := pollType(t, tr, EventConnect)

	require.NoError(t, c.WriteMessage(websocket.BinaryMessage, []byte{13, 0, 0, 0}))
	recv := pollType(t, tr, EventReceive)
	assert.Equal(t, conn.Peer, recv.Peer)
	assert.Equal(t, []byte{13, 0, 0, 0}, recv.Data)

	require.NoError(t, tr.Send(conn.Peer, 1, []byte{14, 0, 0, 0}, false))
	_ = c.SetReadDeadline(time.Now().Add(3 * time.Second))
	kind, msg, err := c.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)
	assert.Equal(t, []byte{14, 0, 0, 0}, msg)

	_ = c.Close()
	disc := pollType(t, tr, EventDisconnect)
	assert.Equal(t, conn.Peer, disc.Peer)
	assert.ErrorIs(t, tr.Send(conn.Peer, 0, []byte{1}, true), ErrPeerNotFound)
}

func TestWebSocketMaxClients(t *testing.T) {
	tr := NewWebSocket(WebSocketConfig{MaxClients: 1})
	srv := httptest.NewServer(tr)
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = tr.Close() })

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c1, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c1.Close()
	pollType(t, tr, EventConnect)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 503, resp.StatusCode)
}
