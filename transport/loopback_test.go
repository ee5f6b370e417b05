package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopbackEvents(t *testing.T) {
	l := NewLoopback()
	t.Cleanup(func() { _ = l.Close() })

	peer := l.Connect()
	l.Deliver(peer, 0, []byte{1, 2, 3})
	l.Disconnect(peer)

	var types []EventType
	for {
		ev, ok := l.Poll(0)
		if !ok {
			break
		}
		assert.Equal(t, peer, ev.Peer)
		types = append(types, ev.Type)
	}
	assert.Equal(t, []EventType{EventConnect, EventReceive, EventDisconnect}, types)
}

func TestLoopbackSend(t *testing.T) {
	l := NewLoopback()
	peer := l.Connect()

	require.NoError(t, l.Send(peer, 1, []byte{9}, false))
	assert.ErrorIs(t, l.Send(peer+1, 0, []byte{9}, true), ErrPeerNotFound)

	sent := l.Sent(peer)
	require.Len(t, sent, 1)
	assert.Equal(t, Packet{Channel: 1, Reliable: false, Data: []byte{9}}, sent[0])
	assert.Empty(t, l.Sent(peer))

	require.NoError(t, l.Close())
	assert.ErrorIs(t, l.Send(peer, 0, []byte{1}, true), ErrTransportClosed)
	_, ok := l.Poll(10 * time.Millisecond)
	assert.False(t, ok)
}
