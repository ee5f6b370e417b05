package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smuggler/protocol"
	"smuggler/transport"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *ServerMetrics) {
	t.Helper()
	m := &ServerMetrics{}
	d, err := NewDispatcher(m)
	require.NoError(t, err)
	return d, m
}

func TestDispatchRoutesToHandler(t *testing.T) {
	d, m := newTestDispatcher(t)
	var got protocol.Heartbeat
	var from transport.PeerID
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, func(p transport.PeerID, hb protocol.Heartbeat) bool {
		from, got = p, hb
		return true
	})

	ok, err := d.Dispatch(9, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: 10007}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 9, from)
	assert.Equal(t, int32(10007), got.SessionKey)
	assert.Equal(t, int64(1), m.PacketsHandled)
}

func TestDispatchShortPacket(t *testing.T) {
	d, m := newTestDispatcher(t)
	ok, err := d.Dispatch(1, []byte{1, 0})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedPacket)
	assert.Equal(t, int64(1), m.Malformed)
}

func TestDispatchUnknownProtocol(t *testing.T) {
	d, m := newTestDispatcher(t)
	ok, err := d.Dispatch(1, protocol.Frame(protocol.EProtocol(99), nil))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownProtocol)
	assert.Equal(t, int64(1), m.UnknownProtocol)
}

func TestDispatchHandlerRejects(t *testing.T) {
	d, m := newTestDispatcher(t)
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, func(transport.PeerID, protocol.Heartbeat) bool {
		return false
	})
	ok, err := d.Dispatch(1, protocol.EncodeHeartbeat(protocol.Heartbeat{}))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), m.PacketsRejected)
}

func TestDispatchDecodeErrorAndPanic(t *testing.T) {
	d, m := newTestDispatcher(t)
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, func([]byte) (protocol.Heartbeat, error) {
		return protocol.Heartbeat{}, errors.New("bad")
	}, func(transport.PeerID, protocol.Heartbeat) bool { return true })
	RegisterHandler(d, protocol.EProtocolCS_MoveNotification, protocol.DecodeMoveNotification,
		func(transport.PeerID, protocol.MoveNotification) bool { return true })

	_, err := d.Dispatch(1, protocol.Frame(protocol.EProtocolCS_Heartbeat, []byte{0, 0, 0, 0}))
	assert.ErrorIs(t, err, ErrMalformedPacket)

	// 根偏移越界，FlatBuffers 访问器会 panic
	ok, err := d.Dispatch(1, protocol.Frame(protocol.EProtocolCS_MoveNotification, []byte{0xff, 0xff, 0xff, 0x7f}))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedPacket)
	assert.Equal(t, int64(2), m.Malformed)
}

func TestRegisterHandlerOverwrites(t *testing.T) {
	d, _ := newTestDispatcher(t)
	calls := ""
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, func(transport.PeerID, protocol.Heartbeat) bool {
		calls += "a"
		return true
	})
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, func(transport.PeerID, protocol.Heartbeat) bool {
		calls += "b"
		return true
	}, Logged())
	_, err := d.Dispatch(1, protocol.EncodeHeartbeat(protocol.Heartbeat{}))
	require.NoError(t, err)
	assert.Equal(t, "b", calls)
}

func TestIsImmediate(t *testing.T) {
	d, _ := newTestDispatcher(t)
	RegisterHandler(d, protocol.EProtocolCS_Ping, protocol.DecodePing, func(transport.PeerID, protocol.Ping) bool { return true }, Immediate())
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, func(transport.PeerID, protocol.Heartbeat) bool { return true })

	assert.True(t, d.IsImmediate(protocol.EncodePing(protocol.Ping{ClientTick: 1})))
	assert.False(t, d.IsImmediate(protocol.EncodeHeartbeat(protocol.Heartbeat{})))
	assert.False(t, d.IsImmediate([]byte{13}))
	assert.True(t, d.HasHandler(protocol.EProtocolCS_Ping))
}
