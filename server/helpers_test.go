package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"smuggler/protocol"
	"smuggler/transport"
)

type sentPacket struct {
	peer     transport.PeerID
	channel  uint8
	reliable bool
	data     []byte
}

// recorder 记录房间发出的包
type recorder struct {
	packets []sentPacket
	fail    bool
}

func (r *recorder) Send(peer transport.PeerID, channel uint8, data []byte, reliable bool) error {
	if r.fail {
		return errors.New("boom")
	}
	r.packets = append(r.packets, sentPacket{peer: peer, channel: channel, reliable: reliable, data: data})
	return nil
}

func (r *recorder) to(peer transport.PeerID) []sentPacket {
	var out []sentPacket
	for _, p := range r.packets {
		if p.peer == peer {
			out = append(out, p)
		}
	}
	return out
}

func (r *recorder) ids(peer transport.PeerID) []protocol.EProtocol {
	var out []protocol.EProtocol
	for _, p := range r.to(peer) {
		out = append(out, protocol.ExtractProtocolID(p.data))
	}
	return out
}

func (r *recorder) reset() { r.packets = nil }

func seqAllocator(start int32) func() int32 {
	next := start
	return func() int32 {
		next++
		return next - 1
	}
}

func newTestRoom(cfg RoomConfig) (*Room, *recorder) {
	rec := &recorder{}
	return NewRoom("TEST", cfg, rec, &ServerMetrics{}, seqAllocator(firstObjectSequence)), rec
}

// addLoaded 加入一个已加载、可接收广播的玩家
func addLoaded(t *testing.T, r *Room, seq int32, peer transport.PeerID, now int64) *Player {
	t.Helper()
	p, err := r.AddPlayer(peer, seq, 10000+seq, "p", 1, now)
	require.NoError(t, err)
	p.LoadCompleted = true
	return p
}
