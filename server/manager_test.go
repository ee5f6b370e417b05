package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smuggler/protocol"
	"smuggler/transport"
)

func newTestManager(cfg RoomConfig) (*RoomManager, *recorder) {
	rec := &recorder{}
	return NewRoomManager(cfg, rec, &ServerMetrics{}), rec
}

func assertRoomCode(t *testing.T, code string) {
	t.Helper()
	require.Len(t, code, RoomCodeLength)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(RoomCodeCharset, c), "unexpected %q in %s", c, code)
	}
}

func TestNewRoomCodeCharset(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewRoomCode()
		require.NoError(t, err)
		assertRoomCode(t, code)
	}
}

func TestPlacePlayerSendsEnterRoom(t *testing.T) {
	m, rec := newTestManager(DefaultRoomConfig())
	room, p, err := m.PlacePlayer(7, 1000, 10000, "alice", 2, 0)
	require.NoError(t, err)
	assertRoomCode(t, room.Code)
	assert.Same(t, room, m.Current())

	pkts := rec.to(7)
	require.Len(t, pkts, 1)
	assert.True(t, pkts[0].reliable)
	enter, err := protocol.DecodeEnterRoom(protocol.Body(pkts[0].data))
	require.NoError(t, err)
	assert.Equal(t, protocol.EnterRoom{RoomCode: room.Code, PlayerSequence: 1000, X: p.X, Y: p.Y}, enter)

	got, ok := m.PlayerRoom(7)
	assert.True(t, ok)
	assert.Same(t, room, got)
}

func TestRoomRollover(t *testing.T) {
	cfg := DefaultRoomConfig()
	m, _ := newTestManager(cfg)

	for i := 0; i < cfg.MaxPlayers; i++ {
		_, _, err := m.PlacePlayer(transport.PeerID(i+1), int32(1000+i), 0, "p", 0, 0)
		require.NoError(t, err)
	}
	first := m.Current()
	require.Len(t, m.Rooms(), 1)
	require.True(t, first.IsFull())

	room, _, err := m.PlacePlayer(transport.PeerID(cfg.MaxPlayers+1), int32(1000+cfg.MaxPlayers), 0, "late", 0, 0)
	require.NoError(t, err)
	assert.Len(t, m.Rooms(), 2)
	assert.NotSame(t, first, room)
	assert.Same(t, room, m.Current())
	assert.NotEqual(t, first.Code, room.Code)
	assertRoomCode(t, room.Code)
	assert.Equal(t, 1, room.PlayerCount())
}

func TestRoomCodeCollisionRetries(t *testing.T) {
	m, _ := newTestManager(DefaultRoomConfig())
	codes := []string{"AAAA", "AAAA", "BBBB"}
	m.newCode = func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}
	r1, err := m.createRoom()
	require.NoError(t, err)
	r2, err := m.createRoom()
	require.NoError(t, err)
	assert.Equal(t, "AAAA", r1.Code)
	assert.Equal(t, "BBBB", r2.Code)
}

func TestEmptyRoomRemoved(t *testing.T) {
	m, _ := newTestManager(DefaultRoomConfig())
	_, _, err := m.PlacePlayer(1, 1000, 0, "a", 0, 0)
	require.NoError(t, err)

	assert.True(t, m.RemovePlayer(1))
	assert.False(t, m.RemovePlayer(1))
	m.Update(1)
	assert.Empty(t, m.Rooms())
	assert.Nil(t, m.Current())
	assert.Equal(t, int64(1), m.metrics.RoomsRemoved)

	room, _, err := m.PlacePlayer(2, 1001, 0, "b", 0, 2)
	require.NoError(t, err)
	assert.Same(t, room, m.Current())
	assert.Equal(t, int64(2), m.metrics.RoomsCreated)
}

func TestExpiredPlayersCollected(t *testing.T) {
	m, _ := newTestManager(DefaultRoomConfig())
	_, _, err := m.PlacePlayer(1, 1000, 0, "a", 0, 0)
	require.NoError(t, err)
	_, _, err = m.PlacePlayer(2, 1001, 0, "b", 0, 0)
	require.NoError(t, err)
	_, keep, _ := m.Locate(1001)

	keep.LastReceivedTime = 100000
	m.Update(10000)
	assert.Empty(t, m.TakeExpiredPlayers())

	m.Update(40001)
	assert.Equal(t, []int32{1000}, m.TakeExpiredPlayers())
	assert.Empty(t, m.TakeExpiredPlayers())

	_, ok := m.PlayerRoom(1)
	assert.False(t, ok)
	_, _, ok = m.Locate(1000)
	assert.False(t, ok)
	assert.Len(t, m.Rooms(), 1)
}

func TestDetachSequence(t *testing.T) {
	m, _ := newTestManager(DefaultRoomConfig())
	room, _, err := m.PlacePlayer(1, 1000, 0, "a", 0, 0)
	require.NoError(t, err)

	assert.True(t, m.DetachSequence(1000))
	assert.False(t, m.DetachSequence(1000))
	assert.Equal(t, 0, room.PlayerCount())
	_, ok := m.PlayerRoom(1)
	assert.False(t, ok)
}

func TestSummaries(t *testing.T) {
	m, _ := newTestManager(DefaultRoomConfig())
	_, p, err := m.PlacePlayer(1, 1000, 0, "a", 0, 0)
	require.NoError(t, err)
	p.LoadCompleted = true
	_, _, err = m.PlacePlayer(2, 1001, 0, "b", 0, 0)
	require.NoError(t, err)

	s := m.Summaries()
	require.Len(t, s, 1)
	assert.Equal(t, 2, s[0].Players)
	assert.Equal(t, 1, s[0].Loaded)
	assert.True(t, s[0].Current)
	assert.Positive(t, s[0].Blocks)
}
