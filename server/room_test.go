package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smuggler/protocol"
	"smuggler/transport"
)

func TestAddPlayerRejectsWhenFull(t *testing.T) {
	cfg := DefaultRoomConfig()
	cfg.MaxPlayers = 2
	r, _ := newTestRoom(cfg)

	_, err := r.AddPlayer(1, 1000, 10000, "a", 0, 0)
	require.NoError(t, err)
	_, err = r.AddPlayer(2, 1001, 10001, "b", 0, 0)
	require.NoError(t, err)

	_, err = r.AddPlayer(3, 1002, 10002, "c", 0, 0)
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, 2, r.PlayerCount())
	assert.True(t, r.IsFull())
}

func TestAddPlayerInitialState(t *testing.T) {
	r, _ := newTestRoom(DefaultRoomConfig())
	p, err := r.AddPlayer(5, 1000, 10000, "alice", 3, 777)
	require.NoError(t, err)

	assert.False(t, p.LoadCompleted)
	assert.Equal(t, int64(777), p.LastReceivedTime)
	assert.Equal(t, int32(PlayerMaxHP), p.HP())
	assert.Equal(t, "alice", p.Name)
	assert.LessOrEqual(t, p.X, r.cfg.HalfExtent)
	assert.GreaterOrEqual(t, p.X, -r.cfg.HalfExtent)
}

func TestSpawnAvoidsBlocks(t *testing.T) {
	r, _ := newTestRoom(DefaultRoomConfig())
	require.NotEmpty(t, r.blocks)

	for i := int32(0); i < 200; i++ {
		p, err := r.AddPlayer(0, 1000+i, 0, "p", 0, 0)
		require.NoError(t, err)
		if p.X == 0 && p.Y == 0 {
			continue
		}
		for _, b := range r.blocks {
			assert.Greater(t, distSq(p.X, p.Y, b.X, b.Y), float32(spawnClearance*spawnClearance))
		}
	}
}

func TestSpawnFallsBackToOrigin(t *testing.T) {
	cfg := DefaultRoomConfig()
	cfg.WallCount = 0
	cfg.HalfExtent = 0.1
	r, _ := newTestRoom(cfg)
	r.blocks[1] = newBlock(1, 0.05, 0.05)

	x, y := r.spawnPoint()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestWallLayoutIsReproducible(t *testing.T) {
	a, _ := newTestRoom(DefaultRoomConfig())
	b, _ := newTestRoom(DefaultRoomConfig())
	require.Equal(t, len(a.blocks), len(b.blocks))
	ab, bb := a.Blocks(), b.Blocks()
	for i := range ab {
		assert.Equal(t, ab[i].X, bb[i].X)
		assert.Equal(t, ab[i].Y, bb[i].Y)
	}
	for _, blk := range ab {
		assert.GreaterOrEqual(t, distSq(blk.X, blk.Y, 0, 0), float32(wallOriginClearance*wallOriginClearance))
	}
}

func TestRemovePlayerIsIdempotent(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)

	assert.True(t, r.RemovePlayer(1000))
	assert.False(t, r.RemovePlayer(1000))
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))
}

func TestQueueMoveActionAppliesAndBroadcasts(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)

	require.True(t, r.QueueMoveAction(MoveAction{PlayerSequence: 1000, X: 1.5, Y: -2, Direction: 90, MoveFlag: 1, AimDirection: 45}))
	assert.Equal(t, float32(1.5), p.X)
	assert.Equal(t, float32(-2), p.Y)
	assert.Equal(t, int32(90), p.Direction)
	assert.False(t, r.QueueMoveAction(MoveAction{PlayerSequence: 4242}))

	r.Update(1)
	pkts := rec.to(2)
	require.Len(t, pkts, 1)
	assert.False(t, pkts[0].reliable)
	assert.Equal(t, protocol.ChannelUnreliable, pkts[0].channel)

	moves, err := protocol.DecodeSyncMove(protocol.Body(pkts[0].data))
	require.NoError(t, err)
	assert.Equal(t, []protocol.MoveSync{{Sequence: 1000, X: 1.5, Y: -2, Direction: 90, MoveFlag: 1, AimDirection: 45}}, moves)

	rec.reset()
	r.Update(2)
	assert.Empty(t, rec.packets)
}

func TestMoveBroadcastSplitsAtLimit(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	addLoaded(t, r, 1, 1, 0)
	const movers = 120
	for i := int32(0); i < movers; i++ {
		_, err := r.AddPlayer(0, 1000+i, 0, "m", 0, 0)
		require.NoError(t, err)
		r.QueueMoveAction(MoveAction{PlayerSequence: 1000 + i, X: float32(i), Y: 1})
	}

	r.Update(1)
	pkts := rec.to(1)
	require.GreaterOrEqual(t, len(pkts), 2)

	total := 0
	for _, p := range pkts {
		body := protocol.Body(p.data)
		assert.LessOrEqual(t, len(body), r.cfg.SyncSplitLimit)
		moves, err := protocol.DecodeSyncMove(body)
		require.NoError(t, err)
		total += len(moves)
	}
	assert.Equal(t, movers, total)
}

func TestBroadcastSkipsUnreachable(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	a := addLoaded(t, r, 1000, 1, 0)
	notLoaded, err := r.AddPlayer(2, 1001, 0, "n", 0, 0)
	require.NoError(t, err)
	gone := addLoaded(t, r, 1002, 3, 0)
	gone.Disconnected = true
	addLoaded(t, r, 1003, 0, 0)

	r.BroadcastChat(a, "hi")
	assert.Len(t, rec.to(1), 1)
	assert.Empty(t, rec.to(notLoaded.Peer))
	assert.Empty(t, rec.to(3))
	assert.Len(t, rec.packets, 1)
}

func TestSendFailureIsCounted(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	rec.fail = true
	a := addLoaded(t, r, 1000, 1, 0)
	r.BroadcastChangeState(a)
	assert.Equal(t, int64(1), r.metrics.SendFailures)
}

func TestTimeoutProgression(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	obs := addLoaded(t, r, 1001, 2, 0)
	obs.LastReceivedTime = 10001

	assert.Empty(t, r.Update(10001))
	assert.True(t, p.Disconnected)
	assert.Equal(t, int64(10001), p.DisconnectTime)
	assert.False(t, obs.Disconnected)
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))
	assert.Empty(t, rec.to(1))

	rec.reset()
	r.Update(10002)
	assert.Empty(t, rec.to(2), "remove is broadcast once")

	assert.Empty(t, r.Update(10001+30000))
	expired := r.Update(10001 + 30001)
	assert.Equal(t, []int32{1000}, expired)
	_, ok := r.Player(1000)
	assert.False(t, ok)
}

func TestDisconnectBoundary(t *testing.T) {
	r, _ := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	r.Update(9999)
	assert.False(t, p.Disconnected)
	r.Update(10000)
	assert.True(t, p.Disconnected)
}

func TestDeathAndRespawn(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)

	p.SetHP(0)
	p.State = StateDead
	p.DeathTime = 1000

	r.Update(5999)
	assert.Empty(t, rec.to(2))

	r.Update(6000)
	assert.True(t, p.RemoveSent)
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))

	rec.reset()
	r.Update(6500)
	assert.Empty(t, rec.to(2))

	r.Update(7000)
	assert.Equal(t, StateNormal, p.State)
	assert.False(t, p.RemoveSent)
	assert.Equal(t, int32(PlayerMaxHP), p.HP())
	assert.Equal(t, []protocol.EProtocol{
		protocol.EProtocolSC_ChangeStateNotification,
		protocol.EProtocolSC_AddNotification,
	}, rec.ids(2))

	state, err := protocol.DecodeChangeState(protocol.Body(rec.to(2)[0].data))
	require.NoError(t, err)
	assert.Equal(t, protocol.EObjectStateNormal, state.State)
	assert.Equal(t, int32(100), state.HP)
}

func TestRespawnWhenTickSkipsRemoveWindow(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)
	p.State = StateDead
	p.DeathTime = 0

	r.Update(6000)
	assert.Equal(t, []protocol.EProtocol{
		protocol.EProtocolSC_RemoveNotification,
		protocol.EProtocolSC_ChangeStateNotification,
		protocol.EProtocolSC_AddNotification,
	}, rec.ids(2))
}

func TestDeadPlayerTimingOutIsRemovedOnce(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	obs := addLoaded(t, r, 1001, 2, 0)
	p.SetHP(0)
	p.State = StateDead
	p.DeathTime = 5000

	// 超时与死亡移除落在同一帧
	obs.LastReceivedTime = 10000
	r.Update(10000)
	assert.True(t, p.Disconnected)
	assert.True(t, p.RemoveSent)
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))

	// 断线玩家不会复活
	rec.reset()
	obs.LastReceivedTime = 11000
	r.Update(11000)
	assert.Empty(t, rec.to(2))
	assert.True(t, p.IsDead())

	obs.LastReceivedTime = 40001
	assert.Equal(t, []int32{1000}, r.Update(40001))
	assert.Empty(t, rec.to(2))
	_, ok := r.Player(1000)
	assert.False(t, ok)
}

func TestRemoveAfterDeathRemoveIsSilent(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)
	p.State = StateDead
	p.DeathTime = 0

	r.Update(5000)
	require.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))

	rec.reset()
	assert.True(t, r.RemovePlayer(1000))
	assert.Empty(t, rec.to(2))
}

func TestExpiredPlayerNotifiedBeforePurge(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	p := addLoaded(t, r, 1000, 1, 0)
	obs := addLoaded(t, r, 1001, 2, 0)
	// 断线标记由外部设置，尚未广播过移除
	p.Disconnected = true
	p.DisconnectTime = 0

	obs.LastReceivedTime = 30001
	assert.Equal(t, []int32{1000}, r.Update(30001))
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))
}

func TestMoveOfRemovedPlayerIsDropped(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	addLoaded(t, r, 1000, 1, 0)
	addLoaded(t, r, 1001, 2, 0)

	require.True(t, r.QueueMoveAction(MoveAction{PlayerSequence: 1000, X: 3, Y: 3}))
	require.True(t, r.RemovePlayer(1000))
	r.Update(1)
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, rec.ids(2))
}

func TestSendExistingPlayersAndBlocks(t *testing.T) {
	r, rec := newTestRoom(DefaultRoomConfig())
	addLoaded(t, r, 1000, 1, 0)
	_, err := r.AddPlayer(9, 1001, 0, "loading", 0, 0)
	require.NoError(t, err)
	newcomer := addLoaded(t, r, 1002, 2, 0)

	r.SendExistingPlayers(newcomer)
	r.SendBlockLayout(newcomer)
	pkts := rec.to(2)
	require.Len(t, pkts, 2)

	existing, err := protocol.DecodeAddNotification(protocol.Body(pkts[0].data))
	require.NoError(t, err)
	require.Len(t, existing, 1)
	assert.Equal(t, int32(1000), existing[0].Sequence)

	blocks, err := protocol.DecodeAddNotification(protocol.Body(pkts[1].data))
	require.NoError(t, err)
	assert.Len(t, blocks, len(r.blocks))
	for _, b := range blocks {
		assert.Equal(t, protocol.EObjectTypeBlock, b.ObjectType)
	}
}

func TestNPCSpawnAndUpdate(t *testing.T) {
	r, _ := newTestRoom(DefaultRoomConfig())
	n := r.spawnNPC(500000, 1, 1)
	r.Update(100)
	assert.Equal(t, NPCIdle, n.FSM)
	assert.Equal(t, float32(1), n.X)
}

var _ Sender = transport.Transport(nil)
