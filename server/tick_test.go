package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smuggler/protocol"
	"smuggler/transport"
)

func testConfig() Config {
	return Config{
		Server:  NetConfig{Transport: "quic", Addr: ":0"},
		Loop:    LoopConfig{TickRate: 30, PollTimeout: time.Millisecond},
		Room:    DefaultRoomConfig(),
		Session: SessionConfig{FirstPlayerSequence: 1000, FirstSessionKey: 10000},
	}
}

type harness struct {
	t   *testing.T
	lb  *transport.Loopback
	srv *Server
	now int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, lb: transport.NewLoopback()}
	srv, err := NewServer(testConfig(), h.lb, nil, WithClock(func() int64 { return h.now }))
	require.NoError(t, err)
	h.srv = srv
	t.Cleanup(func() { _ = h.lb.Close() })
	return h
}

// step 取完所有待处理事件后跑一帧
func (h *harness) step() {
	for h.srv.pollOnce(0) {
	}
	h.srv.Tick()
}

func ids(pkts []transport.Packet) []protocol.EProtocol {
	out := make([]protocol.EProtocol, 0, len(pkts))
	for _, p := range pkts {
		out = append(out, protocol.ExtractProtocolID(p.Data))
	}
	return out
}

type client struct {
	peer transport.PeerID
	seq  int32
	key  int32
}

// join 认证并完成加载
func (h *harness) join(device, name string) client {
	h.t.Helper()
	peer := h.lb.Connect()
	h.lb.Deliver(peer, 0, protocol.EncodeAuthRequest(protocol.AuthRequest{DeviceKey: device, UserName: name, AppearanceID: 1}))
	h.step()

	pkts := h.lb.Sent(peer)
	require.Equal(h.t, []protocol.EProtocol{protocol.EProtocolLC_AuthResponse, protocol.EProtocolSC_EnterRoom}, ids(pkts))
	auth, err := protocol.DecodeAuthResponse(protocol.Body(pkts[0].Data))
	require.NoError(h.t, err)

	h.lb.Deliver(peer, 0, protocol.EncodeLoadCompleteRequest(protocol.LoadComplete{SessionKey: auth.SessionKey}))
	h.step()
	h.lb.Sent(peer)
	return client{peer: peer, seq: auth.PlayerSequence, key: auth.SessionKey}
}

func (h *harness) player(seq int32) *Player {
	h.t.Helper()
	_, p, ok := h.srv.Rooms().Locate(seq)
	require.True(h.t, ok)
	return p
}

func TestAuthAndLoadComplete(t *testing.T) {
	h := newHarness(t)
	peer := h.lb.Connect()
	h.lb.Deliver(peer, 0, protocol.EncodeAuthRequest(protocol.AuthRequest{DeviceKey: "dev-a", UserName: "alice"}))
	h.step()

	pkts := h.lb.Sent(peer)
	require.Len(t, pkts, 2)
	auth, err := protocol.DecodeAuthResponse(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.Equal(t, protocol.AuthResponse{SessionKey: 10000, PlayerSequence: 1000}, auth)
	assert.True(t, pkts[0].Reliable)

	enter, err := protocol.DecodeEnterRoom(protocol.Body(pkts[1].Data))
	require.NoError(t, err)
	assert.Equal(t, h.srv.Rooms().Current().Code, enter.RoomCode)
	assert.Equal(t, "alice", h.srv.Sessions().UserName(1000))

	h.lb.Deliver(peer, 0, protocol.EncodeLoadCompleteRequest(protocol.LoadComplete{SessionKey: auth.SessionKey}))
	h.step()
	pkts = h.lb.Sent(peer)
	require.Equal(t, []protocol.EProtocol{
		protocol.EProtocolSC_LoadCompleteResponse,
		protocol.EProtocolSC_AddNotification,
		protocol.EProtocolSC_AddNotification,
	}, ids(pkts))

	self, err := protocol.DecodeAddNotification(protocol.Body(pkts[2].Data))
	require.NoError(t, err)
	require.Len(t, self, 1)
	assert.Equal(t, int32(1000), self[0].Sequence)
	assert.Equal(t, enter.X, self[0].X)
	assert.Equal(t, enter.Y, self[0].Y)
	assert.True(t, h.player(1000).LoadCompleted)
}

func TestMoveIsRelayedNextTick(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_AddNotification}, ids(h.lb.Sent(a.peer)))
	h.lb.Sent(b.peer)

	h.lb.Deliver(a.peer, 1, protocol.EncodeMoveNotification(protocol.MoveNotification{
		SessionKey: a.key, X: 1.5, Y: -2, Direction: 90, MoveFlag: 1, AimDirection: 45,
	}))
	h.step()

	pkts := h.lb.Sent(b.peer)
	require.Len(t, pkts, 1)
	assert.False(t, pkts[0].Reliable)
	moves, err := protocol.DecodeSyncMove(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.Equal(t, []protocol.MoveSync{{Sequence: a.seq, X: 1.5, Y: -2, Direction: 90, MoveFlag: 1, AimDirection: 45}}, moves)
}

func TestPingUsesFastPath(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	h.lb.Sent(a.peer)
	flushes := h.lb.Flushes()

	h.lb.Deliver(a.peer, 1, protocol.EncodePing(protocol.Ping{ClientTick: 1234}))
	require.True(t, h.srv.pollOnce(0))

	pkts := h.lb.Sent(a.peer)
	require.Len(t, pkts, 1)
	assert.Equal(t, protocol.ChannelUnreliable, pkts[0].Channel)
	pong, err := protocol.DecodePong(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), pong.ClientTick)
	assert.Positive(t, pong.ServerTick)

	assert.Empty(t, h.srv.swapInbound())
	assert.Greater(t, h.lb.Flushes(), flushes)
	assert.Equal(t, int64(1), h.srv.Metrics().Pings)
}

func TestInvalidSessionRejected(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	before := h.srv.Metrics().PacketsRejected

	h.lb.Deliver(a.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: a.key + 1}))
	h.lb.Deliver(h.lb.Connect(), 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: a.key}))
	h.step()
	assert.Equal(t, before+2, h.srv.Metrics().PacketsRejected)
}

func TestMalformedPacketDoesNotStopTick(t *testing.T) {
	h := newHarness(t)
	peer := h.lb.Connect()
	h.lb.Deliver(peer, 0, []byte{1, 2})
	h.lb.Deliver(peer, 0, protocol.Frame(protocol.EProtocol(77), nil))
	h.step()
	assert.Equal(t, int64(1), h.srv.Metrics().Malformed)
	assert.Equal(t, int64(1), h.srv.Metrics().UnknownProtocol)
	assert.Equal(t, int64(1), h.srv.Snapshot().Tick)
}

func TestAttackAppliesDamage(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	h.player(a.seq).SetPosition(0, 0)
	target := h.player(b.seq)
	target.SetPosition(0, 10)
	h.lb.Sent(a.peer)
	h.lb.Sent(b.peer)

	h.lb.Deliver(a.peer, 0, protocol.EncodeAttackRequest(protocol.AttackRequest{SessionKey: a.key, AttackID: 3, X: 0, Y: 0, AimDirection: 0}))
	h.step()

	pkts := h.lb.Sent(b.peer)
	require.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_SyncAttack}, ids(pkts))
	res, err := protocol.DecodeSyncAttack(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.True(t, res.IsHit)
	assert.Equal(t, b.seq, res.TargetSequence)
	assert.Equal(t, int32(10), res.Damage)
	assert.Equal(t, int32(90), res.TargetCurrentHP)
	assert.Equal(t, int32(90), target.HP())
}

func TestKillBroadcastsStateChange(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	h.player(a.seq).SetPosition(0, 0)
	target := h.player(b.seq)
	target.SetPosition(0, 10)
	target.SetHP(10)
	h.lb.Sent(a.peer)

	h.lb.Deliver(a.peer, 0, protocol.EncodeAttackRequest(protocol.AttackRequest{SessionKey: a.key, AttackID: 1}))
	h.step()
	assert.Equal(t, []protocol.EProtocol{
		protocol.EProtocolSC_SyncAttack,
		protocol.EProtocolSC_ChangeStateNotification,
	}, ids(h.lb.Sent(a.peer)))
	assert.True(t, target.IsDead())

	// 死亡玩家的移动与攻击被拒绝
	before := h.srv.Metrics().PacketsRejected
	h.lb.Deliver(b.peer, 1, protocol.EncodeMoveNotification(protocol.MoveNotification{SessionKey: b.key, X: 5}))
	h.lb.Deliver(b.peer, 0, protocol.EncodeAttackRequest(protocol.AttackRequest{SessionKey: b.key}))
	h.step()
	assert.Equal(t, before+2, h.srv.Metrics().PacketsRejected)

	h.now = 6000
	h.step()
	assert.False(t, target.IsDead())
	assert.Equal(t, int32(PlayerMaxHP), target.HP())
}

func TestChatIsBroadcast(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	h.lb.Sent(b.peer)

	h.lb.Deliver(a.peer, 0, protocol.EncodeChatRequest(protocol.ChatRequest{SessionKey: a.key, Message: "hello"}))
	h.step()

	pkts := h.lb.Sent(b.peer)
	require.Len(t, pkts, 1)
	chat, err := protocol.DecodeChatNotification(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.Equal(t, a.seq, chat.Sequence)
	assert.Equal(t, "alice", chat.UserName)
	assert.Equal(t, "hello", chat.Message)
}

func TestDisconnectRemovesPlayer(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	h.lb.Sent(b.peer)

	h.lb.Disconnect(a.peer)
	h.step()

	pkts := h.lb.Sent(b.peer)
	require.Len(t, pkts, 1)
	seqs, err := protocol.DecodeRemoveNotification(protocol.Body(pkts[0].Data))
	require.NoError(t, err)
	assert.Equal(t, []int32{a.seq}, seqs)

	_, ok := h.srv.Sessions().PlayerSequence(a.peer)
	assert.False(t, ok)
	_, _, ok = h.srv.Rooms().Locate(a.seq)
	assert.False(t, ok)
}

func TestIdleTimeoutExpiresSession(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")

	h.now = 10000
	h.step()
	assert.True(t, h.player(a.seq).Disconnected)
	assert.True(t, h.srv.Sessions().ValidateSessionKey(a.seq, a.key))

	h.now = 40001
	h.step()
	assert.False(t, h.srv.Sessions().ValidateSessionKey(a.seq, a.key))
	assert.Empty(t, h.srv.Rooms().Rooms())
	assert.Empty(t, h.srv.Snapshot().Rooms)
}

func TestHeartbeatKeepsPlayerAlive(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")

	h.now = 9000
	h.lb.Deliver(a.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: a.key}))
	h.step()
	h.now = 15000
	h.step()
	assert.False(t, h.player(a.seq).Disconnected)
}

func TestReauthSameDeviceReplacesPlayer(t *testing.T) {
	h := newHarness(t)
	first := h.join("dev-a", "alice")
	second := h.join("dev-a", "alice2")

	assert.Equal(t, first.seq, second.seq)
	assert.NotEqual(t, first.key, second.key)
	assert.Equal(t, 1, h.srv.Rooms().Current().PlayerCount())
	assert.Equal(t, second.peer, h.player(second.seq).Peer)

	_, ok := h.srv.Sessions().PlayerSequence(first.peer)
	assert.False(t, ok)
}

func TestDisconnectAfterDeathRemoveIsSilent(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	victim := h.player(a.seq)
	victim.SetHP(0)
	victim.State = StateDead
	victim.DeathTime = 0

	h.now = 5000
	h.lb.Deliver(b.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: b.key}))
	h.step()
	require.Contains(t, ids(h.lb.Sent(b.peer)), protocol.EProtocolSC_RemoveNotification)

	h.lb.Disconnect(a.peer)
	h.step()
	assert.Empty(t, h.lb.Sent(b.peer))
	_, _, ok := h.srv.Rooms().Locate(a.seq)
	assert.False(t, ok)
}

func TestTimedOutPlayerIsNotRevived(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	b := h.join("dev-b", "bob")
	h.lb.Sent(b.peer)

	// a 静默超时，b 保持心跳
	h.now = 10000
	h.lb.Deliver(b.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: b.key}))
	h.step()
	require.True(t, h.player(a.seq).Disconnected)
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolSC_RemoveNotification}, ids(h.lb.Sent(b.peer)))

	before := h.srv.Metrics().PacketsRejected
	h.lb.Deliver(a.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: a.key}))
	h.lb.Deliver(a.peer, 0, protocol.EncodeLoadCompleteRequest(protocol.LoadComplete{SessionKey: a.key}))
	h.lb.Deliver(a.peer, 0, protocol.EncodeChatRequest(protocol.ChatRequest{SessionKey: a.key, Message: "hi"}))
	h.step()
	assert.Equal(t, before+3, h.srv.Metrics().PacketsRejected)
	assert.Empty(t, h.lb.Sent(b.peer))
	assert.Empty(t, h.lb.Sent(a.peer))

	// 重新认证后恢复
	h.lb.Deliver(a.peer, 0, protocol.EncodeAuthRequest(protocol.AuthRequest{DeviceKey: "dev-a", UserName: "alice"}))
	h.step()
	assert.Equal(t, []protocol.EProtocol{protocol.EProtocolLC_AuthResponse, protocol.EProtocolSC_EnterRoom}, ids(h.lb.Sent(a.peer)))
	assert.False(t, h.player(a.seq).Disconnected)
}

func TestStalePlayerObjectRejectsInput(t *testing.T) {
	h := newHarness(t)
	a := h.join("dev-a", "alice")
	h.player(a.seq).SessionKey = a.key - 1

	before := h.srv.Metrics().PacketsRejected
	h.lb.Deliver(a.peer, 0, protocol.EncodeHeartbeat(protocol.Heartbeat{SessionKey: a.key}))
	h.step()
	assert.Equal(t, before+1, h.srv.Metrics().PacketsRejected)
}

func TestAuthWithoutRoomIssuesNoSession(t *testing.T) {
	h := newHarness(t)
	h.srv.Rooms().newCode = func() (string, error) { return "", errors.New("no entropy") }

	peer := h.lb.Connect()
	h.lb.Deliver(peer, 0, protocol.EncodeAuthRequest(protocol.AuthRequest{DeviceKey: "dev-a", UserName: "alice"}))
	h.step()

	assert.Empty(t, h.lb.Sent(peer))
	_, ok := h.srv.Sessions().PlayerSequence(peer)
	assert.False(t, ok)
	assert.Equal(t, 0, h.srv.Sessions().ActiveSessions())
	assert.Equal(t, int64(1), h.srv.Metrics().PacketsRejected)
}

func TestRunStopsOnCancel(t *testing.T) {
	lb := transport.NewLoopback()
	srv, err := NewServer(testConfig(), lb, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	peer := lb.Connect()
	lb.Deliver(peer, 0, protocol.EncodeAuthRequest(protocol.AuthRequest{DeviceKey: "d", UserName: "n"}))
	assert.Eventually(t, func() bool {
		return srv.Snapshot().Sessions == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.ErrorIs(t, lb.Send(peer, 0, []byte{1}, true), transport.ErrTransportClosed)
}
