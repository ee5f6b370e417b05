package server

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"smuggler/protocol"
	"smuggler/transport"
)

const (
	RoomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	RoomCodeLength  = 4

	roomCodeRetries = 8
	// 墙体等非玩家对象的序号起点，与玩家序号区间分开
	firstObjectSequence = 100000
)

// NewRoomCode 用加密随机源生成房间码，字符集内均匀分布
func NewRoomCode() (string, error) {
	limit := big.NewInt(int64(len(RoomCodeCharset)))
	b := make([]byte, RoomCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = RoomCodeCharset[n.Int64()]
	}
	return string(b), nil
}

// RoomSummary 管理接口用的房间概要
type RoomSummary struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
	Loaded  int    `json:"loaded"`
	Dead    int    `json:"dead"`
	Blocks  int    `json:"blocks"`
	Current bool   `json:"current"`
}

// RoomManager 管理房间生命周期：单一“当前房间”放置策略，满员时开新房间，空房间在 Update 中回收。
// 仅在 Tick 协程中调用
type RoomManager struct {
	cfg     RoomConfig
	out     Sender
	metrics *ServerMetrics

	rooms   []*Room
	current *Room

	peerRooms map[transport.PeerID]*Room
	seqRooms  map[int32]*Room
	seqPeers  map[int32]transport.PeerID
	peerSeqs  map[transport.PeerID]int32

	expired       []int32
	nextObjectSeq int32
	newCode       func() (string, error)
}

func NewRoomManager(cfg RoomConfig, out Sender, metrics *ServerMetrics) *RoomManager {
	if metrics == nil {
		metrics = &ServerMetrics{}
	}
	return &RoomManager{
		cfg:           cfg,
		out:           out,
		metrics:       metrics,
		peerRooms:     make(map[transport.PeerID]*Room),
		seqRooms:      make(map[int32]*Room),
		seqPeers:      make(map[int32]transport.PeerID),
		peerSeqs:      make(map[transport.PeerID]int32),
		nextObjectSeq: firstObjectSequence,
		newCode:       NewRoomCode,
	}
}

func (m *RoomManager) allocObjectSeq() int32 {
	seq := m.nextObjectSeq
	m.nextObjectSeq++
	return seq
}

func (m *RoomManager) Rooms() []*Room { return m.rooms }
func (m *RoomManager) Current() *Room { return m.current }

func (m *RoomManager) codeInUse(code string) bool {
	for _, r := range m.rooms {
		if r.Code == code {
			return true
		}
	}
	return false
}

func (m *RoomManager) createRoom() (*Room, error) {
	var code string
	for i := 0; i < roomCodeRetries; i++ {
		c, err := m.newCode()
		if err != nil {
			return nil, fmt.Errorf("room code: %w", err)
		}
		code = c
		if !m.codeInUse(c) {
			break
		}
	}
	r := NewRoom(code, m.cfg, m.out, m.metrics, m.allocObjectSeq)
	m.rooms = append(m.rooms, r)
	m.current = r
	m.metrics.IncRoomCreated()
	Log.Infow("room created", "code", code, "blocks", len(r.blocks), "rooms", len(m.rooms))
	return r, nil
}

// PlacePlayer 放入当前房间，满员或无房间时新建；成功后可靠发送 SC_EnterRoom
func (m *RoomManager) PlacePlayer(peer transport.PeerID, seq, sessionKey int32, name string, appearanceID int32, now int64) (*Room, *Player, error) {
	room, err := m.EnsureCapacity()
	if err != nil {
		return nil, nil, err
	}
	p, err := room.AddPlayer(peer, seq, sessionKey, name, appearanceID, now)
	if err != nil {
		return nil, nil, fmt.Errorf("place %d in %s: %w", seq, room.Code, err)
	}
	m.seqRooms[seq] = room
	if peer != 0 {
		m.peerRooms[peer] = room
		m.seqPeers[seq] = peer
		m.peerSeqs[peer] = seq
	}

	room.sendTo(p, protocol.EncodeEnterRoom(protocol.EnterRoom{
		RoomCode:       room.Code,
		PlayerSequence: seq,
		X:              p.X,
		Y:              p.Y,
	}), true)
	Log.Infow("player placed", "room", room.Code, "seq", seq, "peer", peer, "x", p.X, "y", p.Y, "count", room.PlayerCount())
	return room, p, nil
}

// EnsureCapacity 返回有空位的当前房间；满员或无房间时新建并设为当前房间
func (m *RoomManager) EnsureCapacity() (*Room, error) {
	if m.current != nil && !m.current.IsFull() {
		return m.current, nil
	}
	return m.createRoom()
}

// Locate 按玩家序号找到房间与玩家
func (m *RoomManager) Locate(seq int32) (*Room, *Player, bool) {
	room, ok := m.seqRooms[seq]
	if !ok {
		return nil, nil, false
	}
	p, ok := room.Player(seq)
	if !ok {
		return nil, nil, false
	}
	return room, p, true
}

func (m *RoomManager) PlayerRoom(peer transport.PeerID) (*Room, bool) {
	r, ok := m.peerRooms[peer]
	return r, ok
}

func (m *RoomManager) forget(seq int32) {
	delete(m.seqRooms, seq)
	if peer, ok := m.seqPeers[seq]; ok {
		delete(m.peerRooms, peer)
		delete(m.peerSeqs, peer)
		delete(m.seqPeers, seq)
	}
}

// RemovePlayer 连接断开：所属房间广播移除并立即删除玩家
func (m *RoomManager) RemovePlayer(peer transport.PeerID) bool {
	seq, ok := m.peerSeqs[peer]
	if !ok {
		return false
	}
	room := m.peerRooms[peer]
	m.forget(seq)
	if room == nil {
		return false
	}
	return room.RemovePlayer(seq)
}

// DetachSequence 同一设备重新认证时，把旧的玩家对象从所在房间移除
func (m *RoomManager) DetachSequence(seq int32) bool {
	room, ok := m.seqRooms[seq]
	if !ok {
		return false
	}
	m.forget(seq)
	return room.RemovePlayer(seq)
}

// Update 推进所有房间，收集过期玩家，回收空房间
func (m *RoomManager) Update(now int64) {
	for _, r := range m.rooms {
		for _, seq := range r.Update(now) {
			m.forget(seq)
			m.expired = append(m.expired, seq)
		}
	}

	kept := m.rooms[:0]
	for _, r := range m.rooms {
		if !r.IsEmpty() {
			kept = append(kept, r)
			continue
		}
		if m.current == r {
			m.current = nil
		}
		m.metrics.IncRoomRemoved()
		Log.Infow("room removed", "code", r.Code)
	}
	for i := len(kept); i < len(m.rooms); i++ {
		m.rooms[i] = nil
	}
	m.rooms = kept
}

// TakeExpiredPlayers 取走并清空累计的过期玩家序号
func (m *RoomManager) TakeExpiredPlayers() []int32 {
	out := m.expired
	m.expired = nil
	return out
}

func (m *RoomManager) Summaries() []RoomSummary {
	out := make([]RoomSummary, 0, len(m.rooms))
	for _, r := range m.rooms {
		s := RoomSummary{Code: r.Code, Players: len(r.players), Blocks: len(r.blocks), Current: r == m.current}
		for _, p := range r.players {
			if p.LoadCompleted {
				s.Loaded++
			}
			if p.IsDead() {
				s.Dead++
			}
		}
		out = append(out, s)
	}
	return out
}
