package server

import (
	"errors"
	"maps"
	"math/rand"
	"slices"

	"smuggler/protocol"
	"smuggler/transport"
)

// ErrRoomFull 房间人数已达上限
var ErrRoomFull = errors.New("room is full")

// SyncSplitMinimum 分包上限至少能容纳一条移动同步
var SyncSplitMinimum = protocol.SyncMoveSize(1)

// RoomConfig 房间可调参数（时间单位毫秒，距离单位为世界坐标）
type RoomConfig struct {
	MaxPlayers          int     `mapstructure:"max_players"`
	DisconnectTimeoutMs int64   `mapstructure:"disconnect_timeout_ms"`
	CleanupTimeoutMs    int64   `mapstructure:"cleanup_timeout_ms"`
	DeathRemoveDelayMs  int64   `mapstructure:"death_remove_delay_ms"`
	RespawnDelayMs      int64   `mapstructure:"respawn_delay_ms"`
	AttackRange         float32 `mapstructure:"attack_range"`
	HitRadius           float32 `mapstructure:"hit_radius"`
	AttackDamage        int32   `mapstructure:"attack_damage"`
	SyncSplitLimit      int     `mapstructure:"sync_split_limit"`
	HalfExtent          float32 `mapstructure:"half_extent"`
	WallCount           int     `mapstructure:"wall_count"`
	Seed                int64   `mapstructure:"seed"`
}

func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		MaxPlayers:          1000,
		DisconnectTimeoutMs: 10000,
		CleanupTimeoutMs:    30000,
		DeathRemoveDelayMs:  5000,
		RespawnDelayMs:      6000,
		AttackRange:         50,
		HitRadius:           1,
		AttackDamage:        10,
		SyncSplitLimit:      1400,
		HalfExtent:          50,
		WallCount:           8,
		Seed:                42,
	}
}

// Sender 房间向客户端发包所需的最小接口，transport.Transport 满足它
type Sender interface {
	Send(peer transport.PeerID, channel uint8, data []byte, reliable bool) error
}

// Room 房间世界：权威状态维护在内存，只在 Tick 协程中被修改
type Room struct {
	Code string

	cfg     RoomConfig
	players map[int32]*Player
	blocks  map[int32]*Block
	npcs    map[int32]*NPC

	moveQueue []MoveAction
	rng       *rand.Rand

	out     Sender
	metrics *ServerMetrics
}

// NewRoom 创建房间并按种子生成墙体；nextObjectSeq 为非玩家对象分配序号
func NewRoom(code string, cfg RoomConfig, out Sender, metrics *ServerMetrics, nextObjectSeq func() int32) *Room {
	if metrics == nil {
		metrics = &ServerMetrics{}
	}
	r := &Room{
		Code:    code,
		cfg:     cfg,
		players: make(map[int32]*Player),
		blocks:  make(map[int32]*Block),
		npcs:    make(map[int32]*NPC),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		out:     out,
		metrics: metrics,
	}
	for _, b := range generateWalls(r.rng, cfg.WallCount, cfg.HalfExtent, nextObjectSeq) {
		r.blocks[b.Sequence] = b
	}
	return r
}

func (r *Room) PlayerCount() int { return len(r.players) }
func (r *Room) IsFull() bool     { return len(r.players) >= r.cfg.MaxPlayers }
func (r *Room) IsEmpty() bool    { return len(r.players) == 0 }

func (r *Room) Player(seq int32) (*Player, bool) {
	p, ok := r.players[seq]
	return p, ok
}

func (r *Room) Blocks() []*Block {
	out := make([]*Block, 0, len(r.blocks))
	for _, seq := range slices.Sorted(maps.Keys(r.blocks)) {
		out = append(out, r.blocks[seq])
	}
	return out
}

// sortedPlayers 按序号遍历，保证随机数消耗顺序可复现
func (r *Room) sortedPlayers() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, seq := range slices.Sorted(maps.Keys(r.players)) {
		out = append(out, r.players[seq])
	}
	return out
}

// AddPlayer 加入房间并选取出生点；满员返回 ErrRoomFull
func (r *Room) AddPlayer(peer transport.PeerID, seq, sessionKey int32, name string, appearanceID int32, now int64) (*Player, error) {
	if r.IsFull() {
		return nil, ErrRoomFull
	}
	p := newPlayer(seq, peer, sessionKey, name, appearanceID)
	p.SetPosition(r.spawnPoint())
	p.LastReceivedTime = now
	r.players[seq] = p
	return p, nil
}

// RemovePlayer 立即移除；客户端尚未收到过移除通知时才广播。不存在时无操作
func (r *Room) RemovePlayer(seq int32) bool {
	p, ok := r.players[seq]
	if !ok {
		return false
	}
	delete(r.players, seq)
	if !p.RemoveSent {
		r.BroadcastRemoveNotification(seq)
	}
	return true
}

// spawnNPC 在指定位置放置一个 NPC；目前房间不主动生成 NPC，仅测试使用
func (r *Room) spawnNPC(seq int32, x, y float32) *NPC {
	n := newNPC(seq, x, y, PlayerMaxHP)
	r.npcs[seq] = n
	return n
}

// QueueMoveAction 信任客户端上报的位置：立即写入权威状态，并排队等待帧末广播
func (r *Room) QueueMoveAction(a MoveAction) bool {
	p, ok := r.players[a.PlayerSequence]
	if !ok {
		return false
	}
	p.SetPosition(a.X, a.Y)
	p.Direction = a.Direction
	p.MoveFlag = a.MoveFlag
	p.AimDirection = a.AimDirection
	r.moveQueue = append(r.moveQueue, a)
	return true
}

// Update 每帧推进：断线检测 → 过期清理 → 死亡/复活 → 移动广播。返回本帧被清理的玩家序号
func (r *Room) Update(now int64) []int32 {
	r.sweepDisconnected(now)
	expired := r.sweepExpired(now)
	r.updateDeath(now)
	for _, n := range r.npcs {
		n.Update(now)
	}
	r.flushMoves()
	return expired
}

func (r *Room) sweepDisconnected(now int64) {
	var gone []int32
	for _, p := range r.sortedPlayers() {
		if p.Disconnected || now-p.LastReceivedTime < r.cfg.DisconnectTimeoutMs {
			continue
		}
		p.Disconnected = true
		p.DisconnectTime = now
		Log.Infow("player timed out", "room", r.Code, "seq", p.Sequence, "idle_ms", now-p.LastReceivedTime)
		// 已因死亡发过移除的玩家不再重复通知
		if !p.RemoveSent {
			p.RemoveSent = true
			gone = append(gone, p.Sequence)
		}
	}
	if len(gone) > 0 {
		r.BroadcastRemoveNotification(gone...)
	}
}

func (r *Room) sweepExpired(now int64) []int32 {
	var expired []int32
	for _, p := range r.sortedPlayers() {
		if p.Disconnected && now-p.DisconnectTime > r.cfg.CleanupTimeoutMs {
			expired = append(expired, p.Sequence)
			r.RemovePlayer(p.Sequence)
		}
	}
	if len(expired) > 0 {
		Log.Infow("players purged", "room", r.Code, "seqs", expired)
	}
	return expired
}

func (r *Room) updateDeath(now int64) {
	for _, p := range r.sortedPlayers() {
		// 断线玩家的死亡流程终止，不再复活
		if !p.IsDead() || p.Disconnected {
			continue
		}
		elapsed := now - p.DeathTime
		if elapsed >= r.cfg.DeathRemoveDelayMs && !p.RemoveSent {
			p.RemoveSent = true
			r.BroadcastRemoveNotification(p.Sequence)
		}
		if elapsed >= r.cfg.RespawnDelayMs {
			r.respawn(p)
		}
	}
}

func (r *Room) respawn(p *Player) {
	p.SetHP(p.MaxHP())
	p.State = StateNormal
	p.RemoveSent = false
	p.DeathAnimID = 0
	p.SetPosition(r.spawnPoint())
	Log.Debugw("player respawned", "room", r.Code, "seq", p.Sequence, "x", p.X, "y", p.Y)
	r.BroadcastChangeState(p)
	r.BroadcastAddNotification(p)
}

// flushMoves 把本帧移动打包成一个或多个 SC_SyncMove，超过分包上限时另起一包
func (r *Room) flushMoves() {
	if len(r.moveQueue) == 0 {
		return
	}
	batch := make([]protocol.MoveSync, 0, len(r.moveQueue))
	for _, a := range r.moveQueue {
		// 同一帧内已被移除的玩家
		if _, ok := r.players[a.PlayerSequence]; !ok {
			continue
		}
		if protocol.SyncMoveSize(len(batch)+1) > r.cfg.SyncSplitLimit && len(batch) > 0 {
			r.broadcast(protocol.EncodeSyncMove(batch), false)
			batch = batch[:0]
		}
		batch = append(batch, a.sync())
	}
	if len(batch) > 0 {
		r.broadcast(protocol.EncodeSyncMove(batch), false)
	}
	r.moveQueue = r.moveQueue[:0]
}
