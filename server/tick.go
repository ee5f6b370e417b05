package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"smuggler/transport"
)

// inbound 入站队列的一项：收到的包或连接断开
type inbound struct {
	peer       transport.PeerID
	data       []byte
	disconnect bool
}

// AdminSnapshot 每帧结束时发布的只读快照，供管理接口并发读取
type AdminSnapshot struct {
	Tick     int64         `json:"tick"`
	NowMs    int64         `json:"now_ms"`
	Sessions int           `json:"sessions"`
	Rooms    []RoomSummary `json:"rooms"`
}

// ServerOption 构造 Server 时的可选配置
type ServerOption func(*Server)

// WithClock 替换毫秒时钟（测试用）
func WithClock(now func() int64) ServerOption {
	return func(s *Server) { s.clock = now }
}

// Server 服务器循环：轮询协程收包入队（Ping 走快速通道），Tick 协程按固定帧率出队处理并推进房间
type Server struct {
	cfg        Config
	tr         transport.Transport
	dispatcher *Dispatcher
	sessions   *SessionRegistry
	rooms      *RoomManager
	metrics    *ServerMetrics

	inMu    sync.Mutex
	inbound []inbound

	started  time.Time
	clock    func() int64
	tick     int64
	stopping atomic.Bool
	snapshot atomic.Pointer[AdminSnapshot]
}

func NewServer(cfg Config, tr transport.Transport, store IdentityStore, opts ...ServerOption) (*Server, error) {
	metrics := &ServerMetrics{}
	d, err := NewDispatcher(metrics)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:        cfg,
		tr:         tr,
		dispatcher: d,
		sessions:   NewSessionRegistry(cfg.Session, store),
		rooms:      NewRoomManager(cfg.Room, tr, metrics),
		metrics:    metrics,
		started:    time.Now(),
	}
	s.clock = func() int64 { return time.Since(s.started).Milliseconds() }
	for _, opt := range opts {
		opt(s)
	}
	s.registerHandlers()
	s.snapshot.Store(&AdminSnapshot{Rooms: []RoomSummary{}})
	return s, nil
}

func (s *Server) Sessions() *SessionRegistry { return s.sessions }
func (s *Server) Rooms() *RoomManager        { return s.rooms }
func (s *Server) Metrics() *ServerMetrics    { return s.metrics }
func (s *Server) Dispatcher() *Dispatcher    { return s.dispatcher }
func (s *Server) Snapshot() *AdminSnapshot   { return s.snapshot.Load() }

// Now 单调时钟毫秒数，所有超时判定都以它为准
func (s *Server) Now() int64 { return s.clock() }

// Stop 请求退出，各循环在下一次迭代开头检查
func (s *Server) Stop() { s.stopping.Store(true) }

func (s *Server) running(ctx context.Context) bool {
	return !s.stopping.Load() && ctx.Err() == nil
}

// Run 启动轮询协程并在当前协程执行 Tick 循环，直到 ctx 取消或 Stop
func (s *Server) Run(ctx context.Context) error {
	frame := s.cfg.Loop.FrameInterval()
	Log.Infow("server loop started", "tick_rate", s.cfg.Loop.TickRate, "frame", frame)

	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		for s.running(ctx) {
			s.pollOnce(s.cfg.Loop.PollTimeout)
		}
	}()

	timer := time.NewTimer(frame)
	defer timer.Stop()
	for s.running(ctx) {
		start := time.Now()
		s.Tick()
		elapsed := time.Since(start)
		s.metrics.AddTick(elapsed.Nanoseconds())
		if wait := frame - elapsed; wait > 0 {
			timer.Reset(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		}
	}

	s.stopping.Store(true)
	<-pollDone
	Log.Infow("server loop stopped", "ticks", s.tick)
	return s.tr.Close()
}

// pollOnce 处理一条网络事件；返回是否取到事件
func (s *Server) pollOnce(timeout time.Duration) bool {
	ev, ok := s.tr.Poll(timeout)
	if !ok {
		return false
	}
	switch ev.Type {
	case transport.EventConnect:
		s.metrics.IncConnect()
		Log.Infow("peer connected", "peer", ev.Peer)
	case transport.EventDisconnect:
		s.metrics.IncDisconnect()
		s.enqueue(inbound{peer: ev.Peer, disconnect: true})
	case transport.EventReceive:
		if s.dispatcher.IsImmediate(ev.Data) {
			if _, err := s.dispatcher.Dispatch(ev.Peer, ev.Data); err != nil {
				Log.Warnw("[RECV] immediate dispatch failed", "peer", ev.Peer, "err", err)
			}
			return true
		}
		s.enqueue(inbound{peer: ev.Peer, data: ev.Data})
		s.metrics.IncQueued()
	}
	return true
}

func (s *Server) enqueue(in inbound) {
	s.inMu.Lock()
	s.inbound = append(s.inbound, in)
	s.inMu.Unlock()
}

// swapInbound 加锁只做一次交换，处理在锁外进行
func (s *Server) swapInbound() []inbound {
	s.inMu.Lock()
	batch := s.inbound
	s.inbound = nil
	s.inMu.Unlock()
	return batch
}

// Tick 一帧：处理入站 → 推进房间 → 清理过期会话 → 发布快照 → 刷新发送
func (s *Server) Tick() {
	s.tick++
	for _, in := range s.swapInbound() {
		if in.disconnect {
			s.onDisconnect(in.peer)
			continue
		}
		if _, err := s.dispatcher.Dispatch(in.peer, in.data); err != nil {
			Log.Warnw("[RECV] dispatch failed", "peer", in.peer, "err", err)
		}
	}

	now := s.Now()
	s.rooms.Update(now)
	for _, seq := range s.rooms.TakeExpiredPlayers() {
		s.sessions.Expire(seq)
	}

	s.snapshot.Store(&AdminSnapshot{
		Tick:     s.tick,
		NowMs:    now,
		Sessions: s.sessions.ActiveSessions(),
		Rooms:    s.rooms.Summaries(),
	})
	s.tr.Flush()
}

func (s *Server) onDisconnect(peer transport.PeerID) {
	seq, _ := s.sessions.PlayerSequence(peer)
	removed := s.rooms.RemovePlayer(peer)
	s.sessions.UnbindConnection(peer)
	Log.Infow("peer disconnected", "peer", peer, "seq", seq, "removed", removed)
}
