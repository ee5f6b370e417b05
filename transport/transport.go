// Package transport 提供面向房间服务器的连接抽象：连接/断开/收包事件轮询，
// 以及按通道（可靠/不可靠）发送。具体实现有 QUIC、WebSocket 与测试用的内存回环。
package transport

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PeerID 连接句柄，0 表示无效连接
type PeerID uint64

type EventType int

const (
	EventNone EventType = iota
	EventConnect
	EventReceive
	EventDisconnect
)

func (t EventType) String() string {
	switch t {
	case EventConnect:
		return "connect"
	case EventReceive:
		return "receive"
	case EventDisconnect:
		return "disconnect"
	default:
		return "none"
	}
}

// Event 由 Poll 返回的一条网络事件
type Event struct {
	Type    EventType
	Peer    PeerID
	Channel uint8
	Data    []byte
}

// Transport 服务器循环依赖的最小网络接口
type Transport interface {
	// Poll 最多等待 timeout，返回一条事件；无事件或已关闭时返回 false
	Poll(timeout time.Duration) (Event, bool)
	Send(peer PeerID, channel uint8, data []byte, reliable bool) error
	Flush()
	Close() error
}

var (
	ErrPeerNotFound    = errors.New("transport: peer not found")
	ErrSendBufferFull  = errors.New("transport: send buffer full")
	ErrTransportClosed = errors.New("transport: closed")
)

const (
	defaultEventBuffer = 4096
	defaultSendBuffer  = 256
)

// eventQueue 连接读协程 → Poll 的事件通道
type eventQueue struct {
	ch     chan Event
	closed chan struct{}
	once   sync.Once
}

func newEventQueue(size int) *eventQueue {
	if size <= 0 {
		size = defaultEventBuffer
	}
	return &eventQueue{ch: make(chan Event, size), closed: make(chan struct{})}
}

// push 阻塞直到入队或传输层关闭，保证断开事件不丢
func (q *eventQueue) push(e Event) bool {
	select {
	case q.ch <- e:
		return true
	case <-q.closed:
		return false
	}
}

func (q *eventQueue) poll(timeout time.Duration) (Event, bool) {
	select {
	case e := <-q.ch:
		return e, true
	default:
	}
	if timeout <= 0 {
		return Event{}, false
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case e := <-q.ch:
		return e, true
	case <-q.closed:
		return Event{}, false
	case <-timer.C:
		return Event{}, false
	}
}

func (q *eventQueue) close() {
	q.once.Do(func() { close(q.closed) })
}

func (q *eventQueue) isClosed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}

// peerTable 连接表，读写协程与服务器循环并发访问
type peerTable[P any] struct {
	mu    sync.RWMutex
	next  PeerID
	peers map[PeerID]P
}

func newPeerTable[P any]() *peerTable[P] {
	return &peerTable[P]{peers: make(map[PeerID]P)}
}

func (t *peerTable[P]) add(p P) PeerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.peers[t.next] = p
	return t.next
}

func (t *peerTable[P]) get(id PeerID) (P, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.peers[id]
	return p, ok
}

func (t *peerTable[P]) remove(id PeerID) {
	t.mu.Lock()
	delete(t.peers, id)
	t.mu.Unlock()
}

func (t *peerTable[P]) all() []P {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]P, 0, len(t.peers))
	for _, p := range t.peers {
		out = append(out, p)
	}
	return out
}

func (t *peerTable[P]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

// sendQueue 每连接的发送队列（非阻塞，满则丢弃），由写协程消费
type sendQueue[T any] struct {
	ch   chan T
	done chan struct{}
	once sync.Once
}

func newSendQueue[T any](size int) *sendQueue[T] {
	if size <= 0 {
		size = defaultSendBuffer
	}
	return &sendQueue[T]{ch: make(chan T, size), done: make(chan struct{})}
}

func (q *sendQueue[T]) enqueue(b T) error {
	select {
	case <-q.done:
		return ErrPeerNotFound
	default:
	}
	select {
	case q.ch <- b:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (q *sendQueue[T]) stop() {
	q.once.Do(func() { close(q.done) })
}

func nopLogger(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
