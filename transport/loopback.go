package transport

import (
	"sync"
	"time"
)

// Packet 回环传输记录的一次发送
type Packet struct {
	Channel  uint8
	Reliable bool
	Data     []byte
}

// Loopback 内存传输：测试代码扮演客户端注入事件，并读取服务器发出的包
type Loopback struct {
	events *eventQueue

	mu      sync.Mutex
	next    PeerID
	peers   map[PeerID]bool
	sent    map[PeerID][]Packet
	flushes int
}

func NewLoopback() *Loopback {
	return &Loopback{
		events: newEventQueue(defaultEventBuffer),
		peers:  make(map[PeerID]bool),
		sent:   make(map[PeerID][]Packet),
	}
}

// Connect 模拟新连接
func (l *Loopback) Connect() PeerID {
	l.mu.Lock()
	l.next++
	id := l.next
	l.peers[id] = true
	l.mu.Unlock()
	l.events.push(Event{Type: EventConnect, Peer: id})
	return id
}

// Deliver 模拟客户端发来一个包
func (l *Loopback) Deliver(peer PeerID, channel uint8, data []byte) {
	buf := append([]byte(nil), data...)
	l.events.push(Event{Type: EventReceive, Peer: peer, Channel: channel, Data: buf})
}

// Disconnect 模拟连接断开
func (l *Loopback) Disconnect(peer PeerID) {
	l.mu.Lock()
	delete(l.peers, peer)
	l.mu.Unlock()
	l.events.push(Event{Type: EventDisconnect, Peer: peer})
}

func (l *Loopback) Poll(timeout time.Duration) (Event, bool) {
	return l.events.poll(timeout)
}

func (l *Loopback) Send(peer PeerID, channel uint8, data []byte, reliable bool) error {
	if l.events.isClosed() {
		return ErrTransportClosed
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.peers[peer] {
		return ErrPeerNotFound
	}
	l.sent[peer] = append(l.sent[peer], Packet{Channel: channel, Reliable: reliable, Data: append([]byte(nil), data...)})
	return nil
}

func (l *Loopback) Flush() {
	l.mu.Lock()
	l.flushes++
	l.mu.Unlock()
}

func (l *Loopback) Close() error {
	l.events.close()
	return nil
}

// Sent 返回并清空发往 peer 的包
func (l *Loopback) Sent(peer PeerID) []Packet {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.sent[peer]
	delete(l.sent, peer)
	return out
}

func (l *Loopback) Flushes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flushes
}
