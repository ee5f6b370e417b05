package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocketConfig 浏览器接入的 WebSocket 传输配置
type WebSocketConfig struct {
	Path         string
	MaxClients   int
	ReadLimit    int64
	IdleTimeout  time.Duration
	WriteTimeout time.Duration
	SendBuffer   int
	Logger       *zap.SugaredLogger
}

func (c *WebSocketConfig) setDefaults() {
	if c.Path == "" {
		c.Path = "/ws"
	}
	if c.ReadLimit <= 0 {
		c.ReadLimit = 64 << 10
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 5 * time.Second
	}
	c.Logger = nopLogger(c.Logger)
}

// wsPeer 一个 WebSocket 连接：读协程产生事件，写协程消费发送队列
type wsPeer struct {
	id   PeerID
	ws   *websocket.Conn
	send *sendQueue[[]byte]
}

// WebSocket 所有通道都走同一条有序可靠连接，channel 与 reliable 参数被忽略
type WebSocket struct {
	cfg      WebSocketConfig
	upgrader websocket.Upgrader
	events   *eventQueue
	peers    *peerTable[*wsPeer]
	srv      *http.Server
}

func NewWebSocket(cfg WebSocketConfig) *WebSocket {
	cfg.setDefaults()
	return &WebSocket{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  2048,
			WriteBufferSize: 2048,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		events: newEventQueue(defaultEventBuffer),
		peers:  newPeerTable[*wsPeer](),
	}
}

// ListenWebSocket 在 addr 上启动 HTTP 服务并挂载 cfg.Path
func ListenWebSocket(addr string, cfg WebSocketConfig) (*WebSocket, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	t := NewWebSocket(cfg)
	mux := http.NewServeMux()
	mux.Handle(t.cfg.Path, t)
	t.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := t.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.cfg.Logger.Errorw("websocket serve", "err", err)
		}
	}()
	t.cfg.Logger.Infow("websocket transport listening", "addr", ln.Addr().String(), "path", t.cfg.Path)
	return t, nil
}

// ServeHTTP 升级请求并登记连接
func (t *WebSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if t.events.isClosed() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	if t.cfg.MaxClients > 0 && t.peers.len() >= t.cfg.MaxClients {
		http.Error(w, "server full", http.StatusServiceUnavailable)
		return
	}
	ws, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		t.cfg.Logger.Warnw("websocket upgrade", "err", err)
		return
	}
	p := &wsPeer{ws: ws, send: newSendQueue[[]byte](t.cfg.SendBuffer)}
	p.id = t.peers.add(p)
	t.events.push(Event{Type: EventConnect, Peer: p.id})

	go t.writePump(p)
	go t.readPump(p)
}

// writePump 独立协程，负责从 send 队列写出二进制帧
func (t *WebSocket) writePump(p *wsPeer) {
	defer p.ws.Close()
	for {
		select {
		case msg := <-p.send.ch:
			_ = p.ws.SetWriteDeadline(time.Now().Add(t.cfg.WriteTimeout))
			if err := p.ws.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				return
			}
		case <-p.send.done:
			_ = p.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			return
		}
	}
}

// readPump 读取客户端二进制包，退出时上报断开
func (t *WebSocket) readPump(p *wsPeer) {
	defer func() {
		p.send.stop()
		t.peers.remove(p.id)
		t.events.push(Event{Type: EventDisconnect, Peer: p.id})
	}()
	p.ws.SetReadLimit(t.cfg.ReadLimit)
	_ = p.ws.SetReadDeadline(time.Now().Add(t.cfg.IdleTimeout))
	p.ws.SetPongHandler(func(string) error {
		return p.ws.SetReadDeadline(time.Now().Add(t.cfg.IdleTimeout))
	})
	for {
		kind, payload, err := p.ws.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		_ = p.ws.SetReadDeadline(time.Now().Add(t.cfg.IdleTimeout))
		if !t.events.push(Event{Type: EventReceive, Peer: p.id, Channel: 0, Data: payload}) {
			return
		}
	}
}

func (t *WebSocket) Poll(timeout time.Duration) (Event, bool) {
	return t.events.poll(timeout)
}

func (t *WebSocket) Send(peer PeerID, _ uint8, data []byte, _ bool) error {
	if t.events.isClosed() {
		return ErrTransportClosed
	}
	p, ok := t.peers.get(peer)
	if !ok {
		return ErrPeerNotFound
	}
	return p.send.enqueue(data)
}

// Flush 写协程按队列即时写出，无需额外动作
func (t *WebSocket) Flush() {}

func (t *WebSocket) Close() error {
	t.events.close()
	for _, p := range t.peers.all() {
		p.send.stop()
	}
	if t.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return t.srv.Shutdown(ctx)
	}
	return nil
}
