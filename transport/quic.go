package transport

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"time"

	"github.com/quic-go/quic-go"
	"go.uber.org/zap"
)

// ALPN 客户端握手时必须携带的应用层协议名
const ALPN = "smuggler"

const (
	// 不可靠包超过该大小时退回可靠流发送
	maxDatagramPayload = 1100
	maxStreamFrame     = 1 << 16
)

// QUICConfig UDP 接入配置：一条双向流承载可靠通道，QUIC 数据报承载不可靠通道
type QUICConfig struct {
	MaxClients      int
	CertFile        string
	KeyFile         string
	MaxIdleTimeout  time.Duration
	KeepAlivePeriod time.Duration
	SendBuffer      int
	Logger          *zap.SugaredLogger
}

func (c *QUICConfig) setDefaults() {
	if c.MaxIdleTimeout <= 0 {
		c.MaxIdleTimeout = 30 * time.Second
	}
	if c.KeepAlivePeriod <= 0 {
		c.KeepAlivePeriod = 10 * time.Second
	}
	c.Logger = nopLogger(c.Logger)
}

func (c *QUICConfig) quicConfig() *quic.Config {
	return &quic.Config{
		MaxIdleTimeout:     c.MaxIdleTimeout,
		KeepAlivePeriod:    c.KeepAlivePeriod,
		MaxIncomingStreams: 1,
		EnableDatagrams:    true,
	}
}

type outPacket struct {
	data     []byte
	datagram bool
}

type quicPeer struct {
	id     PeerID
	conn   *quic.Conn
	stream *quic.Stream
	send   *sendQueue[outPacket]
}

// QUIC 服务器端传输
type QUIC struct {
	cfg    QUICConfig
	ln     *quic.Listener
	events *eventQueue
	peers  *peerTable[*quicPeer]
	ctx    context.Context
	cancel context.CancelFunc
}

// ListenQUIC 在 UDP addr 上监听；未配置证书时生成内存自签名证书
func ListenQUIC(addr string, cfg QUICConfig) (*QUIC, error) {
	cfg.setDefaults()
	tlsConf, err := serverTLSConfig(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("quic tls: %w", err)
	}
	ln, err := quic.ListenAddr(addr, tlsConf, cfg.quicConfig())
	if err != nil {
		return nil, fmt.Errorf("quic listen %s: %w", addr, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &QUIC{
		cfg:    cfg,
		ln:     ln,
		events: newEventQueue(defaultEventBuffer),
		peers:  newPeerTable[*quicPeer](),
		ctx:    ctx,
		cancel: cancel,
	}
	go t.acceptLoop()
	cfg.Logger.Infow("quic transport listening", "addr", ln.Addr().String())
	return t, nil
}

// Addr 实际监听地址（端口为 0 时用于测试）
func (t *QUIC) Addr() net.Addr {
	return t.ln.Addr()
}

func (t *QUIC) acceptLoop() {
	for {
		conn, err := t.ln.Accept(t.ctx)
		if err != nil {
			if t.ctx.Err() == nil {
				t.cfg.Logger.Warnw("quic accept", "err", err)
			}
			return
		}
		if t.cfg.MaxClients > 0 && t.peers.len() >= t.cfg.MaxClients {
			_ = conn.CloseWithError(1, "server full")
			continue
		}
		go t.serveConn(conn)
	}
}

// serveConn 等待客户端打开唯一的可靠流，随后启动读写协程
func (t *QUIC) serveConn(conn *quic.Conn) {
	stream, err := conn.AcceptStream(t.ctx)
	if err != nil {
		_ = conn.CloseWithError(0, "")
		return
	}
	p := &quicPeer{
		conn:   conn,
		stream: stream,
		send:   newSendQueue[outPacket](t.cfg.SendBuffer),
	}
	p.id = t.peers.add(p)
	t.events.push(Event{Type: EventConnect, Peer: p.id})

	go t.writePump(p)
	go t.readDatagrams(p)
	t.readStream(p)

	p.send.stop()
	t.peers.remove(p.id)
	_ = conn.CloseWithError(0, "")
	t.events.push(Event{Type: EventDisconnect, Peer: p.id})
}

func (t *QUIC) readStream(p *quicPeer) {
	r := bufio.NewReader(p.stream)
	for {
		pkt, err := ReadStreamFrame(r)
		if err != nil {
			if !errors.Is(err, io.EOF) && t.ctx.Err() == nil {
				t.cfg.Logger.Debugw("quic stream closed", "peer", p.id, "err", err)
			}
			return
		}
		if !t.events.push(Event{Type: EventReceive, Peer: p.id, Channel: 0, Data: pkt}) {
			return
		}
	}
}

func (t *QUIC) readDatagrams(p *quicPeer) {
	ctx := p.conn.Context()
	for {
		pkt, err := p.conn.ReceiveDatagram(ctx)
		if err != nil {
			return
		}
		if !t.events.push(Event{Type: EventReceive, Peer: p.id, Channel: 1, Data: pkt}) {
			return
		}
	}
}

func (t *QUIC) writePump(p *quicPeer) {
	w := bufio.NewWriter(p.stream)
	for {
		select {
		case pkt := <-p.send.ch:
			if pkt.datagram {
				if err := p.conn.SendDatagram(pkt.data); err == nil {
					continue
				}
			}
			if err := WriteStreamFrame(w, pkt.data); err != nil {
				return
			}
			if len(p.send.ch) == 0 {
				if err := w.Flush(); err != nil {
					return
				}
			}
		case <-p.send.done:
			_ = w.Flush()
			_ = p.stream.Close()
			return
		}
	}
}

func (t *QUIC) Poll(timeout time.Duration) (Event, bool) {
	return t.events.poll(timeout)
}

func (t *QUIC) Send(peer PeerID, _ uint8, data []byte, reliable bool) error {
	if t.events.isClosed() {
		return ErrTransportClosed
	}
	p, ok := t.peers.get(peer)
	if !ok {
		return ErrPeerNotFound
	}
	return p.send.enqueue(outPacket{data: data, datagram: !reliable && len(data) <= maxDatagramPayload})
}

// Flush 写协程在队列排空时刷新缓冲
func (t *QUIC) Flush() {}

func (t *QUIC) Close() error {
	t.events.close()
	t.cancel()
	for _, p := range t.peers.all() {
		p.send.stop()
		_ = p.conn.CloseWithError(0, "shutdown")
	}
	return t.ln.Close()
}

// WriteStreamFrame 可靠流上的分帧：[uint32 LE 长度][包]
func WriteStreamFrame(w io.Writer, pkt []byte) error {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(pkt)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(pkt)
	return err
}

// ReadStreamFrame 读取一个完整分帧
func ReadStreamFrame(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(hdr[:])
	if n > maxStreamFrame {
		return nil, fmt.Errorf("stream frame too large: %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DialQUIC 客户端连接（测试与压测机器人使用），返回已打开可靠流的连接
func DialQUIC(ctx context.Context, addr string) (*quic.Conn, *quic.Stream, error) {
	conf := &tls.Config{InsecureSkipVerify: true, NextProtos: []string{ALPN}}
	conn, err := quic.DialAddr(ctx, addr, conf, &quic.Config{EnableDatagrams: true})
	if err != nil {
		return nil, nil, err
	}
	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		_ = conn.CloseWithError(0, "")
		return nil, nil, err
	}
	return conn, stream, nil
}

func serverTLSConfig(certFile, keyFile string) (*tls.Config, error) {
	var cert tls.Certificate
	var err error
	if certFile != "" && keyFile != "" {
		cert, err = tls.LoadX509KeyPair(certFile, keyFile)
	} else {
		cert, err = selfSignedCert()
	}
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{ALPN},
		MinVersion:   tls.VersionTLS13,
	}, nil
}

// selfSignedCert 开发环境用的内存证书，不落盘
func selfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, err
	}
	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"Smuggler Dev"}},
		NotBefore:             time.Now().Add(-1 * time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour * 10),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, err
	}
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}, nil
}
