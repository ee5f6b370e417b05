package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"smuggler/protocol"
	"smuggler/transport"
)

const instrumentationName = "smuggler/server"

var (
	ErrMalformedPacket = errors.New("malformed packet")
	ErrUnknownProtocol = errors.New("unknown protocol")
)

// HandlerOption 注册处理器时的可选配置
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	immediate bool
	logged    bool
}

// Immediate 该协议在轮询协程上同步处理，不进入 Tick 队列；处理器不得访问房间状态
func Immediate() HandlerOption {
	return func(c *handlerConfig) { c.immediate = true }
}

// Logged 为处理器加上 debug 日志
func Logged() HandlerOption {
	return func(c *handlerConfig) { c.logged = true }
}

type invoker func(peer transport.PeerID, body []byte) (bool, error)

type route struct {
	invoke    invoker
	immediate bool
}

// Dispatcher 按协议号把包路由到类型化处理器。注册需在服务启动前完成
type Dispatcher struct {
	routes  map[protocol.EProtocol]route
	metrics *ServerMetrics

	handled  metric.Int64Counter
	rejected metric.Int64Counter
	failed   metric.Int64Counter
}

// NewDispatcher 使用全局 OTel meter（未配置 SDK 时为 no-op）
func NewDispatcher(metrics *ServerMetrics) (*Dispatcher, error) {
	if metrics == nil {
		metrics = &ServerMetrics{}
	}
	d := &Dispatcher{routes: make(map[protocol.EProtocol]route), metrics: metrics}
	m := otel.Meter(instrumentationName)

	var err error
	d.handled, err = m.Int64Counter("smuggler.packets.handled",
		metric.WithDescription("Packets accepted by their handler"))
	if err != nil {
		return nil, fmt.Errorf("creating handled counter: %w", err)
	}
	d.rejected, err = m.Int64Counter("smuggler.packets.rejected",
		metric.WithDescription("Packets rejected by their handler"))
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}
	d.failed, err = m.Int64Counter("smuggler.packets.failed",
		metric.WithDescription("Packets that were malformed or had no handler"))
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}
	return d, nil
}

// RegisterHandler 为协议号安装解码器与处理器，重复注册会覆盖
func RegisterHandler[T any](d *Dispatcher, id protocol.EProtocol, decode func([]byte) (T, error),
	handle func(transport.PeerID, T) bool, opts ...HandlerOption) {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	inv := func(peer transport.PeerID, body []byte) (bool, error) {
		msg, err := decode(body)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", ErrMalformedPacket, id, err)
		}
		return handle(peer, msg), nil
	}
	if cfg.logged {
		inner := inv
		inv = func(peer transport.PeerID, body []byte) (bool, error) {
			start := time.Now()
			ok, err := inner(peer, body)
			Log.Debugw("[RECV]", "protocol", id.String(), "peer", peer, "ok", ok, "err", err, "duration", time.Since(start))
			return ok, err
		}
	}
	d.routes[id] = route{invoke: inv, immediate: cfg.immediate}
}

// IsImmediate 该包是否走快速通道
func (d *Dispatcher) IsImmediate(packet []byte) bool {
	r, ok := d.routes[protocol.ExtractProtocolID(packet)]
	return ok && r.immediate
}

func (d *Dispatcher) HasHandler(id protocol.EProtocol) bool {
	_, ok := d.routes[id]
	return ok
}

// Dispatch 解析帧头并调用处理器。返回值 false 表示处理器拒绝；解码异常被恢复为 ErrMalformedPacket
func (d *Dispatcher) Dispatch(peer transport.PeerID, packet []byte) (ok bool, err error) {
	if len(packet) < protocol.HeaderSize {
		d.metrics.IncMalformed()
		d.failed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("reason", "short")))
		return false, fmt.Errorf("%w: %d bytes", ErrMalformedPacket, len(packet))
	}
	id := protocol.ExtractProtocolID(packet)
	r, found := d.routes[id]
	if !found {
		d.metrics.IncUnknown()
		d.failed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("reason", "unknown")))
		return false, fmt.Errorf("%w: %d", ErrUnknownProtocol, int32(id))
	}

	attrs := metric.WithAttributes(attribute.String("protocol", id.String()))
	defer func() {
		if rec := recover(); rec != nil {
			ok, err = false, fmt.Errorf("%w: %s: %v", ErrMalformedPacket, id, rec)
		}
		switch {
		case err != nil:
			d.metrics.IncMalformed()
			d.failed.Add(context.Background(), 1, attrs)
		case ok:
			d.metrics.IncHandled()
			d.handled.Add(context.Background(), 1, attrs)
		default:
			d.metrics.IncRejected()
			d.rejected.Add(context.Background(), 1, attrs)
		}
	}()
	return r.invoke(peer, protocol.Body(packet))
}
