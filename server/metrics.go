package server

import (
	"sync/atomic"
)

// ServerMetrics 记录服务器运行期的关键指标（用于监控与调试）
type ServerMetrics struct {
	TickCount       int64 // Tick 次数
	TotalTickNs     int64 // Tick 累计耗时（纳秒）
	PacketsQueued   int64 // 进入入站队列的包
	PacketsHandled  int64 // 处理器返回成功的包
	PacketsRejected int64 // 处理器拒绝的包（会话无效等）
	Malformed       int64 // 头部过短或解码失败
	UnknownProtocol int64 // 未注册的协议号
	Pings           int64 // 快速通道处理的 Ping
	PacketsSent     int64
	SendFailures    int64
	Connects        int64
	Disconnects     int64
	RoomsCreated    int64
	RoomsRemoved    int64
}

func (m *ServerMetrics) IncQueued()      { atomic.AddInt64(&m.PacketsQueued, 1) }
func (m *ServerMetrics) IncHandled()     { atomic.AddInt64(&m.PacketsHandled, 1) }
func (m *ServerMetrics) IncRejected()    { atomic.AddInt64(&m.PacketsRejected, 1) }
func (m *ServerMetrics) IncMalformed()   { atomic.AddInt64(&m.Malformed, 1) }
func (m *ServerMetrics) IncUnknown()     { atomic.AddInt64(&m.UnknownProtocol, 1) }
func (m *ServerMetrics) IncPing()        { atomic.AddInt64(&m.Pings, 1) }
func (m *ServerMetrics) IncSent()        { atomic.AddInt64(&m.PacketsSent, 1) }
func (m *ServerMetrics) IncSendFailure() { atomic.AddInt64(&m.SendFailures, 1) }
func (m *ServerMetrics) IncConnect()     { atomic.AddInt64(&m.Connects, 1) }
func (m *ServerMetrics) IncDisconnect()  { atomic.AddInt64(&m.Disconnects, 1) }
func (m *ServerMetrics) IncRoomCreated() { atomic.AddInt64(&m.RoomsCreated, 1) }
func (m *ServerMetrics) IncRoomRemoved() { atomic.AddInt64(&m.RoomsRemoved, 1) }
func (m *ServerMetrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *ServerMetrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":       tick,
		"avg_tick_ms":      avgMs,
		"packets_queued":   atomic.LoadInt64(&m.PacketsQueued),
		"packets_handled":  atomic.LoadInt64(&m.PacketsHandled),
		"packets_rejected": atomic.LoadInt64(&m.PacketsRejected),
		"malformed":        atomic.LoadInt64(&m.Malformed),
		"unknown_protocol": atomic.LoadInt64(&m.UnknownProtocol),
		"pings":            atomic.LoadInt64(&m.Pings),
		"packets_sent":     atomic.LoadInt64(&m.PacketsSent),
		"send_failures":    atomic.LoadInt64(&m.SendFailures),
		"connects":         atomic.LoadInt64(&m.Connects),
		"disconnects":      atomic.LoadInt64(&m.Disconnects),
		"rooms_created":    atomic.LoadInt64(&m.RoomsCreated),
		"rooms_removed":    atomic.LoadInt64(&m.RoomsRemoved),
	}
}
