package server

import (
	"time"
	"unicode/utf8"

	"smuggler/protocol"
	"smuggler/transport"
)

const maxChatRunes = 200

func (s *Server) registerHandlers() {
	d := s.dispatcher
	RegisterHandler(d, protocol.EProtocolCL_AuthRequest, protocol.DecodeAuthRequest, s.onAuth, Logged())
	RegisterHandler(d, protocol.EProtocolCS_LoadCompleteRequest, protocol.DecodeLoadCompleteRequest, s.onLoadComplete, Logged())
	RegisterHandler(d, protocol.EProtocolCS_MoveNotification, protocol.DecodeMoveNotification, s.onMove)
	RegisterHandler(d, protocol.EProtocolCS_Heartbeat, protocol.DecodeHeartbeat, s.onHeartbeat)
	RegisterHandler(d, protocol.EProtocolCS_AttackRequest, protocol.DecodeAttackRequest, s.onAttack, Logged())
	RegisterHandler(d, protocol.EProtocolCS_ChatRequest, protocol.DecodeChatRequest, s.onChat, Logged())
	RegisterHandler(d, protocol.EProtocolCS_Ping, protocol.DecodePing, s.onPing, Immediate())
}

func (s *Server) send(peer transport.PeerID, pkt []byte, reliable bool) {
	if err := s.tr.Send(peer, channelFor(reliable), pkt, reliable); err != nil {
		s.metrics.IncSendFailure()
		Log.Warnw("[SEND] failed", "peer", peer, "protocol", protocol.ExtractProtocolID(pkt).String(), "err", err)
		return
	}
	s.metrics.IncSent()
}

// authorize 按连接找到玩家并校验会话密钥
func (s *Server) authorize(peer transport.PeerID, key int32, what string) (*Room, *Player, bool) {
	seq, ok := s.sessions.PlayerSequence(peer)
	if !ok || !s.sessions.ValidateSessionKey(seq, key) {
		Log.Warnw("[RECV] invalid session", "what", what, "peer", peer, "seq", seq, "key", key)
		return nil, nil, false
	}
	room, p, ok := s.rooms.Locate(seq)
	if !ok {
		Log.Warnw("[RECV] player not in a room", "what", what, "peer", peer, "seq", seq)
		return nil, nil, false
	}
	if p.SessionKey != key {
		Log.Warnw("[RECV] stale player object", "what", what, "peer", peer, "seq", seq)
		return nil, nil, false
	}
	// 超时断线的玩家已对其他客户端移除，需重新认证
	if p.Disconnected {
		Log.Debugw("[RECV] player timed out", "what", what, "peer", peer, "seq", seq)
		return nil, nil, false
	}
	return room, p, true
}

func (s *Server) onAuth(peer transport.PeerID, m protocol.AuthRequest) bool {
	if m.DeviceKey == "" {
		Log.Warnw("[RECV] auth without device key", "peer", peer)
		return false
	}
	// 先确认有房间可放，失败时不发放会话
	if _, err := s.rooms.EnsureCapacity(); err != nil {
		Log.Errorw("[RECV] auth rejected, no room available", "peer", peer, "device", m.DeviceKey, "err", err)
		return false
	}

	seq, created := s.sessions.GetOrCreatePlayerSequence(m.DeviceKey)
	if old, ok := s.sessions.PlayerSequence(peer); ok && old != seq {
		s.rooms.DetachSequence(old)
	}
	// 同一设备重复登录：旧的玩家对象先移出房间
	s.rooms.DetachSequence(seq)

	key := s.sessions.IssueSession(seq)
	s.sessions.SetUserName(seq, m.UserName)
	s.sessions.BindConnection(peer, seq)
	Log.Infow("[RECV] auth", "peer", peer, "device", m.DeviceKey, "name", m.UserName, "seq", seq, "new", created)

	s.send(peer, protocol.EncodeAuthResponse(protocol.AuthResponse{SessionKey: key, PlayerSequence: seq}), true)

	if _, _, err := s.rooms.PlacePlayer(peer, seq, key, m.UserName, m.AppearanceID, s.Now()); err != nil {
		Log.Errorw("placement failed after auth", "peer", peer, "seq", seq, "err", err)
		return false
	}
	return true
}

func (s *Server) onLoadComplete(peer transport.PeerID, m protocol.LoadComplete) bool {
	room, p, ok := s.authorize(peer, m.SessionKey, "load_complete")
	if !ok {
		return false
	}
	s.send(peer, protocol.EncodeLoadCompleteResponse(protocol.AuthResponse{
		SessionKey:     m.SessionKey,
		PlayerSequence: p.Sequence,
	}), true)

	p.LoadCompleted = true
	p.LastReceivedTime = s.Now()
	room.SendExistingPlayers(p)
	room.SendBlockLayout(p)
	room.BroadcastAddNotification(p)
	return true
}

func (s *Server) onMove(peer transport.PeerID, m protocol.MoveNotification) bool {
	room, p, ok := s.authorize(peer, m.SessionKey, "move")
	if !ok || p.IsDead() {
		return false
	}
	p.LastReceivedTime = s.Now()
	return room.QueueMoveAction(MoveAction{
		PlayerSequence: p.Sequence,
		X:              m.X,
		Y:              m.Y,
		Direction:      m.Direction,
		MoveFlag:       m.MoveFlag,
		AimDirection:   m.AimDirection,
	})
}

func (s *Server) onHeartbeat(peer transport.PeerID, m protocol.Heartbeat) bool {
	_, p, ok := s.authorize(peer, m.SessionKey, "heartbeat")
	if !ok {
		return false
	}
	p.LastReceivedTime = s.Now()
	return true
}

func (s *Server) onAttack(peer transport.PeerID, m protocol.AttackRequest) bool {
	room, p, ok := s.authorize(peer, m.SessionKey, "attack")
	if !ok || p.IsDead() {
		return false
	}
	now := s.Now()
	p.LastReceivedTime = now

	res := room.ProcessAttack(p.Sequence, m.AttackID, m.X, m.Y, m.AimDirection)
	target := room.ApplyAttackResult(&res, now)
	room.BroadcastAttackResult(res)
	if res.IsDead && target != nil {
		room.BroadcastChangeState(target)
	}
	return true
}

func (s *Server) onChat(peer transport.PeerID, m protocol.ChatRequest) bool {
	room, p, ok := s.authorize(peer, m.SessionKey, "chat")
	if !ok || m.Message == "" {
		return false
	}
	msg := m.Message
	if utf8.RuneCountInString(msg) > maxChatRunes {
		msg = string([]rune(msg)[:maxChatRunes])
	}
	p.LastReceivedTime = s.Now()
	room.BroadcastChat(p, msg)
	return true
}

// onPing 快速通道：在轮询协程上直接回 Pong，不触碰房间状态
func (s *Server) onPing(peer transport.PeerID, m protocol.Ping) bool {
	s.metrics.IncPing()
	s.send(peer, protocol.EncodePong(protocol.Pong{
		ClientTick: m.ClientTick,
		ServerTick: time.Now().UnixMilli(),
	}), false)
	s.tr.Flush()
	return true
}
