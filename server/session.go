package server

import (
	"smuggler/transport"
)

// IdentityStore 设备号 → 玩家序号的持久化；nil 表示只在内存中保存
type IdentityStore interface {
	Save(deviceKey string, seq int32)
}

// SessionRegistry 服务器范围的身份表：设备号、玩家序号、会话密钥与连接之间的映射。
// 由 Server 持有并传给处理器，仅在 Tick 协程中访问
type SessionRegistry struct {
	nextSequence   int32
	nextSessionKey int32

	deviceSeqs  map[string]int32
	sessionKeys map[int32]int32
	userNames   map[int32]string
	peerSeqs    map[transport.PeerID]int32
	seqPeers    map[int32]transport.PeerID

	store IdentityStore
}

func NewSessionRegistry(cfg SessionConfig, store IdentityStore) *SessionRegistry {
	return &SessionRegistry{
		nextSequence:   cfg.FirstPlayerSequence,
		nextSessionKey: cfg.FirstSessionKey,
		deviceSeqs:     make(map[string]int32),
		sessionKeys:    make(map[int32]int32),
		userNames:      make(map[int32]string),
		peerSeqs:       make(map[transport.PeerID]int32),
		seqPeers:       make(map[int32]transport.PeerID),
		store:          store,
	}
}

// Restore 载入已持久化的身份，并把序号分配器推进到其后
func (s *SessionRegistry) Restore(identities map[string]int32) {
	for dev, seq := range identities {
		s.deviceSeqs[dev] = seq
		if seq >= s.nextSequence {
			s.nextSequence = seq + 1
		}
	}
}

// GetOrCreatePlayerSequence 同一设备始终得到同一序号
func (s *SessionRegistry) GetOrCreatePlayerSequence(deviceKey string) (int32, bool) {
	if seq, ok := s.deviceSeqs[deviceKey]; ok {
		return seq, false
	}
	seq := s.nextSequence
	s.nextSequence++
	s.deviceSeqs[deviceKey] = seq
	if s.store != nil {
		s.store.Save(deviceKey, seq)
	}
	return seq, true
}

// IssueSession 发放新会话密钥，覆盖旧值
func (s *SessionRegistry) IssueSession(seq int32) int32 {
	key := s.nextSessionKey
	s.nextSessionKey++
	s.sessionKeys[seq] = key
	return key
}

func (s *SessionRegistry) ValidateSessionKey(seq, key int32) bool {
	cur, ok := s.sessionKeys[seq]
	return ok && cur == key
}

// BindConnection 绑定连接；同一序号的旧连接解除绑定
func (s *SessionRegistry) BindConnection(peer transport.PeerID, seq int32) {
	if old, ok := s.seqPeers[seq]; ok && old != peer {
		delete(s.peerSeqs, old)
	}
	if oldSeq, ok := s.peerSeqs[peer]; ok && oldSeq != seq {
		delete(s.seqPeers, oldSeq)
	}
	s.peerSeqs[peer] = seq
	s.seqPeers[seq] = peer
}

func (s *SessionRegistry) UnbindConnection(peer transport.PeerID) {
	if seq, ok := s.peerSeqs[peer]; ok {
		delete(s.peerSeqs, peer)
		if s.seqPeers[seq] == peer {
			delete(s.seqPeers, seq)
		}
	}
}

func (s *SessionRegistry) PlayerSequence(peer transport.PeerID) (int32, bool) {
	seq, ok := s.peerSeqs[peer]
	return seq, ok
}

func (s *SessionRegistry) Peer(seq int32) (transport.PeerID, bool) {
	p, ok := s.seqPeers[seq]
	return p, ok
}

func (s *SessionRegistry) SetUserName(seq int32, name string) { s.userNames[seq] = name }

func (s *SessionRegistry) UserName(seq int32) string { return s.userNames[seq] }

// Expire 清理会话、昵称与连接绑定；设备号对应的序号保留，重连后沿用
func (s *SessionRegistry) Expire(seq int32) {
	delete(s.sessionKeys, seq)
	delete(s.userNames, seq)
	if peer, ok := s.seqPeers[seq]; ok {
		delete(s.seqPeers, seq)
		if s.peerSeqs[peer] == seq {
			delete(s.peerSeqs, peer)
		}
	}
}

func (s *SessionRegistry) ActiveSessions() int { return len(s.sessionKeys) }
