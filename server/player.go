package server

import "smuggler/transport"

// PlayerMaxHP 玩家满血值
const PlayerMaxHP = 100

// Player 房间内的玩家实体（服务端权威状态），归属其所在 Room
type Player struct {
	Entity

	Peer       transport.PeerID // 0 表示无连接
	SessionKey int32            // 发放时的会话密钥，重新认证后旧对象随之失效

	LoadCompleted bool
	Disconnected  bool
	RemoveSent    bool

	LastReceivedTime int64
	DisconnectTime   int64
	DeathTime        int64
	DeathAnimID      int32
}

func newPlayer(seq int32, peer transport.PeerID, sessionKey int32, name string, appearanceID int32) *Player {
	p := &Player{
		Entity:     newEntity(KindPlayer, seq, PlayerMaxHP),
		Peer:       peer,
		SessionKey: sessionKey,
	}
	p.Name = name
	p.AppearanceID = appearanceID
	return p
}

// reachable 是否可作为广播目标：在线、已加载且有连接
func (p *Player) reachable() bool {
	return !p.Disconnected && p.LoadCompleted && p.Peer != 0
}
