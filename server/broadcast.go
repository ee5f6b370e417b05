package server

import (
	"smuggler/protocol"
)

func channelFor(reliable bool) uint8 {
	if reliable {
		return protocol.ChannelReliable
	}
	return protocol.ChannelUnreliable
}

// sendTo 发送失败只记录告警，不中断当前帧
func (r *Room) sendTo(p *Player, pkt []byte, reliable bool) {
	if r.out == nil || p.Peer == 0 {
		return
	}
	if err := r.out.Send(p.Peer, channelFor(reliable), pkt, reliable); err != nil {
		r.metrics.IncSendFailure()
		Log.Warnw("[SEND] failed", "room", r.Code, "seq", p.Sequence, "peer", p.Peer,
			"protocol", protocol.ExtractProtocolID(pkt).String(), "err", err)
		return
	}
	r.metrics.IncSent()
}

// broadcast 发给所有在线、已加载且有连接的玩家
func (r *Room) broadcast(pkt []byte, reliable bool) {
	for _, p := range r.sortedPlayers() {
		if p.reachable() {
			r.sendTo(p, pkt, reliable)
		}
	}
}

// BroadcastAddNotification 通知所有人（含本人）该玩家出现
func (r *Room) BroadcastAddNotification(p *Player) {
	r.broadcast(protocol.EncodeAddNotification([]protocol.ObjectInfo{p.objectInfo()}), true)
}

func (r *Room) BroadcastRemoveNotification(seqs ...int32) {
	if len(seqs) == 0 {
		return
	}
	r.broadcast(protocol.EncodeRemoveNotification(seqs), true)
}

func (r *Room) BroadcastChangeState(p *Player) {
	r.broadcast(protocol.EncodeChangeState(protocol.StateChange{
		Sequence: p.Sequence,
		State:    protocol.EObjectState(p.State),
		HP:       p.HP(),
		MaxHP:    p.MaxHP(),
		X:        p.X,
		Y:        p.Y,
	}), true)
}

func (r *Room) BroadcastAttackResult(res AttackResult) {
	r.broadcast(protocol.EncodeSyncAttack(res.sync()), false)
}

func (r *Room) BroadcastChat(p *Player, message string) {
	r.broadcast(protocol.EncodeChatNotification(protocol.ChatNotification{
		Sequence: p.Sequence,
		UserName: p.Name,
		Message:  message,
		X:        p.X,
		Y:        p.Y,
	}), true)
}

// SendExistingPlayers 把房间里其他可见玩家发给新加入者
func (r *Room) SendExistingPlayers(target *Player) {
	var list []protocol.ObjectInfo
	for _, p := range r.sortedPlayers() {
		if p.Sequence == target.Sequence || p.Disconnected || !p.LoadCompleted || p.RemoveSent {
			continue
		}
		list = append(list, p.objectInfo())
	}
	if len(list) == 0 {
		return
	}
	r.sendTo(target, protocol.EncodeAddNotification(list), true)
}

// SendBlockLayout 把墙体布局发给新加入者
func (r *Room) SendBlockLayout(target *Player) {
	if len(r.blocks) == 0 {
		return
	}
	list := make([]protocol.ObjectInfo, 0, len(r.blocks))
	for _, b := range r.Blocks() {
		list = append(list, b.objectInfo())
	}
	r.sendTo(target, protocol.EncodeAddNotification(list), true)
}
