package server

import "smuggler/protocol"

// MoveAction 客户端上报的一次移动，当帧入队、帧末批量广播
type MoveAction struct {
	PlayerSequence int32
	X, Y           float32
	Direction      int32
	MoveFlag       int32
	AimDirection   int32
}

func (a MoveAction) sync() protocol.MoveSync {
	return protocol.MoveSync{
		Sequence:     a.PlayerSequence,
		X:            a.X,
		Y:            a.Y,
		Direction:    a.Direction,
		MoveFlag:     a.MoveFlag,
		AimDirection: a.AimDirection,
	}
}

// AttackResult 一次命中判定的结果
type AttackResult struct {
	AttackerSequence int32
	AttackID         int32
	IsHit            bool
	TargetSequence   int32
	StartX, StartY   float32
	EndX, EndY       float32
	Damage           int32
	TargetCurrentHP  int32
	IsDead           bool
	DeathAnimID      int32
}

func (r AttackResult) sync() protocol.AttackSync {
	return protocol.AttackSync{
		AttackerSequence: r.AttackerSequence,
		AttackID:         r.AttackID,
		IsHit:            r.IsHit,
		TargetSequence:   r.TargetSequence,
		StartX:           r.StartX,
		StartY:           r.StartY,
		EndX:             r.EndX,
		EndY:             r.EndY,
		Damage:           r.Damage,
		TargetCurrentHP:  r.TargetCurrentHP,
		IsDead:           r.IsDead,
		DeathAnimID:      r.DeathAnimID,
	}
}
