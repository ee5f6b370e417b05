package server

import "smuggler/protocol"

// ObjectKind 对象种类，取值与协议 EObjectType 一致
type ObjectKind int32

const (
	KindPlayer ObjectKind = ObjectKind(protocol.EObjectTypePlayer)
	KindNPC    ObjectKind = ObjectKind(protocol.EObjectTypeNPC)
	KindBlock  ObjectKind = ObjectKind(protocol.EObjectTypeBlock)
)

type ObjectState int32

const (
	StateNormal ObjectState = ObjectState(protocol.EObjectStateNormal)
	StateDead   ObjectState = ObjectState(protocol.EObjectStateDead)
)

// Entity 三类对象共享的标量状态；hp 始终在 [0, maxHP] 内，maxHP ≥ 1
type Entity struct {
	Kind         ObjectKind
	Sequence     int32
	X, Y         float32
	Direction    int32
	AimDirection int32
	MoveFlag     int32
	State        ObjectState
	Name         string
	AppearanceID int32

	hp    int32
	maxHP int32
}

func newEntity(kind ObjectKind, seq int32, maxHP int32) Entity {
	e := Entity{Kind: kind, Sequence: seq}
	e.SetMaxHP(maxHP)
	e.hp = e.maxHP
	return e
}

func (e *Entity) HP() int32    { return e.hp }
func (e *Entity) MaxHP() int32 { return e.maxHP }

func (e *Entity) SetMaxHP(v int32) {
	e.maxHP = max(v, 1)
	e.hp = min(e.hp, e.maxHP)
}

func (e *Entity) SetHP(v int32) {
	e.hp = min(max(v, 0), e.maxHP)
}

// Damage 扣血并返回剩余 hp
func (e *Entity) Damage(n int32) int32 {
	e.SetHP(e.hp - n)
	return e.hp
}

func (e *Entity) IsDead() bool { return e.State == StateDead }

func (e *Entity) SetPosition(x, y float32) {
	e.X, e.Y = x, y
}

func (e *Entity) objectInfo() protocol.ObjectInfo {
	return protocol.ObjectInfo{
		Sequence:     e.Sequence,
		ObjectType:   protocol.EObjectType(e.Kind),
		Name:         e.Name,
		AppearanceID: e.AppearanceID,
		X:            e.X,
		Y:            e.Y,
		Direction:    e.Direction,
		AimDirection: e.AimDirection,
		MoveFlag:     e.MoveFlag,
		HP:           e.hp,
		MaxHP:        e.maxHP,
		State:        protocol.EObjectState(e.State),
	}
}

// Block 静态障碍，房间创建时生成，hp 不会被扣减
type Block struct {
	Entity
	TemplateID int32
}

const (
	wallTemplateID = 1
	wallHP         = 100
)

func newBlock(seq int32, x, y float32) *Block {
	b := &Block{Entity: newEntity(KindBlock, seq, wallHP), TemplateID: wallTemplateID}
	b.Name = "wall"
	b.AppearanceID = wallTemplateID
	b.SetPosition(x, y)
	return b
}

// NPCState NPC 状态机的状态集合
type NPCState int

const (
	NPCIdle NPCState = iota
	NPCChase
	NPCAttack
	NPCReturnToSpawn
	NPCDead
)

type NPC struct {
	Entity
	FSM            NPCState
	SpawnX, SpawnY float32
}

func newNPC(seq int32, x, y float32, maxHP int32) *NPC {
	n := &NPC{Entity: newEntity(KindNPC, seq, maxHP), SpawnX: x, SpawnY: y}
	n.SetPosition(x, y)
	return n
}

// Update NPC 暂无行为，状态保持不变
func (n *NPC) Update(now int64) {}
