package protocol

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// ErrShortBody is returned when a body is too small to hold a FlatBuffers root offset.
var ErrShortBody = errors.New("protocol: body too short")

// Size estimate of one SC_SyncMove body: fixed overhead plus one MMoveSync per entry.
const (
	SyncMoveBaseSize  = 32
	SyncMoveEntrySize = 24
)

func checkBody(id EProtocol, body []byte) error {
	if len(body) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%s: %w", id, ErrShortBody)
	}
	return nil
}

func finish(b *flatbuffers.Builder, id EProtocol, root flatbuffers.UOffsetT) []byte {
	b.Finish(root)
	return Frame(id, b.FinishedBytes())
}

// ---- client → server ----

type AuthRequest struct {
	DeviceKey    string
	UserName     string
	AppearanceID int32
}

func EncodeAuthRequest(m AuthRequest) []byte {
	b := flatbuffers.NewBuilder(64)
	dk := b.CreateString(m.DeviceKey)
	un := b.CreateString(m.UserName)
	CLAuthRequestStart(b)
	CLAuthRequestAddDeviceKey(b, dk)
	CLAuthRequestAddUserName(b, un)
	CLAuthRequestAddAppearanceId(b, m.AppearanceID)
	CLAuthRequestAddProtocol(b, EProtocolCL_AuthRequest)
	return finish(b, EProtocolCL_AuthRequest, CLAuthRequestEnd(b))
}

func DecodeAuthRequest(body []byte) (AuthRequest, error) {
	if err := checkBody(EProtocolCL_AuthRequest, body); err != nil {
		return AuthRequest{}, err
	}
	t := GetRootAsCLAuthRequest(body, 0)
	return AuthRequest{
		DeviceKey:    string(t.DeviceKey()),
		UserName:     string(t.UserName()),
		AppearanceID: t.AppearanceId(),
	}, nil
}

type LoadComplete struct {
	SessionKey int32
}

func EncodeLoadCompleteRequest(m LoadComplete) []byte {
	b := flatbuffers.NewBuilder(16)
	CSLoadCompleteRequestStart(b)
	CSLoadCompleteRequestAddSessionKey(b, m.SessionKey)
	CSLoadCompleteRequestAddProtocol(b, EProtocolCS_LoadCompleteRequest)
	return finish(b, EProtocolCS_LoadCompleteRequest, CSLoadCompleteRequestEnd(b))
}

func DecodeLoadCompleteRequest(body []byte) (LoadComplete, error) {
	if err := checkBody(EProtocolCS_LoadCompleteRequest, body); err != nil {
		return LoadComplete{}, err
	}
	return LoadComplete{SessionKey: GetRootAsCSLoadCompleteRequest(body, 0).SessionKey()}, nil
}

// MoveNotification is a client-reported position update.
type MoveNotification struct {
	SessionKey   int32
	X, Y         float32
	Direction    int32
	MoveFlag     int32
	AimDirection int32
}

func EncodeMoveNotification(m MoveNotification) []byte {
	b := flatbuffers.NewBuilder(48)
	CSMoveNotificationStart(b)
	CSMoveNotificationAddSessionKey(b, m.SessionKey)
	CSMoveNotificationAddPositionX(b, m.X)
	CSMoveNotificationAddPositionY(b, m.Y)
	CSMoveNotificationAddDirection(b, m.Direction)
	CSMoveNotificationAddMoveFlag(b, m.MoveFlag)
	CSMoveNotificationAddAimDirection(b, m.AimDirection)
	CSMoveNotificationAddProtocol(b, EProtocolCS_MoveNotification)
	return finish(b, EProtocolCS_MoveNotification, CSMoveNotificationEnd(b))
}

func DecodeMoveNotification(body []byte) (MoveNotification, error) {
	if err := checkBody(EProtocolCS_MoveNotification, body); err != nil {
		return MoveNotification{}, err
	}
	t := GetRootAsCSMoveNotification(body, 0)
	return MoveNotification{
		SessionKey:   t.SessionKey(),
		X:            t.PositionX(),
		Y:            t.PositionY(),
		Direction:    t.Direction(),
		MoveFlag:     t.MoveFlag(),
		AimDirection: t.AimDirection(),
	}, nil
}

type Heartbeat struct {
	SessionKey int32
}

func EncodeHeartbeat(m Heartbeat) []byte {
	b := flatbuffers.NewBuilder(16)
	CSHeartbeatStart(b)
	CSHeartbeatAddSessionKey(b, m.SessionKey)
	CSHeartbeatAddProtocol(b, EProtocolCS_Heartbeat)
	return finish(b, EProtocolCS_Heartbeat, CSHeartbeatEnd(b))
}

func DecodeHeartbeat(body []byte) (Heartbeat, error) {
	if err := checkBody(EProtocolCS_Heartbeat, body); err != nil {
		return Heartbeat{}, err
	}
	return Heartbeat{SessionKey: GetRootAsCSHeartbeat(body, 0).SessionKey()}, nil
}

type AttackRequest struct {
	SessionKey   int32
	AttackID     int32
	X, Y         float32
	AimDirection int32
}

func EncodeAttackRequest(m AttackRequest) []byte {
	b := flatbuffers.NewBuilder(48)
	CSAttackRequestStart(b)
	CSAttackRequestAddSessionKey(b, m.SessionKey)
	CSAttackRequestAddAttackId(b, m.AttackID)
	CSAttackRequestAddPositionX(b, m.X)
	CSAttackRequestAddPositionY(b, m.Y)
	CSAttackRequestAddAimDirection(b, m.AimDirection)
	CSAttackRequestAddProtocol(b, EProtocolCS_AttackRequest)
	return finish(b, EProtocolCS_AttackRequest, CSAttackRequestEnd(b))
}

func DecodeAttackRequest(body []byte) (AttackRequest, error) {
	if err := checkBody(EProtocolCS_AttackRequest, body); err != nil {
		return AttackRequest{}, err
	}
	t := GetRootAsCSAttackRequest(body, 0)
	return AttackRequest{
		SessionKey:   t.SessionKey(),
		AttackID:     t.AttackId(),
		X:            t.PositionX(),
		Y:            t.PositionY(),
		AimDirection: t.AimDirection(),
	}, nil
}

type ChatRequest struct {
	SessionKey int32
	Message    string
}

func EncodeChatRequest(m ChatRequest) []byte {
	b := flatbuffers.NewBuilder(64)
	msg := b.CreateString(m.Message)
	CSChatRequestStart(b)
	CSChatRequestAddSessionKey(b, m.SessionKey)
	CSChatRequestAddMessage(b, msg)
	CSChatRequestAddProtocol(b, EProtocolCS_ChatRequest)
	return finish(b, EProtocolCS_ChatRequest, CSChatRequestEnd(b))
}

func DecodeChatRequest(body []byte) (ChatRequest, error) {
	if err := checkBody(EProtocolCS_ChatRequest, body); err != nil {
		return ChatRequest{}, err
	}
	t := GetRootAsCSChatRequest(body, 0)
	return ChatRequest{SessionKey: t.SessionKey(), Message: string(t.Message())}, nil
}

type Ping struct {
	ClientTick int64
}

func EncodePing(m Ping) []byte {
	b := flatbuffers.NewBuilder(24)
	CSPingStart(b)
	CSPingAddClientTick(b, m.ClientTick)
	CSPingAddProtocol(b, EProtocolCS_Ping)
	return finish(b, EProtocolCS_Ping, CSPingEnd(b))
}

func DecodePing(body []byte) (Ping, error) {
	if err := checkBody(EProtocolCS_Ping, body); err != nil {
		return Ping{}, err
	}
	return Ping{ClientTick: GetRootAsCSPing(body, 0).ClientTick()}, nil
}

// ---- server → client ----

type AuthResponse struct {
	SessionKey     int32
	PlayerSequence int32
}

func EncodeAuthResponse(m AuthResponse) []byte {
	b := flatbuffers.NewBuilder(24)
	LCAuthResponseStart(b)
	LCAuthResponseAddSessionKey(b, m.SessionKey)
	LCAuthResponseAddPlayerSequence(b, m.PlayerSequence)
	LCAuthResponseAddProtocol(b, EProtocolLC_AuthResponse)
	return finish(b, EProtocolLC_AuthResponse, LCAuthResponseEnd(b))
}

func DecodeAuthResponse(body []byte) (AuthResponse, error) {
	if err := checkBody(EProtocolLC_AuthResponse, body); err != nil {
		return AuthResponse{}, err
	}
	t := GetRootAsLCAuthResponse(body, 0)
	return AuthResponse{SessionKey: t.SessionKey(), PlayerSequence: t.PlayerSequence()}, nil
}

func EncodeLoadCompleteResponse(m AuthResponse) []byte {
	b := flatbuffers.NewBuilder(24)
	SCLoadCompleteResponseStart(b)
	SCLoadCompleteResponseAddSessionKey(b, m.SessionKey)
	SCLoadCompleteResponseAddPlayerSequence(b, m.PlayerSequence)
	SCLoadCompleteResponseAddProtocol(b, EProtocolSC_LoadCompleteResponse)
	return finish(b, EProtocolSC_LoadCompleteResponse, SCLoadCompleteResponseEnd(b))
}

type EnterRoom struct {
	RoomCode       string
	PlayerSequence int32
	X, Y           float32
}

func EncodeEnterRoom(m EnterRoom) []byte {
	b := flatbuffers.NewBuilder(48)
	code := b.CreateString(m.RoomCode)
	SCEnterRoomStart(b)
	SCEnterRoomAddRoomCode(b, code)
	SCEnterRoomAddPlayerSequence(b, m.PlayerSequence)
	SCEnterRoomAddPositionX(b, m.X)
	SCEnterRoomAddPositionY(b, m.Y)
	SCEnterRoomAddProtocol(b, EProtocolSC_EnterRoom)
	return finish(b, EProtocolSC_EnterRoom, SCEnterRoomEnd(b))
}

func DecodeEnterRoom(body []byte) (EnterRoom, error) {
	if err := checkBody(EProtocolSC_EnterRoom, body); err != nil {
		return EnterRoom{}, err
	}
	t := GetRootAsSCEnterRoom(body, 0)
	return EnterRoom{
		RoomCode:       string(t.RoomCode()),
		PlayerSequence: t.PlayerSequence(),
		X:              t.PositionX(),
		Y:              t.PositionY(),
	}, nil
}

// MoveSync is one entry of an SC_SyncMove batch.
type MoveSync struct {
	Sequence     int32
	X, Y         float32
	Direction    int32
	MoveFlag     int32
	AimDirection int32
}

// SyncMoveSize estimates the body size of an SC_SyncMove carrying n entries.
func SyncMoveSize(n int) int {
	return SyncMoveBaseSize + n*SyncMoveEntrySize
}

func EncodeSyncMove(list []MoveSync) []byte {
	b := flatbuffers.NewBuilder(SyncMoveSize(len(list)))
	SCSyncMoveStartSyncListVector(b, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		m := list[i]
		CreateMMoveSync(b, m.Sequence, m.X, m.Y, m.Direction, m.MoveFlag, m.AimDirection)
	}
	vec := b.EndVector(len(list))
	SCSyncMoveStart(b)
	SCSyncMoveAddSyncList(b, vec)
	SCSyncMoveAddProtocol(b, EProtocolSC_SyncMove)
	return finish(b, EProtocolSC_SyncMove, SCSyncMoveEnd(b))
}

func DecodeSyncMove(body []byte) ([]MoveSync, error) {
	if err := checkBody(EProtocolSC_SyncMove, body); err != nil {
		return nil, err
	}
	t := GetRootAsSCSyncMove(body, 0)
	out := make([]MoveSync, 0, t.SyncListLength())
	var e MMoveSync
	for i := 0; i < t.SyncListLength(); i++ {
		t.SyncList(&e, i)
		out = append(out, MoveSync{
			Sequence:     e.Sequence(),
			X:            e.PositionX(),
			Y:            e.PositionY(),
			Direction:    e.Direction(),
			MoveFlag:     e.MoveFlag(),
			AimDirection: e.AimDirection(),
		})
	}
	return out, nil
}

// AttackSync mirrors a resolved attack for SC_SyncAttack.
type AttackSync struct {
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

func EncodeSyncAttack(m AttackSync) []byte {
	b := flatbuffers.NewBuilder(80)
	SCSyncAttackStart(b)
	SCSyncAttackAddAttackerSequence(b, m.AttackerSequence)
	SCSyncAttackAddAttackId(b, m.AttackID)
	SCSyncAttackAddIsHit(b, m.IsHit)
	SCSyncAttackAddTargetSequence(b, m.TargetSequence)
	SCSyncAttackAddStartX(b, m.StartX)
	SCSyncAttackAddStartY(b, m.StartY)
	SCSyncAttackAddEndX(b, m.EndX)
	SCSyncAttackAddEndY(b, m.EndY)
	SCSyncAttackAddDamage(b, m.Damage)
	SCSyncAttackAddTargetCurrentHp(b, m.TargetCurrentHP)
	SCSyncAttackAddIsDead(b, m.IsDead)
	SCSyncAttackAddDeathAnimId(b, m.DeathAnimID)
	SCSyncAttackAddProtocol(b, EProtocolSC_SyncAttack)
	return finish(b, EProtocolSC_SyncAttack, SCSyncAttackEnd(b))
}

func DecodeSyncAttack(body []byte) (AttackSync, error) {
	if err := checkBody(EProtocolSC_SyncAttack, body); err != nil {
		return AttackSync{}, err
	}
	t := GetRootAsSCSyncAttack(body, 0)
	return AttackSync{
		AttackerSequence: t.AttackerSequence(),
		AttackID:         t.AttackId(),
		IsHit:            t.IsHit(),
		TargetSequence:   t.TargetSequence(),
		StartX:           t.StartX(),
		StartY:           t.StartY(),
		EndX:             t.EndX(),
		EndY:             t.EndY(),
		Damage:           t.Damage(),
		TargetCurrentHP:  t.TargetCurrentHp(),
		IsDead:           t.IsDead(),
		DeathAnimID:      t.DeathAnimId(),
	}, nil
}

type ChatNotification struct {
	Sequence int32
	UserName string
	Message  string
	X, Y     float32
}

func EncodeChatNotification(m ChatNotification) []byte {
	b := flatbuffers.NewBuilder(96)
	name := b.CreateString(m.UserName)
	msg := b.CreateString(m.Message)
	SCChatNotificationStart(b)
	SCChatNotificationAddSequence(b, m.Sequence)
	SCChatNotificationAddUserName(b, name)
	SCChatNotificationAddMessage(b, msg)
	SCChatNotificationAddPositionX(b, m.X)
	SCChatNotificationAddPositionY(b, m.Y)
	SCChatNotificationAddProtocol(b, EProtocolSC_ChatNotification)
	return finish(b, EProtocolSC_ChatNotification, SCChatNotificationEnd(b))
}

func DecodeChatNotification(body []byte) (ChatNotification, error) {
	if err := checkBody(EProtocolSC_ChatNotification, body); err != nil {
		return ChatNotification{}, err
	}
	t := GetRootAsSCChatNotification(body, 0)
	return ChatNotification{
		Sequence: t.Sequence(),
		UserName: string(t.UserName()),
		Message:  string(t.Message()),
		X:        t.PositionX(),
		Y:        t.PositionY(),
	}, nil
}

type Pong struct {
	ClientTick int64
	ServerTick int64
}

func EncodePong(m Pong) []byte {
	b := flatbuffers.NewBuilder(32)
	SCPongStart(b)
	SCPongAddClientTick(b, m.ClientTick)
	SCPongAddServerTick(b, m.ServerTick)
	SCPongAddProtocol(b, EProtocolSC_Pong)
	return finish(b, EProtocolSC_Pong, SCPongEnd(b))
}

func DecodePong(body []byte) (Pong, error) {
	if err := checkBody(EProtocolSC_Pong, body); err != nil {
		return Pong{}, err
	}
	t := GetRootAsSCPong(body, 0)
	return Pong{ClientTick: t.ClientTick(), ServerTick: t.ServerTick()}, nil
}

// ObjectInfo describes one entity in an SC_AddNotification.
type ObjectInfo struct {
	Sequence     int32
	ObjectType   EObjectType
	Name         string
	AppearanceID int32
	X, Y         float32
	Direction    int32
	AimDirection int32
	MoveFlag     int32
	HP           int32
	MaxHP        int32
	State        EObjectState
}

func EncodeAddNotification(list []ObjectInfo) []byte {
	b := flatbuffers.NewBuilder(64 + 96*len(list))
	offsets := make([]flatbuffers.UOffsetT, len(list))
	for i, o := range list {
		name := b.CreateString(o.Name)
		MObjectMoveInfoStart(b)
		MObjectMoveInfoAddSequence(b, o.Sequence)
		MObjectMoveInfoAddPositionX(b, o.X)
		MObjectMoveInfoAddPositionY(b, o.Y)
		MObjectMoveInfoAddDirection(b, o.Direction)
		MObjectMoveInfoAddAimDirection(b, o.AimDirection)
		MObjectMoveInfoAddMoveFlag(b, o.MoveFlag)
		MObjectMoveInfoAddHp(b, o.HP)
		move := MObjectMoveInfoEnd(b)

		MObjectInfoStart(b)
		MObjectInfoAddSequence(b, o.Sequence)
		MObjectInfoAddObjectType(b, o.ObjectType)
		MObjectInfoAddName(b, name)
		MObjectInfoAddAppearanceId(b, o.AppearanceID)
		MObjectInfoAddMoveInfo(b, move)
		MObjectInfoAddMaxHp(b, o.MaxHP)
		MObjectInfoAddState(b, o.State)
		offsets[i] = MObjectInfoEnd(b)
	}
	SCAddNotificationStartSyncListVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	vec := b.EndVector(len(offsets))
	SCAddNotificationStart(b)
	SCAddNotificationAddSyncList(b, vec)
	SCAddNotificationAddProtocol(b, EProtocolSC_AddNotification)
	return finish(b, EProtocolSC_AddNotification, SCAddNotificationEnd(b))
}

func DecodeAddNotification(body []byte) ([]ObjectInfo, error) {
	if err := checkBody(EProtocolSC_AddNotification, body); err != nil {
		return nil, err
	}
	t := GetRootAsSCAddNotification(body, 0)
	out := make([]ObjectInfo, 0, t.SyncListLength())
	var info MObjectInfo
	var move MObjectMoveInfo
	for i := 0; i < t.SyncListLength(); i++ {
		t.SyncList(&info, i)
		o := ObjectInfo{
			Sequence:     info.Sequence(),
			ObjectType:   info.ObjectType(),
			Name:         string(info.Name()),
			AppearanceID: info.AppearanceId(),
			MaxHP:        info.MaxHp(),
			State:        info.State(),
		}
		if info.MoveInfo(&move) != nil {
			o.X, o.Y = move.PositionX(), move.PositionY()
			o.Direction = move.Direction()
			o.AimDirection = move.AimDirection()
			o.MoveFlag = move.MoveFlag()
			o.HP = move.Hp()
		}
		out = append(out, o)
	}
	return out, nil
}

func EncodeRemoveNotification(sequences []int32) []byte {
	b := flatbuffers.NewBuilder(16 + 4*len(sequences))
	SCRemoveNotificationStartSequencesVector(b, len(sequences))
	for i := len(sequences) - 1; i >= 0; i-- {
		b.PrependInt32(sequences[i])
	}
	vec := b.EndVector(len(sequences))
	SCRemoveNotificationStart(b)
	SCRemoveNotificationAddSequences(b, vec)
	SCRemoveNotificationAddProtocol(b, EProtocolSC_RemoveNotification)
	return finish(b, EProtocolSC_RemoveNotification, SCRemoveNotificationEnd(b))
}

func DecodeRemoveNotification(body []byte) ([]int32, error) {
	if err := checkBody(EProtocolSC_RemoveNotification, body); err != nil {
		return nil, err
	}
	t := GetRootAsSCRemoveNotification(body, 0)
	out := make([]int32, t.SequencesLength())
	for i := range out {
		out[i] = t.Sequences(i)
	}
	return out, nil
}

type StateChange struct {
	Sequence int32
	State    EObjectState
	HP       int32
	MaxHP    int32
	X, Y     float32
}

func EncodeChangeState(m StateChange) []byte {
	b := flatbuffers.NewBuilder(48)
	SCChangeStateNotificationStart(b)
	SCChangeStateNotificationAddSequence(b, m.Sequence)
	SCChangeStateNotificationAddState(b, m.State)
	SCChangeStateNotificationAddHp(b, m.HP)
	SCChangeStateNotificationAddMaxHp(b, m.MaxHP)
	SCChangeStateNotificationAddPositionX(b, m.X)
	SCChangeStateNotificationAddPositionY(b, m.Y)
	SCChangeStateNotificationAddProtocol(b, EProtocolSC_ChangeStateNotification)
	return finish(b, EProtocolSC_ChangeStateNotification, SCChangeStateNotificationEnd(b))
}

func DecodeChangeState(body []byte) (StateChange, error) {
	if err := checkBody(EProtocolSC_ChangeStateNotification, body); err != nil {
		return StateChange{}, err
	}
	t := GetRootAsSCChangeStateNotification(body, 0)
	return StateChange{
		Sequence: t.Sequence(),
		State:    t.State(),
		HP:       t.Hp(),
		MaxHP:    t.MaxHp(),
		X:        t.PositionX(),
		Y:        t.PositionY(),
	}, nil
}
