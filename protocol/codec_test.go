package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveNotificationRoundTrip(t *testing.T) {
	in := MoveNotification{SessionKey: 10000, X: 1.5, Y: -2.0, Direction: 90, MoveFlag: 1, AimDirection: 45}
	pkt := EncodeMoveNotification(in)
	require.Equal(t, EProtocolCS_MoveNotification, ExtractProtocolID(pkt))

	out, err := DecodeMoveNotification(Body(pkt))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSyncMoveSizeEstimateIsUpperBound(t *testing.T) {
	for _, n := range []int{1, 2, 10, 57} {
		list := make([]MoveSync, n)
		for i := range list {
			list[i] = MoveSync{Sequence: int32(1000 + i), X: 1, Y: 2, Direction: 3, MoveFlag: 1, AimDirection: 4}
		}
		pkt := EncodeSyncMove(list)
		assert.LessOrEqual(t, len(Body(pkt)), SyncMoveSize(n), "n=%d", n)

		got, err := DecodeSyncMove(Body(pkt))
		require.NoError(t, err)
		assert.Equal(t, list, got)
	}
}

func TestAddNotificationCarriesMoveInfo(t *testing.T) {
	in := []ObjectInfo{
		{Sequence: 1000, ObjectType: EObjectTypePlayer, Name: "alice", AppearanceID: 2, X: 3, Y: 4, HP: 100, MaxHP: 100},
		{Sequence: 100000, ObjectType: EObjectTypeBlock, Name: "wall", AppearanceID: 1, X: -5, Y: 7, HP: 100, MaxHP: 100},
	}
	out, err := DecodeAddNotification(Body(EncodeAddNotification(in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRemoveAndStateChange(t *testing.T) {
	seqs, err := DecodeRemoveNotification(Body(EncodeRemoveNotification([]int32{1000, 1001})))
	require.NoError(t, err)
	assert.Equal(t, []int32{1000, 1001}, seqs)

	sc := StateChange{Sequence: 1000, State: EObjectStateDead, HP: 0, MaxHP: 100, X: 1, Y: 1}
	got, err := DecodeChangeState(Body(EncodeChangeState(sc)))
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}

func TestDecodeShortBody(t *testing.T) {
	_, err := DecodeAuthRequest([]byte{1, 2})
	assert.ErrorIs(t, err, ErrShortBody)
}

func TestAuthAndAttackRoundTrip(t *testing.T) {
	auth := AuthRequest{DeviceKey: "dev-1", UserName: "bob", AppearanceID: 3}
	gotAuth, err := DecodeAuthRequest(Body(EncodeAuthRequest(auth)))
	require.NoError(t, err)
	assert.Equal(t, auth, gotAuth)

	res := AttackSync{AttackerSequence: 1000, AttackID: 1, IsHit: true, TargetSequence: 1001, EndY: 10, Damage: 10, TargetCurrentHP: 90}
	gotRes, err := DecodeSyncAttack(Body(EncodeSyncAttack(res)))
	require.NoError(t, err)
	assert.Equal(t, res, gotRes)
}
