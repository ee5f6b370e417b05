package transport

import (
	"bufio"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamFraming(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStreamFrame(&buf, []byte{1, 2, 3}))
	require.NoError(t, WriteStreamFrame(&buf, nil))
	assert.Equal(t, []byte{3, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0}, buf.Bytes())

	r := bufio.NewReader(&buf)
	pkt, err := ReadStreamFrame(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, pkt)
	pkt, err = ReadStreamFrame(r)
	require.NoError(t, err)
	assert.Empty(t, pkt)
}

func TestQUICRoundTrip(t *testing.T) {
	tr, err := ListenQUIC("127.0.0.1:0", QUICConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, stream, err := DialQUIC(ctx, tr.Addr().String())
	require.NoError(t, err)
	defer conn.CloseWithError(0, "")

	require.NoError(t, WriteStreamFrame(stream, []byte{1, 0, 0, 0, 42}))
	connect := pollType(t, tr, EventConnect)
	recv := pollType(t, tr, EventReceive)
	assert.Equal(t, connect.Peer, recv.Peer)
	assert.Equal(t, uint8(0), recv.Channel)
	assert.Equal(t, []byte{1, 0, 0, 0, 42}, recv.Data)

	require.NoError(t, tr.Send(connect.Peer, 0, []byte{2, 0, 0, 0}, true))
	got, err := ReadStreamFrame(bufio.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 0}, got)

	require.NoError(t, conn.SendDatagram([]byte{13, 0, 0, 0}))
	dgram := pollType(t, tr, EventReceive)
	assert.Equal(t, uint8(1), dgram.Channel)

	require.NoError(t, tr.Send(connect.Peer, 1, []byte{14, 0, 0, 0}, false))
	dctx, dcancel := context.WithTimeout(ctx, 2*time.Second)
	defer dcancel()
	reply, err := conn.ReceiveDatagram(dctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{14, 0, 0, 0}, reply)
}
