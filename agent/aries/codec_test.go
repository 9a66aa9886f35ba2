package aries

import (
	"testing"

	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/stretchr/testify/require"
)

const invitationJSON = `{
  "@type": "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/connections/1.0/invitation",
  "@id": "1ee9ee1a-a3e4-4d7d-9fc4-77b2ce9c7b5a",
  "label": "faber",
  "recipientKeys": ["EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"],
  "routingKeys": [],
  "serviceEndpoint": "http://localhost:8080/agency/msg"
}`

func TestDecode(t *testing.T) {
	msg, err := DecodeStr(invitationJSON)
	require.NoError(t, err)
	inv, ok := msg.(*connection.Invitation)
	require.True(t, ok)
	require.Equal(t, "faber", inv.Label)
	require.Equal(t, "1ee9ee1a-a3e4-4d7d-9fc4-77b2ce9c7b5a", inv.MsgID())
	require.Equal(t, []string{"EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"}, inv.RecipientKeys)
}

func TestDecode_DIFPrefix(t *testing.T) {
	msg, err := DecodeStr(`{"@type":"https://didcomm.org/trust_ping/1.0/ping","@id":"p1","response_requested":true}`)
	require.NoError(t, err)
	ping, ok := msg.(*trustping.Ping)
	require.True(t, ok)
	require.True(t, ping.ResponseRequested)
	require.True(t, Known("https://didcomm.org/notification/1.0/ack"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := DecodeStr(`{"@type":"did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/unknown/1.0/x","@id":"1"}`)
	require.Error(t, err)
	require.Equal(t, vcxerr.InvalidMessages, vcxerr.KindOf(err))

	_, err = DecodeStr(`{"@type":`)
	require.Equal(t, vcxerr.InvalidJSON, vcxerr.KindOf(err))

	_, err = DecodeStr(`{"@type":"` + pltype.TrustPingPing + `","response_requested":"yes"}`)
	require.Equal(t, vcxerr.InvalidJSON, vcxerr.KindOf(err))
}

func TestEncodeDecode_ProtocolTypes(t *testing.T) {
	ack := issuecredential.NewAck("thread")
	data, err := Encode(ack)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)
	_, ok := msg.(*issuecredential.Ack)
	require.True(t, ok, "issuance ack must not decode as notification ack")
	require.Equal(t, "thread", msg.ThreadID())

	data, err = Encode(common.NewAck("thread"))
	require.NoError(t, err)
	msg, err = Decode(data)
	require.NoError(t, err)
	_, ok = msg.(*common.Ack)
	require.True(t, ok)
}
