package api

import (
	"context"
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/protocol/connection"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ConnectionCreate creates the inviter side connection.
func (a *Agent) ConnectionCreate(sourceID string) uint32 {
	h := a.connections.Add(connection.Create(a.connectionServices(), sourceID))
	glog.V(1).Infof("connection %s created: %d", sourceID, h)
	return h
}

// ConnectionCreateWithInvite creates the invitee side connection from the
// invitation JSON.
func (a *Agent) ConnectionCreateWithInvite(ctx context.Context, sourceID, invite string) (h uint32, err error) {
	defer err2.Handle(&err, "connection %s", sourceID)

	msg, err := aries.DecodeStr(invite)
	if err != nil {
		return 0, vcxerr.Wrap(vcxerr.InvalidJSON, err, "invitation")
	}
	inv, ok := msg.(*cnx.Invitation)
	if !ok {
		return 0, vcxerr.Newf(vcxerr.InvalidJSON, "not an invitation: %s", msg.MsgType())
	}
	c := try.To1(connection.CreateWithInvite(ctx, a.connectionServices(), sourceID, inv))
	return a.connections.Add(c), nil
}

// ConnectionConnect provisions the connection and sends the invitation or
// the request, depending on the role.
func (a *Agent) ConnectionConnect(ctx context.Context, h uint32) error {
	return mutate(a.connections, h, func(c *connection.Connection) error {
		return c.Connect(ctx)
	})
}

// ConnectionUpdateState handles one pending message of the connection.
func (a *Agent) ConnectionUpdateState(ctx context.Context, h uint32) error {
	return mutate(a.connections, h, func(c *connection.Connection) error {
		return c.UpdateState(ctx)
	})
}

// ConnectionUpdateStateWithMessage handles the message JSON given.
func (a *Agent) ConnectionUpdateStateWithMessage(ctx context.Context, h uint32, msg string) error {
	m, err := decodeMessage(msg)
	if err != nil {
		return err
	}
	return mutate(a.connections, h, func(c *connection.Connection) error {
		return c.UpdateStateWithMessage(ctx, m)
	})
}

// ConnectionState returns the state code of the connection.
func (a *Agent) ConnectionState(h uint32) (status.StateType, error) {
	return read(a.connections, h, func(c *connection.Connection) (status.StateType, error) {
		return c.StateCode(), nil
	})
}

// ConnectionInviteDetails returns the invitation JSON of the connection.
func (a *Agent) ConnectionInviteDetails(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		inv, err := c.InviteDetails()
		if err != nil {
			return "", err
		}
		data, err := aries.Encode(inv)
		return string(data), err
	})
}

// ConnectionSendMessage sends a basic message and returns its id.
func (a *Agent) ConnectionSendMessage(ctx context.Context, h uint32, content string) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		return c.SendGenericMessage(ctx, content)
	})
}

// ConnectionSendPing sends a trust ping.
func (a *Agent) ConnectionSendPing(ctx context.Context, h uint32, comment string) error {
	return mutate(a.connections, h, func(c *connection.Connection) error {
		return c.SendPing(ctx, comment)
	})
}

// ConnectionSendDiscoveryFeatures sends the discover features query.
func (a *Agent) ConnectionSendDiscoveryFeatures(ctx context.Context, h uint32, query, comment string) error {
	return mutate(a.connections, h, func(c *connection.Connection) error {
		return c.SendDiscoveryFeatures(ctx, query, comment)
	})
}

// ConnectionInfo returns the info JSON of both sides.
func (a *Agent) ConnectionInfo(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		data, err := c.Info()
		return string(data), err
	})
}

// ConnectionRemoteDID returns their DID.
func (a *Agent) ConnectionRemoteDID(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		return c.RemoteDID()
	})
}

// ConnectionRemoteDIDDoc returns their DID doc as W3C DID document.
func (a *Agent) ConnectionRemoteDIDDoc(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (_ string, err error) {
		defer err2.Handle(&err, "remote did doc")

		doc := try.To1(c.TheirDidDoc())
		return string(try.To1(doc.W3CJSON())), nil
	})
}

// ConnectionRemoteVK returns their verkey.
func (a *Agent) ConnectionRemoteVK(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		return c.RemoteVK()
	})
}

// ConnectionMessages returns the pending messages as JSON object keyed by
// their uids.
func (a *Agent) ConnectionMessages(ctx context.Context, h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (_ string, err error) {
		defer err2.Handle(&err, "connection messages")

		msgs := try.To1(c.Messages(ctx))
		out := make(map[string]json.RawMessage, len(msgs))
		for uid, m := range msgs {
			out[uid] = try.To1(aries.Encode(m))
		}
		return string(try.To1(json.Marshal(out))), nil
	})
}

// ConnectionUpdateMessageStatus marks the message consumed.
func (a *Agent) ConnectionUpdateMessageStatus(ctx context.Context, h uint32, uid string) error {
	return a.connections.Get(h, func(c *connection.Connection) error {
		return c.UpdateMessageStatus(ctx, uid)
	})
}

// ConnectionSerialize returns the connection as JSON.
func (a *Agent) ConnectionSerialize(h uint32) (string, error) {
	return read(a.connections, h, func(c *connection.Connection) (string, error) {
		return serialize(c)
	})
}

// ConnectionDeserialize restores the connection and returns its new handle.
func (a *Agent) ConnectionDeserialize(data string) (uint32, error) {
	c, err := connection.Deserialize(a.connectionServices(), []byte(data))
	if err != nil {
		return 0, err
	}
	return a.connections.Add(c), nil
}

// ConnectionRelease releases the handle.
func (a *Agent) ConnectionRelease(h uint32) error {
	return a.connections.Release(h)
}

// ConnectionDelete deletes the cloud agent of the connection and releases
// the handle.
func (a *Agent) ConnectionDelete(ctx context.Context, h uint32) error {
	err := a.connections.Get(h, func(c *connection.Connection) error {
		return c.Delete(ctx)
	})
	if err != nil {
		return err
	}
	return a.connections.Release(h)
}
