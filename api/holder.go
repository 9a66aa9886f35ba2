package api

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/protocol/issuecredential/holder"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// HolderCreate creates the holder side of the issuance from the credential
// offer JSON.
func (a *Agent) HolderCreate(sourceID, offer string) (h uint32, err error) {
	defer err2.Handle(&err, "holder %s", sourceID)

	msg, err := aries.DecodeStr(offer)
	if err != nil {
		return 0, vcxerr.Wrap(vcxerr.InvalidJSON, err, "credential offer")
	}
	o, ok := msg.(*issuecredential.Offer)
	if !ok {
		return 0, vcxerr.Newf(vcxerr.InvalidJSON, "not a credential offer: %s", msg.MsgType())
	}
	return a.holders.Add(try.To1(holder.Create(a.svc.Holder, o, sourceID))), nil
}

// HolderCreateWithMsgID creates the holder from the offer pending in the
// connection.
func (a *Agent) HolderCreateWithMsgID(ctx context.Context, sourceID string, connHandle uint32, uid string) (h uint32, err error) {
	defer err2.Handle(&err, "holder %s", sourceID)

	var hd *holder.Holder
	try.To(a.withConn(connHandle, func(conn core.Conn) (err error) {
		offer, err := holder.CredentialOffer(ctx, conn, uid)
		if err != nil {
			return err
		}
		hd, err = holder.Create(a.svc.Holder, offer, sourceID)
		return err
	}))
	return a.holders.Add(hd), nil
}

// HolderCredentialOffers returns the offers pending in the connection as
// JSON array.
func (a *Agent) HolderCredentialOffers(ctx context.Context, connHandle uint32) (res string, err error) {
	err = a.withConn(connHandle, func(conn core.Conn) (err error) {
		offers, err := holder.CredentialOffers(ctx, conn)
		if err != nil {
			return err
		}
		res, err = encodeAll(offers)
		return err
	})
	return res, err
}

// HolderSendRequest sends the credential request over the connection.
func (a *Agent) HolderSendRequest(ctx context.Context, h, connHandle uint32) error {
	return mutate(a.holders, h, func(hd *holder.Holder) error {
		return a.withConn(connHandle, func(conn core.Conn) error {
			return hd.SendRequest(ctx, conn, connHandle)
		})
	})
}

// HolderUpdateState handles one pending message of the issuance.
func (a *Agent) HolderUpdateState(ctx context.Context, h uint32) error {
	return mutate(a.holders, h, func(hd *holder.Holder) error {
		connHandle, ok := hd.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return hd.UpdateState(ctx, conn)
		})
	})
}

// HolderUpdateStateWithMessage handles the message JSON given. Messages are
// ignored before the request is sent.
func (a *Agent) HolderUpdateStateWithMessage(ctx context.Context, h uint32, msg string) error {
	m, err := decodeMessage(msg)
	if err != nil {
		return err
	}
	return mutate(a.holders, h, func(hd *holder.Holder) error {
		connHandle, ok := hd.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return hd.UpdateStateWithMessage(ctx, conn, m)
		})
	})
}

// HolderState returns the state code of the issuance.
func (a *Agent) HolderState(h uint32) (status.StateType, error) {
	return read(a.holders, h, func(hd *holder.Holder) (status.StateType, error) {
		return hd.StateCode(), nil
	})
}

// HolderCredentialStatus returns the outcome code of the issuance.
func (a *Agent) HolderCredentialStatus(h uint32) (uint32, error) {
	return read(a.holders, h, func(hd *holder.Holder) (uint32, error) {
		return hd.CredentialStatus(), nil
	})
}

// HolderCredential returns the wallet ID and the credential message JSON.
func (a *Agent) HolderCredential(h uint32) (credID, cred string, err error) {
	err = a.holders.Get(h, func(hd *holder.Holder) (err error) {
		id, c, err := hd.Credential()
		if err != nil {
			return err
		}
		credID = id
		cred, err = encode(c)
		return err
	})
	return credID, cred, err
}

// HolderDeleteCredential deletes the received credential from the wallet.
func (a *Agent) HolderDeleteCredential(ctx context.Context, h uint32) error {
	return a.holders.Get(h, func(hd *holder.Holder) error {
		return hd.DeleteCredential(ctx)
	})
}

// HolderSerialize returns the holder as JSON.
func (a *Agent) HolderSerialize(h uint32) (string, error) {
	return read(a.holders, h, func(hd *holder.Holder) (string, error) {
		return serialize(hd)
	})
}

// HolderDeserialize restores the holder and returns its new handle.
func (a *Agent) HolderDeserialize(data string) (uint32, error) {
	hd, err := holder.Deserialize(a.svc.Holder, []byte(data))
	if err != nil {
		return 0, err
	}
	return a.holders.Add(hd), nil
}

// HolderRelease releases the handle.
func (a *Agent) HolderRelease(h uint32) error {
	return a.holders.Release(h)
}
