package prot

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Sender sends messages over an established connection.
type Sender interface {
	SendMessage(ctx context.Context, msg didcomm.Msg) error
}

// SendBestEffort sends the message and only logs the error. Problem reports
// are sent this way: the state changes whether they reach the peer or not.
func SendBestEffort(ctx context.Context, s Sender, msg didcomm.Msg) {
	if err := s.SendMessage(ctx, msg); err != nil {
		glog.Warningln("best effort send of", msg.MsgType(), "failed:", err)
	}
}

// UpdateFromPending reads the pending messages of the connection, handles
// the first one canHandle accepts and marks it consumed. The message stays
// pending when handle fails.
func UpdateFromPending(
	ctx context.Context,
	conn core.Conn,
	canHandle func(didcomm.Msg) bool,
	handle func(didcomm.Msg) error,
) (err error) {
	defer err2.Handle(&err, "update from pending")

	msgs := try.To1(conn.Messages(ctx))
	uid, msg, found := FindMessageToHandle(msgs, canHandle)
	if !found {
		return nil
	}
	try.To(handle(msg))
	try.To(conn.UpdateMessageStatus(ctx, uid))
	return nil
}
