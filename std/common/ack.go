package common

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// Ack statuses
const (
	AckStatusOK      = "OK"
	AckStatusFail    = "FAIL"
	AckStatusPending = "PENDING"
)

// Ack acknowledgement struct
type Ack struct {
	didcomm.Header
	Status string `json:"status"`
}

// NewAck returns a new notification ack with status OK threaded to thID.
func NewAck(thID string) *Ack {
	return NewAckWithType(pltype.NotificationAck, thID)
}

// NewAckWithType returns ack of the protocol specific type.
func NewAckWithType(msgType, thID string) *Ack {
	return &Ack{
		Header: didcomm.NewReplyHeader(msgType, thID),
		Status: AckStatusOK,
	}
}
