/*
Package didcomm offers the message interface every Aries message of this module
implements. The set of messages is closed: only the types which embed Header
are messages, and the codec in the aries package knows all of them.
*/
package didcomm

import (
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/std/decorator"
)

// Msg is implemented by every wire message. Handlers use type switches over
// the concrete types.
type Msg interface {
	MsgType() string
	MsgID() string

	// ThreadID returns the ~thread.thid or the message's own ID when the
	// message starts the thread.
	ThreadID() string

	// Thread returns the thread decorator, nil if not set.
	Thread() *decorator.Thread

	hdr() *Header
}

// Header is the common part of every message. Embed it to get a Msg.
type Header struct {
	Type      string               `json:"@type"`
	ID        string               `json:"@id"`
	Thr       *decorator.Thread    `json:"~thread,omitempty"`
	PleaseAck *decorator.PleaseAck `json:"~please_ack,omitempty"`
}

// NewHeader returns header with a new message ID.
func NewHeader(msgType string) Header {
	return Header{Type: msgType, ID: utils.UUID()}
}

// NewReplyHeader returns header with a new message ID threaded to thID.
func NewReplyHeader(msgType, thID string) Header {
	return Header{
		Type: msgType,
		ID:   utils.UUID(),
		Thr:  &decorator.Thread{ID: thID},
	}
}

func (h *Header) MsgType() string {
	return h.Type
}

func (h *Header) MsgID() string {
	return h.ID
}

func (h *Header) ThreadID() string {
	return decorator.ThreadID(h.Thr, h.ID)
}

func (h *Header) Thread() *decorator.Thread {
	return h.Thr
}

// SetThreadID sets the ~thread.thid. Builders use it before the message is
// sent, messages are immutable after that.
func (h *Header) SetThreadID(thID string) {
	if h.Thr == nil {
		h.Thr = &decorator.Thread{}
	}
	h.Thr.ID = thID
}

// AskAck sets the ~please_ack decorator.
func (h *Header) AskAck() {
	h.PleaseAck = &decorator.PleaseAck{}
}

// AckRequested tells if sender wants an acknowledgement.
func (h *Header) AckRequested() bool {
	return h.PleaseAck != nil
}

func (h *Header) hdr() *Header {
	return h
}

// IsReplyTo reports if m is threaded to thID.
func IsReplyTo(m Msg, thID string) bool {
	return m.ThreadID() == thID
}

// Same tells if two messages have the same type and ID.
func Same(a, b Msg) bool {
	return a.hdr().Type == b.hdr().Type && a.hdr().ID == b.hdr().ID
}
