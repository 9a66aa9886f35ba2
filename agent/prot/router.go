// Package prot has the protocol independent parts of the state machines.
package prot

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/golang/glog"
)

// FindMessageToHandle returns the first pending message which canHandle
// accepts. The map iteration order decides which message wins when several
// are eligible.
func FindMessageToHandle(
	msgs map[string]didcomm.Msg,
	canHandle func(didcomm.Msg) bool,
) (uid string, msg didcomm.Msg, found bool) {
	for uid, msg := range msgs {
		if canHandle(msg) {
			glog.V(4).Infoln("found message to handle:", uid, msg.MsgType())
			return uid, msg, true
		}
	}
	return "", nil, false
}

// Types returns a canHandle function which accepts the message types.
func Types(types ...string) func(didcomm.Msg) bool {
	return func(m didcomm.Msg) bool {
		for _, t := range types {
			if m.MsgType() == t {
				return true
			}
		}
		return false
	}
}

// Threaded returns a canHandle function which accepts messages of canHandle
// threaded to thID.
func Threaded(thID string, canHandle func(didcomm.Msg) bool) func(didcomm.Msg) bool {
	return func(m didcomm.Msg) bool {
		return m.ThreadID() == thID && canHandle(m)
	}
}

// Nothing accepts no message.
func Nothing(didcomm.Msg) bool {
	return false
}
