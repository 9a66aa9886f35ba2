// Package aries is the wire codec of the Aries messages: it decodes JSON to
// the concrete message type by its @type and encodes messages back to JSON.
package aries

import (
	"encoding/json"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/basicmessage"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/golang/glog"
)

// creators is the closed set of messages we understand.
var creators = map[string]func() didcomm.Msg{
	pltype.ConnectionInvitation:    func() didcomm.Msg { return new(connection.Invitation) },
	pltype.ConnectionRequest:       func() didcomm.Msg { return new(connection.Request) },
	pltype.ConnectionResponse:      func() didcomm.Msg { return new(connection.SignedResponse) },
	pltype.ConnectionProblemReport: func() didcomm.Msg { return new(connection.ProblemReport) },

	pltype.NotificationAck:            func() didcomm.Msg { return new(common.Ack) },
	pltype.ReportProblemProblemReport: func() didcomm.Msg { return new(common.ProblemReport) },
	pltype.RoutingForward:             func() didcomm.Msg { return new(common.Forward) },

	pltype.TrustPingPing:            func() didcomm.Msg { return new(trustping.Ping) },
	pltype.TrustPingResponse:        func() didcomm.Msg { return new(trustping.PingResponse) },
	pltype.DiscoverFeaturesQuery:    func() didcomm.Msg { return new(discovery.Query) },
	pltype.DiscoverFeaturesDisclose: func() didcomm.Msg { return new(discovery.Disclose) },
	pltype.BasicMessageSend:         func() didcomm.Msg { return new(basicmessage.Basicmessage) },

	pltype.IssueCredentialOffer:         func() didcomm.Msg { return new(issuecredential.Offer) },
	pltype.IssueCredentialRequest:       func() didcomm.Msg { return new(issuecredential.Request) },
	pltype.IssueCredentialIssue:         func() didcomm.Msg { return new(issuecredential.Credential) },
	pltype.IssueCredentialACK:           func() didcomm.Msg { return new(issuecredential.Ack) },
	pltype.IssueCredentialProblemReport: func() didcomm.Msg { return new(issuecredential.ProblemReport) },

	pltype.PresentProofRequest:       func() didcomm.Msg { return new(presentproof.Request) },
	pltype.PresentProofPresentation:  func() didcomm.Msg { return new(presentproof.Presentation) },
	pltype.PresentProofACK:           func() didcomm.Msg { return new(presentproof.Ack) },
	pltype.PresentProofProblemReport: func() didcomm.Msg { return new(presentproof.ProblemReport) },
}

type typeOnly struct {
	Type string `json:"@type"`
}

// Decode decodes the message JSON. Types with the https://didcomm.org prefix
// are read as their did:sov counterparts.
func Decode(data []byte) (didcomm.Msg, error) {
	var t typeOnly
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, err, "message type")
	}
	msgType := NormalizeType(t.Type)
	create, ok := creators[msgType]
	if !ok {
		glog.V(3).Infoln("unknown message type:", t.Type)
		return nil, vcxerr.Newf(vcxerr.InvalidMessages, "unknown message type %q", t.Type)
	}
	msg := create()
	if err := json.Unmarshal(data, msg); err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, err, "decode "+msgType)
	}
	return msg, nil
}

// DecodeStr is Decode for strings.
func DecodeStr(s string) (didcomm.Msg, error) {
	return Decode([]byte(s))
}

// Encode encodes the message to JSON.
func Encode(msg didcomm.Msg) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, err, "encode "+msg.MsgType())
	}
	return data, nil
}

// NormalizeType maps the https://didcomm.org/ prefix to the did:sov prefix.
func NormalizeType(t string) string {
	if rest, ok := strings.CutPrefix(t, pltype.DIFPrefix); ok {
		return pltype.Aries + rest
	}
	return t
}

// Known tells if the message type is part of the codec.
func Known(t string) bool {
	_, ok := creators[NormalizeType(t)]
	return ok
}
