package connection

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/common"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/AbsaOSS/libvcx/std/trustping"
)

// Event is the input of the connection state machines. The set of events is
// closed.
type Event interface {
	isEvent()
}

// Inbound message events.
type (
	InvitationReceived struct {
		Invitation *cnx.Invitation
	}
	ExchangeRequestReceived struct {
		Request *cnx.Request
	}
	ExchangeResponseReceived struct {
		Response *cnx.SignedResponse
	}
	ProblemReportReceived struct {
		ProblemReport *cnx.ProblemReport
	}
	AckReceived struct {
		Ack *common.Ack
	}
	PingReceived struct {
		Ping *trustping.Ping
	}
	PingResponseReceived struct {
		PingResponse *trustping.PingResponse
	}
	QueryReceived struct {
		Query *discovery.Query
	}
	DiscloseReceived struct {
		Disclose *discovery.Disclose
	}
)

// Events the caller starts.
type (
	Connect struct{}

	SendPing struct {
		Comment string
	}
	DiscoverFeatures struct {
		Query   string
		Comment string
	}
)

func (InvitationReceived) isEvent()       {}
func (ExchangeRequestReceived) isEvent()  {}
func (ExchangeResponseReceived) isEvent() {}
func (ProblemReportReceived) isEvent()    {}
func (AckReceived) isEvent()              {}
func (PingReceived) isEvent()             {}
func (PingResponseReceived) isEvent()     {}
func (QueryReceived) isEvent()            {}
func (DiscloseReceived) isEvent()         {}
func (Connect) isEvent()                  {}
func (SendPing) isEvent()                 {}
func (DiscoverFeatures) isEvent()         {}

// EventFromMessage maps the inbound message to its event. Messages which
// aren't part of the connection protocols give ActionNotSupported.
func EventFromMessage(m didcomm.Msg) (Event, error) {
	switch msg := m.(type) {
	case *cnx.Invitation:
		return InvitationReceived{Invitation: msg}, nil
	case *cnx.Request:
		return ExchangeRequestReceived{Request: msg}, nil
	case *cnx.SignedResponse:
		return ExchangeResponseReceived{Response: msg}, nil
	case *cnx.ProblemReport:
		return ProblemReportReceived{ProblemReport: msg}, nil
	case *common.Ack:
		return AckReceived{Ack: msg}, nil
	case *trustping.Ping:
		return PingReceived{Ping: msg}, nil
	case *trustping.PingResponse:
		return PingResponseReceived{PingResponse: msg}, nil
	case *discovery.Query:
		return QueryReceived{Query: msg}, nil
	case *discovery.Disclose:
		return DiscloseReceived{Disclose: msg}, nil
	}
	return nil, vcxerr.Newf(vcxerr.ActionNotSupported,
		"%s isn't a connection message", m.MsgType())
}
