package connection

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/golang/glog"
)

// Role is our role in the connection protocol.
type Role string

const (
	Invitee Role = "invitee"
	Inviter Role = "inviter"
)

// State is the state of the connection. Every state holds only the data of
// its phase and a transition replaces the whole state. The set of states is
// closed.
type State interface {
	// Code returns the numeric state code callers see.
	Code() status.StateType

	// CanHandle tells if the inbound message is an input of the state.
	CanHandle(m didcomm.Msg) bool

	Role() Role

	kind() string

	// validate checks that the data the state needs is present.
	validate() error

	// step returns the next state. Unhandled events return the receiver
	// and no error. Effects are made through c, which is a copy of the
	// connection and committed only when step succeeds.
	step(ctx context.Context, c *Connection, ev Event) (State, error)
}

var (
	completedTypes = prot.Types(
		pltype.TrustPingPing,
		pltype.TrustPingResponse,
		pltype.DiscoverFeaturesQuery,
		pltype.DiscoverFeaturesDisclose,
	)
	respondedTypes = prot.Types(
		pltype.NotificationAck,
		pltype.TrustPingPing,
		pltype.TrustPingResponse,
		pltype.ConnectionProblemReport,
	)
	requestedTypes = prot.Types(pltype.ConnectionResponse, pltype.ConnectionProblemReport)
	invitedTypes   = prot.Types(pltype.ConnectionRequest, pltype.ConnectionProblemReport)
)

// Completed is the established connection for both roles.
type Completed struct {
	DidDoc    *did.Doc                       `json:"did_doc"`
	Protocols []discovery.ProtocolDescriptor `json:"protocols,omitempty"`
}

func (Completed) Code() status.StateType {
	return status.Accepted
}

func (Completed) CanHandle(m didcomm.Msg) bool {
	return completedTypes(m)
}

func (Completed) kind() string {
	return "completed"
}

// handle runs the protocols living inside the established connection: trust
// ping and discover features.
func (s Completed) handle(ctx context.Context, c *Connection, ev Event) (next Completed, err error) {
	next = s
	switch ev := ev.(type) {
	case SendPing:
		err = c.send(ctx, trustping.NewPing(ev.Comment), s.DidDoc)
	case PingReceived:
		err = c.answerPing(ctx, ev.Ping, s.DidDoc)
	case PingResponseReceived:
		glog.V(3).Infoln(c.sourceID, "ping response received")
	case DiscoverFeatures:
		err = c.send(ctx, discovery.NewQuery(ev.Query, ev.Comment), s.DidDoc)
	case QueryReceived:
		err = c.send(ctx, discovery.NewDisclose(ev.Query), s.DidDoc)
	case DiscloseReceived:
		next.Protocols = append([]discovery.ProtocolDescriptor{}, ev.Disclose.Protocols...)
	default:
		logIgnored(c, "completed", ev)
	}
	return next, err
}

func logIgnored(c *Connection, state string, ev Event) {
	glog.V(3).Infof("%s: %T ignored in %s", c.sourceID, ev, state)
}
