package connection

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/status"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// InviterNull is the start state of the inviter and the state after a
// failure.
type InviterNull struct {
	ProblemReport *cnx.ProblemReport `json:"problem_report,omitempty"`
}

// InviterInvited has the invitation we gave out.
type InviterInvited struct {
	Invitation *cnx.Invitation `json:"invitation"`
}

// InviterResponded has our signed response and the invitee's DID doc.
type InviterResponded struct {
	SignedResponse *cnx.SignedResponse `json:"signed_response"`
	DidDoc         *did.Doc            `json:"did_doc"`
}

// InviterCompleted is the established connection of the inviter.
type InviterCompleted struct {
	Completed
}

func (*InviterNull) Code() status.StateType      { return status.Initialized }
func (*InviterInvited) Code() status.StateType   { return status.OfferSent }
func (*InviterResponded) Code() status.StateType { return status.RequestReceived }

func (*InviterNull) CanHandle(didcomm.Msg) bool        { return false }
func (*InviterInvited) CanHandle(m didcomm.Msg) bool   { return invitedTypes(m) }
func (*InviterResponded) CanHandle(m didcomm.Msg) bool { return respondedTypes(m) }
func (*InviterNull) Role() Role                        { return Inviter }
func (*InviterInvited) Role() Role                     { return Inviter }
func (*InviterResponded) Role() Role                   { return Inviter }
func (*InviterCompleted) Role() Role                   { return Inviter }
func (*InviterNull) kind() string                      { return "null" }
func (*InviterInvited) kind() string                   { return "invited" }
func (*InviterResponded) kind() string                 { return "responded" }

func (s *InviterNull) step(ctx context.Context, c *Connection, ev Event) (_ State, err error) {
	if _, ok := ev.(Connect); !ok {
		logIgnored(c, "inviter null", ev)
		return s, nil
	}
	defer err2.Handle(&err, "create invitation")

	try.To(c.provision(ctx))
	inv := cnx.NewInvitation(c.sourceID, c.cloudAgent.AgencyEndpoint,
		[]string{c.pairwise.PwVK}, c.cloudAgent.RoutingKeys())
	glog.V(1).Infoln(c.sourceID, "invitation created:", inv.ID)
	return &InviterInvited{Invitation: inv}, nil
}

func (s *InviterInvited) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	switch ev := ev.(type) {
	case ExchangeRequestReceived:
		return s.handleRequest(ctx, c, ev.Request)
	case ProblemReportReceived:
		return &InviterNull{ProblemReport: ev.ProblemReport}, nil
	}
	logIgnored(c, "inviter invited", ev)
	return s, nil
}

// handleRequest answers to a valid request with the response signed with the
// invitation key. An invalid request ends the connection.
func (s *InviterInvited) handleRequest(ctx context.Context, c *Connection, req *cnx.Request) (_ State, err error) {
	if thr := req.Thread(); thr != nil && thr.PID != "" && thr.PID != s.Invitation.ID {
		glog.Warningln(c.sourceID, "request to other invitation ignored:", thr.PID)
		return s, nil
	}
	if err := req.Connection.Validate(); err != nil {
		glog.Errorln(c.sourceID, "connection request:", err)
		pr := cnx.NewProblemReport(req.ThreadID(), cnx.RequestProcessingError, err.Error())
		if doc := req.DidDoc(); doc != nil {
			c.sendBestEffort(ctx, pr, doc)
		}
		return &InviterNull{ProblemReport: pr}, nil
	}

	defer err2.Handle(&err, "connection response")

	ca := c.cloudAgent
	resp := cnx.NewResponse(req.ThreadID(), c.pairwise.PwDID, c.pairwise.PwVK,
		ca.AgencyEndpoint, ca.RoutingKeys())
	sr := try.To1(resp.Sign(ctx, c.svc.Crypto, s.Invitation.RecipientKeys[0]))

	doc := req.DidDoc()
	try.To(c.send(ctx, sr, doc))
	return &InviterResponded{SignedResponse: sr, DidDoc: doc}, nil
}

func (s *InviterResponded) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	completed := &InviterCompleted{Completed{DidDoc: s.DidDoc}}
	switch ev := ev.(type) {
	case AckReceived:
		if !didcomm.IsReplyTo(ev.Ack, s.SignedResponse.ThreadID()) {
			glog.Warningln(c.sourceID, "ack of other thread ignored")
			return s, nil
		}
		return completed, nil
	case PingReceived:
		if err := c.answerPing(ctx, ev.Ping, s.DidDoc); err != nil {
			return nil, err
		}
		return completed, nil
	case PingResponseReceived:
		return completed, nil
	case ProblemReportReceived:
		return &InviterNull{ProblemReport: ev.ProblemReport}, nil
	}
	logIgnored(c, "inviter responded", ev)
	return s, nil
}

func (s *InviterCompleted) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	next, err := s.handle(ctx, c, ev)
	if err != nil {
		return nil, err
	}
	return &InviterCompleted{next}, nil
}
