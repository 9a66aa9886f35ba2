package connection

import (
	"context"
	"errors"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/common"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// InviteeNull is the start state of the invitee and the state after a
// failure. ProblemReport is set after the failure.
type InviteeNull struct {
	ProblemReport *cnx.ProblemReport `json:"problem_report,omitempty"`
}

// InviteeInvited has the invitation we received.
type InviteeInvited struct {
	Invitation *cnx.Invitation `json:"invitation"`
}

// InviteeRequested has our request and the inviter's DID doc from the
// invitation.
type InviteeRequested struct {
	Request *cnx.Request `json:"request"`
	DidDoc  *did.Doc     `json:"did_doc"`
}

// InviteeCompleted is the established connection of the invitee.
type InviteeCompleted struct {
	Completed
}

func (*InviteeNull) Code() status.StateType      { return status.Initialized }
func (*InviteeInvited) Code() status.StateType   { return status.OfferSent }
func (*InviteeRequested) Code() status.StateType { return status.RequestReceived }

func (*InviteeNull) CanHandle(didcomm.Msg) bool        { return false }
func (*InviteeInvited) CanHandle(didcomm.Msg) bool     { return false }
func (*InviteeRequested) CanHandle(m didcomm.Msg) bool { return requestedTypes(m) }
func (*InviteeNull) Role() Role                        { return Invitee }
func (*InviteeInvited) Role() Role                     { return Invitee }
func (*InviteeRequested) Role() Role                   { return Invitee }
func (*InviteeCompleted) Role() Role                   { return Invitee }
func (*InviteeNull) kind() string                      { return "null" }
func (*InviteeInvited) kind() string                   { return "invited" }
func (*InviteeRequested) kind() string                 { return "requested" }

func (s *InviteeNull) step(_ context.Context, c *Connection, ev Event) (State, error) {
	switch ev := ev.(type) {
	case InvitationReceived:
		if err := ev.Invitation.Validate(); err != nil {
			return nil, err
		}
		return &InviteeInvited{Invitation: ev.Invitation}, nil
	}
	logIgnored(c, "invitee null", ev)
	return s, nil
}

func (s *InviteeInvited) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	switch ev := ev.(type) {
	case Connect:
		return s.connect(ctx, c)
	case ProblemReportReceived:
		return &InviteeNull{ProblemReport: ev.ProblemReport}, nil
	}
	logIgnored(c, "invitee invited", ev)
	return s, nil
}

// connect sends the request to the inviter. The request points to our cloud
// agent and has the invitation as its parent thread.
func (s *InviteeInvited) connect(ctx context.Context, c *Connection) (_ State, err error) {
	defer err2.Handle(&err, "connect")

	try.To(c.provision(ctx))
	ca := c.cloudAgent
	req := cnx.NewRequest(c.sourceID, c.pairwise.PwDID, c.pairwise.PwVK,
		ca.AgencyEndpoint, ca.RoutingKeys())
	req.SetParent(s.Invitation.ID)

	doc := s.Invitation.DidDoc()
	try.To(c.send(ctx, req, doc))
	return &InviteeRequested{Request: req, DidDoc: doc}, nil
}

func (s *InviteeRequested) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	switch ev := ev.(type) {
	case ExchangeResponseReceived:
		return s.handleResponse(ctx, c, ev.Response), nil

	case ProblemReportReceived:
		if !didcomm.IsReplyTo(ev.ProblemReport, s.Request.ID) {
			glog.Warningln(c.sourceID, "problem report of other thread ignored")
			return s, nil
		}
		return &InviteeNull{ProblemReport: ev.ProblemReport}, nil
	}
	logIgnored(c, "invitee requested", ev)
	return s, nil
}

// handleResponse verifies the response and acks it. Any failure ends the
// connection: a problem report is sent and we go back to null.
func (s *InviteeRequested) handleResponse(ctx context.Context, c *Connection, sr *cnx.SignedResponse) State {
	doc, err := s.verify(ctx, c, sr)
	if err == nil {
		err = c.send(ctx, common.NewAck(s.Request.ID), doc)
	}
	if err != nil {
		glog.Errorln(c.sourceID, "connection response:", err)
		pr := cnx.NewProblemReport(s.Request.ID, cnx.ResponseProcessingError, err.Error())
		c.sendBestEffort(ctx, pr, s.DidDoc)
		return &InviteeNull{ProblemReport: pr}
	}
	return &InviteeCompleted{Completed{DidDoc: doc}}
}

var errThread = errors.New("response isn't threaded to our request")

func (s *InviteeRequested) verify(ctx context.Context, c *Connection, sr *cnx.SignedResponse) (doc *did.Doc, err error) {
	defer err2.Handle(&err, "verify response")

	if !didcomm.IsReplyTo(sr, s.Request.ID) {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, errThread, sr.ThreadID())
	}
	resp := try.To1(sr.Decode(ctx, c.svc.Crypto, s.DidDoc.RecipientKey()))
	try.To(resp.Connection.Validate())
	return resp.DidDoc(), nil
}

func (s *InviteeCompleted) step(ctx context.Context, c *Connection, ev Event) (State, error) {
	next, err := s.handle(ctx, c, ev)
	if err != nil {
		return nil, err
	}
	return &InviteeCompleted{next}, nil
}
