/*
Package prover is the prover side of the Aries present proof protocol 1.0.
The prover builds the presentation for the verifier's request with the
core.Prover collaborator, sends it and waits for the verifier's ack. The
request can be declined instead.
*/
package prover

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Prover is one presentation request we answer.
type Prover struct {
	anoncreds core.Prover
	sourceID  string
	state     State
}

// Create returns the prover for the received presentation request.
func Create(anoncreds core.Prover, request *presentproof.Request, sourceID string) (*Prover, error) {
	if request == nil {
		return nil, vcxerr.New(vcxerr.InvalidJSON, "presentation request missing")
	}
	return &Prover{
		anoncreds: anoncreds,
		sourceID:  sourceID,
		state:     &Initial{Request: request},
	}, nil
}

func (p *Prover) SourceID() string {
	return p.sourceID
}

// State returns the current state variant.
func (p *Prover) State() State {
	return p.state
}

// StateCode returns the numeric state code.
func (p *Prover) StateCode() status.StateType {
	return p.state.Code()
}

// Request returns the presentation request we answer.
func (p *Prover) Request() *presentproof.Request {
	switch s := p.state.(type) {
	case *Initial:
		return s.Request
	case *Prepared:
		return s.Request
	case *PreparationFailed:
		return s.Request
	case *Sent:
		return s.Request
	case *Finished:
		return s.Request
	}
	return nil
}

// ConnectionHandle returns the handle of the connection the presentation
// was sent over. The second value is false before the presentation is sent.
func (p *Prover) ConnectionHandle() (uint32, bool) {
	switch s := p.state.(type) {
	case *Sent:
		return s.ConnectionHandle, true
	case *Finished:
		return s.ConnectionHandle, true
	}
	return 0, false
}

// PresentationStatus returns the outcome code, 0 until it's finished.
func (p *Prover) PresentationStatus() uint32 {
	if s, ok := p.state.(*Finished); ok {
		return s.Status.Code()
	}
	return 0
}

// Presentation returns the prepared presentation.
func (p *Prover) Presentation() (*presentproof.Presentation, error) {
	switch s := p.state.(type) {
	case *Prepared:
		return s.Presentation, nil
	case *Sent:
		return s.Presentation, nil
	case *Finished:
		if s.Presentation != nil {
			return s.Presentation, nil
		}
	}
	return nil, p.notReady("get presentation")
}

// GeneratePresentation builds the presentation from the selected
// credentials and self attested attributes. A failure is stored as a problem
// report which SendPresentation sends to the verifier.
func (p *Prover) GeneratePresentation(ctx context.Context, credentials, selfAttested string) (err error) {
	defer err2.Handle(&err, "generate presentation")

	s, ok := p.state.(*Initial)
	if !ok {
		return p.notReady("generate presentation")
	}
	thID := s.Request.ThreadID()
	proof, err := p.createPresentation(ctx, s.Request, credentials, selfAttested)
	if err != nil {
		glog.Errorln(p.sourceID, "create presentation:", err)
		p.setState(&PreparationFailed{
			Request:       s.Request,
			ProblemReport: presentproof.NewProblemReport(thID,
				common.CodeInvalidPresentationReq, err.Error()),
		})
		return nil
	}
	p.setState(&Prepared{
		Request:      s.Request,
		Presentation: presentproof.NewPresentation(thID, proof),
	})
	return nil
}

func (p *Prover) createPresentation(
	ctx context.Context,
	req *presentproof.Request,
	credentials, selfAttested string,
) (_ string, err error) {
	defer err2.Handle(&err)

	request := try.To1(req.RequestPresentationsAttach.Content())
	return p.anoncreds.CreatePresentation(ctx, request, credentials, selfAttested)
}

// SendPresentation sends the prepared presentation. When the preparation
// failed the verifier gets the problem report and the protocol ends.
func (p *Prover) SendPresentation(ctx context.Context, conn core.Conn, connHandle uint32) (err error) {
	defer err2.Handle(&err, "send presentation")

	switch s := p.state.(type) {
	case *Prepared:
		try.To(conn.SendMessage(ctx, s.Presentation))
		p.setState(&Sent{
			ConnectionHandle: connHandle,
			Request:          s.Request,
			Presentation:     s.Presentation,
		})
	case *PreparationFailed:
		try.To(conn.SendMessage(ctx, s.ProblemReport))
		p.setState(&Finished{
			ConnectionHandle: connHandle,
			Request:          s.Request,
			Status:           status.NewFailed(s.ProblemReport),
		})
	default:
		return p.notReady("send presentation")
	}
	return nil
}

// DeclinePresentationRequest tells the verifier we don't answer the request
// and ends the protocol.
func (p *Prover) DeclinePresentationRequest(
	ctx context.Context,
	conn core.Conn,
	connHandle uint32,
	reason string,
) (err error) {
	defer err2.Handle(&err, "decline presentation request")

	var req *presentproof.Request
	switch s := p.state.(type) {
	case *Initial:
		req = s.Request
	case *Prepared:
		req = s.Request
	default:
		return p.notReady("decline")
	}
	pr := presentproof.NewProblemReport(req.ThreadID(), common.CodeRequestRejected, reason)
	try.To(conn.SendMessage(ctx, pr))
	p.setState(&Finished{
		ConnectionHandle: connHandle,
		Request:          req,
		Status:           status.Status{Kind: status.Declined},
	})
	return nil
}

// FindMessageToHandle returns the first pending message the current state
// can handle.
func (p *Prover) FindMessageToHandle(msgs map[string]didcomm.Msg) (uid string, msg didcomm.Msg, found bool) {
	return prot.FindMessageToHandle(msgs, p.state.CanHandle)
}

// UpdateState handles the first pending message of the connection the state
// accepts.
func (p *Prover) UpdateState(ctx context.Context, conn core.Conn) error {
	return prot.UpdateFromPending(ctx, conn, p.state.CanHandle, func(m didcomm.Msg) error {
		p.UpdateStateWithMessage(m)
		return nil
	})
}

// UpdateStateWithMessage runs the inbound message through the state
// machine.
func (p *Prover) UpdateStateWithMessage(m didcomm.Msg) {
	p.setState(p.state.receive(m))
}

func (p *Prover) setState(st State) {
	if st != p.state {
		glog.V(1).Infof("prover %s: %s -> %s", p.sourceID, p.state.kind(), st.kind())
	}
	p.state = st
}

func (p *Prover) notReady(op string) error {
	return vcxerr.Newf(vcxerr.NotReady, "cannot %s in state %s", op, p.state.kind())
}

// PresentationRequests returns the presentation requests pending in the
// connection.
func PresentationRequests(ctx context.Context, conn core.Conn) (reqs []*presentproof.Request, err error) {
	defer err2.Handle(&err, "presentation requests")

	for _, m := range try.To1(conn.Messages(ctx)) {
		if req, ok := m.(*presentproof.Request); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}
