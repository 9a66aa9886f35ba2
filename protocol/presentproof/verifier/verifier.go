/*
Package verifier is the verifier side of the Aries present proof protocol
1.0. The verifier sends a presentation request and validates the prover's
presentation with the core.ProofValidator collaborator. When the validator
is also a core.RevocationChecker it tells if the presented credentials are
revoked.
*/
package verifier

import (
	"context"
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Verifier is one proof request we make.
type Verifier struct {
	validator core.ProofValidator
	sourceID  string
	state     State
}

// Create returns the verifier for the proof request data JSON.
func Create(validator core.ProofValidator, requestData, comment, sourceID string) (*Verifier, error) {
	if !json.Valid([]byte(requestData)) {
		return nil, vcxerr.New(vcxerr.InvalidJSON, "presentation request data isn't JSON")
	}
	return &Verifier{
		validator: validator,
		sourceID:  sourceID,
		state:     &Initial{RequestData: requestData, Comment: comment},
	}, nil
}

func (v *Verifier) SourceID() string {
	return v.sourceID
}

// State returns the current state variant.
func (v *Verifier) State() State {
	return v.state
}

// StateCode returns the numeric state code.
func (v *Verifier) StateCode() status.StateType {
	return v.state.Code()
}

// ConnectionHandle returns the handle of the connection the request was
// sent over. The second value is false before the request.
func (v *Verifier) ConnectionHandle() (uint32, bool) {
	switch s := v.state.(type) {
	case *RequestSent:
		return s.ConnectionHandle, true
	case *Finished:
		return s.ConnectionHandle, true
	}
	return 0, false
}

// PresentationStatus returns the outcome code of the request, 0 until it's
// finished.
func (v *Verifier) PresentationStatus() uint32 {
	if s, ok := v.state.(*Finished); ok {
		return s.Status.Code()
	}
	return 0
}

// Presentation returns the verified presentation and its revocation status.
func (v *Verifier) Presentation() (*presentproof.Presentation, status.RevocationStatus, error) {
	s, ok := v.state.(*Finished)
	if !ok || s.Presentation == nil {
		return nil, "", vcxerr.Newf(vcxerr.NotReady,
			"no verified presentation in state %s", v.state.kind())
	}
	return s.Presentation, *s.RevocationStatus, nil
}

// SendRequest sends the presentation request to the prover.
func (v *Verifier) SendRequest(ctx context.Context, conn core.Conn, connHandle uint32) (err error) {
	defer err2.Handle(&err, "send presentation request")

	s, ok := v.state.(*Initial)
	if !ok {
		return vcxerr.Newf(vcxerr.NotReady, "request already sent, state %s", v.state.kind())
	}
	req := presentproof.NewRequest(s.RequestData, s.Comment)
	try.To(conn.SendMessage(ctx, req))

	v.setState(&RequestSent{ConnectionHandle: connHandle, Request: req})
	return nil
}

// VerifyPresentation validates the presentation against the request of s.
// The prover gets an ack when it asked for one. The state isn't changed.
func (v *Verifier) VerifyPresentation(
	ctx context.Context,
	conn core.Conn,
	s *RequestSent,
	p *presentproof.Presentation,
) (err error) {
	defer err2.Handle(&err, "verify presentation")

	proof := try.To1(p.PresentationsAttach.Content())
	request := try.To1(s.Request.RequestPresentationsAttach.Content())
	if !try.To1(v.validator.Validate(ctx, proof, request)) {
		return vcxerr.New(vcxerr.InvalidProof, "presentation verification failed")
	}
	if p.AckRequested() {
		try.To(conn.SendMessage(ctx, presentproof.NewAck(s.Request.ThreadID())))
	}
	return nil
}

// FindMessageToHandle returns the first pending message the current state
// can handle.
func (v *Verifier) FindMessageToHandle(msgs map[string]didcomm.Msg) (uid string, msg didcomm.Msg, found bool) {
	return prot.FindMessageToHandle(msgs, v.state.CanHandle)
}

// UpdateState handles the first pending message of the connection the state
// accepts.
func (v *Verifier) UpdateState(ctx context.Context, conn core.Conn) error {
	return prot.UpdateFromPending(ctx, conn, v.state.CanHandle, func(m didcomm.Msg) error {
		return v.UpdateStateWithMessage(ctx, conn, m)
	})
}

// UpdateStateWithMessage runs the inbound message through the state
// machine. On error the state is left as it was.
func (v *Verifier) UpdateStateWithMessage(ctx context.Context, conn core.Conn, m didcomm.Msg) (err error) {
	defer err2.Handle(&err, "verifier %s", v.sourceID)

	v.setState(try.To1(v.state.receive(ctx, v, conn, m)))
	return nil
}

func (v *Verifier) setState(st State) {
	if st != v.state {
		glog.V(1).Infof("verifier %s: %s -> %s", v.sourceID, v.state.kind(), st.kind())
	}
	v.state = st
}
