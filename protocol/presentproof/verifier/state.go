package verifier

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// State is the verifier's state. The set of states is closed.
type State interface {
	// Code returns the numeric state code callers see.
	Code() status.StateType

	// CanHandle tells if the inbound message is an input of the state.
	CanHandle(m didcomm.Msg) bool

	kind() string

	// validate checks that the data the state needs is present.
	validate() error

	receive(ctx context.Context, v *Verifier, conn core.Conn, m didcomm.Msg) (State, error)
}

// Initial has the proof request data before it's sent.
type Initial struct {
	RequestData string `json:"presentation_request_data"`
	Comment     string `json:"comment,omitempty"`
}

// RequestSent waits the prover's presentation.
type RequestSent struct {
	ConnectionHandle uint32                `json:"connection_handle"`
	Request          *presentproof.Request `json:"presentation_request"`
}

// Finished is the end state. Presentation and RevocationStatus are set
// when the presentation was verified.
type Finished struct {
	ConnectionHandle uint32                     `json:"connection_handle"`
	Request          *presentproof.Request      `json:"presentation_request"`
	Presentation     *presentproof.Presentation `json:"presentation,omitempty"`
	Status           status.Status              `json:"status"`
	RevocationStatus *status.RevocationStatus   `json:"revocation_status,omitempty"`
}

var requestSentTypes = prot.Types(pltype.PresentProofPresentation,
	pltype.PresentProofProblemReport, pltype.ReportProblemProblemReport)

func (*Initial) Code() status.StateType     { return status.Initialized }
func (*RequestSent) Code() status.StateType { return status.OfferSent }

// Code is Accepted only for the successful end.
func (s *Finished) Code() status.StateType {
	if s.Status.Kind == status.Success {
		return status.Accepted
	}
	return status.None
}

func (*Initial) CanHandle(didcomm.Msg) bool { return false }

func (s *RequestSent) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.Request.ThreadID(), requestSentTypes)(m)
}

func (*Finished) CanHandle(didcomm.Msg) bool { return false }

func (*Initial) kind() string     { return "initial" }
func (*RequestSent) kind() string { return "request_sent" }
func (*Finished) kind() string    { return "finished" }

// FinishedFromPresentation is the successful end of the request.
func FinishedFromPresentation(
	s *RequestSent,
	p *presentproof.Presentation,
	rs status.RevocationStatus,
) *Finished {
	return &Finished{
		ConnectionHandle: s.ConnectionHandle,
		Request:          s.Request,
		Presentation:     p,
		Status:           status.Status{Kind: status.Success},
		RevocationStatus: &rs,
	}
}

// FinishedFromProblem is the failed end of the request.
func FinishedFromProblem(s *RequestSent, problemReport didcomm.Msg) *Finished {
	return &Finished{
		ConnectionHandle: s.ConnectionHandle,
		Request:          s.Request,
		Status:           status.NewFailed(problemReport),
	}
}

func (s *Initial) receive(_ context.Context, _ *Verifier, _ core.Conn, m didcomm.Msg) (State, error) {
	logIgnored(s, m)
	return s, nil
}

func (s *RequestSent) receive(ctx context.Context, v *Verifier, conn core.Conn, m didcomm.Msg) (_ State, err error) {
	defer err2.Handle(&err, "presentation received")

	if !s.CanHandle(m) {
		logIgnored(s, m)
		return s, nil
	}
	p, ok := m.(*presentproof.Presentation)
	if !ok {
		return FinishedFromProblem(s, m), nil
	}
	rs, err := v.verify(ctx, conn, s, p)
	if err != nil {
		glog.Warningln(v.sourceID, "presentation isn't valid:", err)
		pr := presentproof.NewProblemReport(s.Request.ThreadID(),
			common.CodeInvalidPresentation, err.Error())
		prot.SendBestEffort(ctx, conn, pr)
		return FinishedFromProblem(s, pr), nil
	}
	return FinishedFromPresentation(s, p, rs), nil
}

func (s *Finished) receive(_ context.Context, _ *Verifier, _ core.Conn, m didcomm.Msg) (State, error) {
	logIgnored(s, m)
	return s, nil
}

// verify validates the presentation and returns its revocation status.
func (v *Verifier) verify(
	ctx context.Context,
	conn core.Conn,
	s *RequestSent,
	p *presentproof.Presentation,
) (rs status.RevocationStatus, err error) {
	defer err2.Handle(&err)

	try.To(v.VerifyPresentation(ctx, conn, s, p))
	checker, ok := v.validator.(core.RevocationChecker)
	if !ok {
		return status.NonRevoked, nil
	}
	proof := try.To1(p.PresentationsAttach.Content())
	return checker.RevocationStatus(ctx, proof)
}

func logIgnored(s State, m didcomm.Msg) {
	glog.V(3).Infof("verifier %s ignores %s (thread %s)", s.kind(),
		m.MsgType(), m.ThreadID())
}
