package prover

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/golang/glog"
)

// State is the prover's state. The set of states is closed.
type State interface {
	// Code returns the numeric state code callers see.
	Code() status.StateType

	// CanHandle tells if the inbound message is an input of the state.
	CanHandle(m didcomm.Msg) bool

	kind() string

	// validate checks that the data the state needs is present.
	validate() error

	receive(m didcomm.Msg) State
}

// Initial has the verifier's presentation request.
type Initial struct {
	Request *presentproof.Request `json:"presentation_request"`
}

// Prepared has the presentation ready to be sent.
type Prepared struct {
	Request      *presentproof.Request      `json:"presentation_request"`
	Presentation *presentproof.Presentation `json:"presentation"`
}

// PreparationFailed has the problem report which is sent instead of the
// presentation.
type PreparationFailed struct {
	Request       *presentproof.Request       `json:"presentation_request"`
	ProblemReport *presentproof.ProblemReport `json:"problem_report"`
}

// Sent waits the verifier's ack.
type Sent struct {
	ConnectionHandle uint32                     `json:"connection_handle"`
	Request          *presentproof.Request      `json:"presentation_request"`
	Presentation     *presentproof.Presentation `json:"presentation"`
}

// Finished is the end state.
type Finished struct {
	ConnectionHandle uint32                     `json:"connection_handle"`
	Request          *presentproof.Request      `json:"presentation_request"`
	Presentation     *presentproof.Presentation `json:"presentation,omitempty"`
	Status           status.Status              `json:"status"`
}

var sentTypes = prot.Types(pltype.PresentProofACK,
	pltype.PresentProofProblemReport, pltype.ReportProblemProblemReport)

func (*Initial) Code() status.StateType           { return status.RequestReceived }
func (*Prepared) Code() status.StateType          { return status.RequestReceived }
func (*PreparationFailed) Code() status.StateType { return status.RequestReceived }
func (*Sent) Code() status.StateType              { return status.OfferSent }

// Code is Accepted only for the successful end.
func (s *Finished) Code() status.StateType {
	if s.Status.Kind == status.Success {
		return status.Accepted
	}
	return status.None
}

func (*Initial) CanHandle(didcomm.Msg) bool           { return false }
func (*Prepared) CanHandle(didcomm.Msg) bool          { return false }
func (*PreparationFailed) CanHandle(didcomm.Msg) bool { return false }

func (s *Sent) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.Request.ThreadID(), sentTypes)(m)
}

func (*Finished) CanHandle(didcomm.Msg) bool { return false }

func (*Initial) kind() string           { return "initial" }
func (*Prepared) kind() string          { return "prepared" }
func (*PreparationFailed) kind() string { return "preparation_failed" }
func (*Sent) kind() string              { return "sent" }
func (*Finished) kind() string          { return "finished" }

func (s *Initial) receive(m didcomm.Msg) State           { return ignore(s, m) }
func (s *Prepared) receive(m didcomm.Msg) State          { return ignore(s, m) }
func (s *PreparationFailed) receive(m didcomm.Msg) State { return ignore(s, m) }
func (s *Finished) receive(m didcomm.Msg) State          { return ignore(s, m) }

func (s *Sent) receive(m didcomm.Msg) State {
	if !s.CanHandle(m) {
		return ignore(s, m)
	}
	fin := &Finished{
		ConnectionHandle: s.ConnectionHandle,
		Request:          s.Request,
		Presentation:     s.Presentation,
		Status:           status.Status{Kind: status.Success},
	}
	if _, ok := m.(*presentproof.Ack); !ok {
		fin.Status = status.NewFailed(m)
	}
	return fin
}

func ignore(s State, m didcomm.Msg) State {
	glog.V(3).Infof("prover %s ignores %s (thread %s)", s.kind(),
		m.MsgType(), m.ThreadID())
	return s
}
