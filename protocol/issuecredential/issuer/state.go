package issuer

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/golang/glog"
)

// State is the issuer's state. The set of states is closed and every state
// holds only the data of its phase.
type State interface {
	// Code returns the numeric state code callers see.
	Code() status.StateType

	// CanHandle tells if the inbound message is an input of the state.
	// Messages of other threads are never accepted.
	CanHandle(m didcomm.Msg) bool

	kind() string

	// validate checks that the data the state needs is present.
	validate() error

	// receive returns the next state for the inbound message. Messages the
	// state doesn't handle return the receiver.
	receive(m didcomm.Msg) State
}

// RevocationInfo locates the issued credential in its revocation registry.
type RevocationInfo struct {
	CredRevID string `json:"cred_rev_id,omitempty"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	TailsFile string `json:"tails_file,omitempty"`
}

// Initial is the issuer before the offer.
type Initial struct {
	CredDefID string `json:"cred_def_id"`
	CredData  string `json:"credential_json"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	TailsFile string `json:"tails_file,omitempty"`
}

// OfferSent waits the holder's credential request.
type OfferSent struct {
	Offer            string `json:"offer"`
	CredData         string `json:"cred_data"`
	RevRegID         string `json:"rev_reg_id,omitempty"`
	TailsFile        string `json:"tails_file,omitempty"`
	ConnectionHandle uint32 `json:"connection_handle"`
	ThreadID         string `json:"thread_id"`
}

// RequestReceived has the request, the credential can be sent.
type RequestReceived struct {
	OfferSent
	Request *issuecredential.Request `json:"request"`
}

// CredentialSent waits the holder's ack.
type CredentialSent struct {
	RevocationInfo   RevocationInfo `json:"revocation_info"`
	ConnectionHandle uint32         `json:"connection_handle"`
	ThreadID         string         `json:"thread_id"`
}

// Finished is the end state. RevocationInfo has the cred_rev_id only when
// the credential was issued.
type Finished struct {
	Status         status.Status  `json:"status"`
	RevocationInfo RevocationInfo `json:"revocation_info"`
	ThreadID       string         `json:"thread_id,omitempty"`
}

var (
	problemTypes = prot.Types(pltype.IssueCredentialProblemReport,
		pltype.ReportProblemProblemReport)
	offerSentTypes = prot.Types(pltype.IssueCredentialRequest,
		pltype.IssueCredentialProblemReport, pltype.ReportProblemProblemReport)
	credentialSentTypes = prot.Types(pltype.IssueCredentialACK,
		pltype.IssueCredentialProblemReport, pltype.ReportProblemProblemReport)
)

func (*Initial) Code() status.StateType         { return status.Initialized }
func (*OfferSent) Code() status.StateType       { return status.OfferSent }
func (*RequestReceived) Code() status.StateType { return status.RequestReceived }
func (*CredentialSent) Code() status.StateType  { return status.Accepted }

// Code is Accepted only for the successful end.
func (s *Finished) Code() status.StateType {
	if s.Status.Kind == status.Success {
		return status.Accepted
	}
	return status.None
}

func (*Initial) CanHandle(didcomm.Msg) bool { return false }

func (s *OfferSent) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.ThreadID, offerSentTypes)(m)
}

func (s *RequestReceived) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.ThreadID, problemTypes)(m)
}

func (s *CredentialSent) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.ThreadID, credentialSentTypes)(m)
}

func (*Finished) CanHandle(didcomm.Msg) bool { return false }

func (*Initial) kind() string         { return "initial" }
func (*OfferSent) kind() string       { return "offer_sent" }
func (*RequestReceived) kind() string { return "request_received" }
func (*CredentialSent) kind() string  { return "credential_sent" }
func (*Finished) kind() string        { return "finished" }

func (s *Initial) receive(m didcomm.Msg) State {
	logIgnored(s, m)
	return s
}

func (s *OfferSent) receive(m didcomm.Msg) State {
	if !s.CanHandle(m) {
		logIgnored(s, m)
		return s
	}
	switch m := m.(type) {
	case *issuecredential.Request:
		return &RequestReceived{OfferSent: *s, Request: m}
	case *issuecredential.ProblemReport, *common.ProblemReport:
		return s.failed(m)
	}
	return s
}

func (s *OfferSent) failed(pr didcomm.Msg) *Finished {
	return &Finished{
		Status: status.NewFailed(pr),
		RevocationInfo: RevocationInfo{
			RevRegID:  s.RevRegID,
			TailsFile: s.TailsFile,
		},
		ThreadID: s.ThreadID,
	}
}

func (s *RequestReceived) receive(m didcomm.Msg) State {
	if !s.CanHandle(m) {
		logIgnored(s, m)
		return s
	}
	return s.failed(m)
}

func (s *CredentialSent) receive(m didcomm.Msg) State {
	if !s.CanHandle(m) {
		logIgnored(s, m)
		return s
	}
	fin := &Finished{
		Status:         status.Status{Kind: status.Success},
		RevocationInfo: s.RevocationInfo,
		ThreadID:       s.ThreadID,
	}
	if _, ok := m.(*issuecredential.Ack); !ok {
		fin.Status = status.NewFailed(m)
	}
	return fin
}

func (s *Finished) receive(m didcomm.Msg) State {
	logIgnored(s, m)
	return s
}

func logIgnored(s State, m didcomm.Msg) {
	glog.V(3).Infof("issuer %s ignores %s (thread %s)", s.kind(),
		m.MsgType(), m.ThreadID())
}
