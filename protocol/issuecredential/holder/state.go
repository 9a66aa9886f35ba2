package holder

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// State is the holder's state. The set of states is closed.
type State interface {
	// Code returns the numeric state code callers see.
	Code() status.StateType

	// CanHandle tells if the inbound message is an input of the state.
	CanHandle(m didcomm.Msg) bool

	kind() string

	// validate checks that the data the state needs is present.
	validate() error

	// receive returns the next state for the inbound message. Messages the
	// state doesn't handle return the receiver.
	receive(ctx context.Context, h *Holder, conn core.Conn, m didcomm.Msg) (State, error)
}

// OfferReceived has the issuer's offer.
type OfferReceived struct {
	Offer *issuecredential.Offer `json:"offer"`
}

// RequestSent waits the credential.
type RequestSent struct {
	Offer            *issuecredential.Offer `json:"offer"`
	ReqMeta          string                 `json:"req_meta"`
	CredDefJSON      string                 `json:"cred_def_json"`
	ConnectionHandle uint32                 `json:"connection_handle"`
	ThreadID         string                 `json:"thread_id"`
}

// Finished is the end state. A successful issuance has the stored
// credential.
type Finished struct {
	Status     status.Status               `json:"status"`
	CredID     string                      `json:"cred_id,omitempty"`
	Credential *issuecredential.Credential `json:"credential,omitempty"`
	ThreadID   string                      `json:"thread_id,omitempty"`
}

var requestSentTypes = prot.Types(pltype.IssueCredentialIssue,
	pltype.IssueCredentialProblemReport, pltype.ReportProblemProblemReport)

func (*OfferReceived) Code() status.StateType { return status.RequestReceived }
func (*RequestSent) Code() status.StateType   { return status.OfferSent }

// Code is Accepted only for the successful end.
func (s *Finished) Code() status.StateType {
	if s.Status.Kind == status.Success {
		return status.Accepted
	}
	return status.None
}

func (*OfferReceived) CanHandle(didcomm.Msg) bool { return false }

func (s *RequestSent) CanHandle(m didcomm.Msg) bool {
	return prot.Threaded(s.ThreadID, requestSentTypes)(m)
}

func (*Finished) CanHandle(didcomm.Msg) bool { return false }

func (*OfferReceived) kind() string { return "offer_received" }
func (*RequestSent) kind() string   { return "request_sent" }
func (*Finished) kind() string      { return "finished" }

func (s *OfferReceived) receive(_ context.Context, _ *Holder, _ core.Conn, m didcomm.Msg) (State, error) {
	logIgnored(s, m)
	return s, nil
}

func (s *RequestSent) receive(ctx context.Context, h *Holder, conn core.Conn, m didcomm.Msg) (_ State, err error) {
	defer err2.Handle(&err, "credential received")

	if !s.CanHandle(m) {
		logIgnored(s, m)
		return s, nil
	}
	cred, ok := m.(*issuecredential.Credential)
	if !ok {
		return &Finished{Status: status.NewFailed(m), ThreadID: s.ThreadID}, nil
	}
	credID, err := h.storeCredential(ctx, s, cred)
	if err != nil {
		glog.Errorln(h.sourceID, "store credential:", err)
		pr := issuecredential.NewProblemReport(s.ThreadID,
			common.CodeInvalidCredential, err.Error())
		prot.SendBestEffort(ctx, conn, pr)
		return &Finished{Status: status.NewFailed(pr), ThreadID: s.ThreadID}, nil
	}
	if cred.AckRequested() {
		try.To(conn.SendMessage(ctx, issuecredential.NewAck(s.ThreadID)))
	}
	return &Finished{
		Status:     status.Status{Kind: status.Success},
		CredID:     credID,
		Credential: cred,
		ThreadID:   s.ThreadID,
	}, nil
}

func (s *Finished) receive(_ context.Context, _ *Holder, _ core.Conn, m didcomm.Msg) (State, error) {
	logIgnored(s, m)
	return s, nil
}

func logIgnored(s State, m didcomm.Msg) {
	glog.V(3).Infof("holder %s ignores %s (thread %s)", s.kind(),
		m.MsgType(), m.ThreadID())
}
