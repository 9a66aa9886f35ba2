/*
Package issuer is the issuer side of the Aries issue credential protocol 1.0.
The issuer offers a credential of a credential definition, receives the
holder's request, issues the credential and waits for the holder's ack. The
credential's revocation registry is resolved at creation and carried through
every state so the issued credential can be revoked later.

The anoncreds operations are made through the core.Issuer collaborator and
messages are sent over a core.Conn the caller gives.
*/
package issuer

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Services are the collaborators of the issuer.
type Services struct {
	Anoncreds core.Issuer
	Resolver  core.CredDefResolver
}

// Issuer is one credential issuance.
type Issuer struct {
	svc      *Services
	sourceID string
	state    State
}

// Create resolves the credential definition and returns the issuer in its
// initial state. The credential data is a JSON object of attribute values.
func Create(
	ctx context.Context,
	svc *Services,
	credDefHandle uint32,
	credData, sourceID string,
) (i *Issuer, err error) {
	defer err2.Handle(&err, "create issuer %s", sourceID)

	try.To1(issuecredential.NewPreview(credData))
	info := try.To1(svc.Resolver.CredDef(ctx, credDefHandle))
	glog.V(3).Infoln(sourceID, "cred def:", info.ID, "rev reg:", info.RevRegID)

	return &Issuer{
		svc:      svc,
		sourceID: sourceID,
		state: &Initial{
			CredDefID: info.ID,
			CredData:  credData,
			RevRegID:  info.RevRegID,
			TailsFile: info.TailsFile,
		},
	}, nil
}

func (i *Issuer) SourceID() string {
	return i.sourceID
}

// State returns the current state variant.
func (i *Issuer) State() State {
	return i.state
}

// StateCode returns the numeric state code.
func (i *Issuer) StateCode() status.StateType {
	return i.state.Code()
}

// ThreadID returns the thread of the exchange, empty before the offer.
func (i *Issuer) ThreadID() string {
	switch s := i.state.(type) {
	case *OfferSent:
		return s.ThreadID
	case *RequestReceived:
		return s.ThreadID
	case *CredentialSent:
		return s.ThreadID
	case *Finished:
		return s.ThreadID
	}
	return ""
}

// ConnectionHandle returns the handle of the connection the offer was sent
// over. The second value is false when the offer isn't sent.
func (i *Issuer) ConnectionHandle() (uint32, bool) {
	switch s := i.state.(type) {
	case *OfferSent:
		return s.ConnectionHandle, true
	case *RequestReceived:
		return s.ConnectionHandle, true
	case *CredentialSent:
		return s.ConnectionHandle, true
	}
	return 0, false
}

// CredentialStatus returns the outcome code of the issuance, 0 until it's
// finished.
func (i *Issuer) CredentialStatus() uint32 {
	if s, ok := i.state.(*Finished); ok {
		return s.Status.Code()
	}
	return 0
}

// RevRegID returns the revocation registry of the credential definition.
func (i *Issuer) RevRegID() string {
	switch s := i.state.(type) {
	case *Initial:
		return s.RevRegID
	case *OfferSent:
		return s.RevRegID
	case *RequestReceived:
		return s.RevRegID
	case *CredentialSent:
		return s.RevocationInfo.RevRegID
	case *Finished:
		return s.RevocationInfo.RevRegID
	}
	return ""
}

// SendOffer creates the credential offer and sends it over the connection.
// The connection handle is recorded for the later steps.
func (i *Issuer) SendOffer(ctx context.Context, conn core.Conn, connHandle uint32) (err error) {
	defer err2.Handle(&err, "send offer")

	s, ok := i.state.(*Initial)
	if !ok {
		return i.notReady("send offer")
	}
	offerJSON := try.To1(i.svc.Anoncreds.CreateCredentialOffer(ctx, s.CredDefID))
	preview := try.To1(issuecredential.NewPreview(s.CredData))
	offer := issuecredential.NewOffer(offerJSON, "", preview)
	try.To(conn.SendMessage(ctx, offer))

	i.setState(&OfferSent{
		Offer:            offerJSON,
		CredData:         s.CredData,
		RevRegID:         s.RevRegID,
		TailsFile:        s.TailsFile,
		ConnectionHandle: connHandle,
		ThreadID:         offer.ThreadID(),
	})
	return nil
}

// SendCredential issues the credential for the received request. If the
// credential cannot be created the holder gets a problem report and the
// issuance finishes as failed, which isn't an error of the call.
func (i *Issuer) SendCredential(ctx context.Context, conn core.Conn) (err error) {
	defer err2.Handle(&err, "send credential")

	s, ok := i.state.(*RequestReceived)
	if !ok {
		return i.notReady("send credential")
	}
	cred, credRevID, err := i.createCredential(ctx, s)
	if err != nil {
		glog.Errorln(i.sourceID, "create credential:", err)
		pr := issuecredential.NewProblemReport(s.ThreadID,
			common.CodeInvalidCredentialRequest, err.Error())
		prot.SendBestEffort(ctx, conn, pr)
		i.setState(s.failed(pr))
		return nil
	}
	try.To(conn.SendMessage(ctx, issuecredential.NewCredential(s.ThreadID, cred)))

	i.setState(&CredentialSent{
		RevocationInfo: RevocationInfo{
			CredRevID: credRevID,
			RevRegID:  s.RevRegID,
			TailsFile: s.TailsFile,
		},
		ConnectionHandle: s.ConnectionHandle,
		ThreadID:         s.ThreadID,
	})
	return nil
}

func (i *Issuer) createCredential(ctx context.Context, s *RequestReceived) (cred, credRevID string, err error) {
	defer err2.Handle(&err)

	request := try.To1(s.Request.RequestsAttach.Content())
	return i.svc.Anoncreds.CreateCredential(ctx, s.Offer, request, s.CredData,
		s.RevRegID, s.TailsFile)
}

// FindMessageToHandle returns the first pending message the current state
// can handle.
func (i *Issuer) FindMessageToHandle(msgs map[string]didcomm.Msg) (uid string, msg didcomm.Msg, found bool) {
	return prot.FindMessageToHandle(msgs, i.state.CanHandle)
}

// UpdateState handles the first pending message of the connection the state
// accepts.
func (i *Issuer) UpdateState(ctx context.Context, conn core.Conn) error {
	return prot.UpdateFromPending(ctx, conn, i.state.CanHandle, func(m didcomm.Msg) error {
		i.UpdateStateWithMessage(m)
		return nil
	})
}

// UpdateStateWithMessage runs the inbound message through the state
// machine. The issuer doesn't answer the messages it receives.
func (i *Issuer) UpdateStateWithMessage(m didcomm.Msg) {
	i.setState(i.state.receive(m))
}

// Revoke revokes the issued credential. The issuance must be finished and
// the credential definition must support revocation.
func (i *Issuer) Revoke(ctx context.Context, publish bool) (err error) {
	defer err2.Handle(&err, "revoke %s", i.sourceID)

	s, ok := i.state.(*Finished)
	if !ok {
		return i.notReady("revoke")
	}
	ri := s.RevocationInfo
	if ri.RevRegID == "" || ri.TailsFile == "" {
		return vcxerr.New(vcxerr.InvalidRevocationDetails,
			"credential definition doesn't support revocation")
	}
	if ri.CredRevID == "" {
		return vcxerr.New(vcxerr.NotReady, "credential wasn't issued")
	}
	try.To(i.svc.Anoncreds.RevokeCredential(ctx, ri.TailsFile, ri.RevRegID,
		ri.CredRevID, publish))
	glog.V(1).Infoln(i.sourceID, "revoked credential", ri.CredRevID)
	return nil
}

func (i *Issuer) setState(st State) {
	if st != i.state {
		glog.V(1).Infof("issuer %s: %s -> %s", i.sourceID, i.state.kind(), st.kind())
	}
	i.state = st
}

func (i *Issuer) notReady(op string) error {
	return vcxerr.Newf(vcxerr.NotReady, "cannot %s in state %s", op, i.state.kind())
}
