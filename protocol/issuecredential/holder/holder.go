/*
Package holder is the holder side of the Aries issue credential protocol 1.0.
The holder answers the issuer's offer with a credential request and stores
the credential it receives.
*/
package holder

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

// Holder is one credential we are receiving.
type Holder struct {
	anoncreds core.Holder
	sourceID  string
	state     State
}

// Create returns the holder for the received offer.
func Create(anoncreds core.Holder, offer *issuecredential.Offer, sourceID string) (*Holder, error) {
	if offer == nil {
		return nil, vcxerr.New(vcxerr.InvalidJSON, "credential offer missing")
	}
	return &Holder{
		anoncreds: anoncreds,
		sourceID:  sourceID,
		state:     &OfferReceived{Offer: offer},
	}, nil
}

func (h *Holder) SourceID() string {
	return h.sourceID
}

// State returns the current state variant.
func (h *Holder) State() State {
	return h.state
}

// StateCode returns the numeric state code.
func (h *Holder) StateCode() status.StateType {
	return h.state.Code()
}

// ThreadID returns the thread of the exchange which the offer started.
func (h *Holder) ThreadID() string {
	switch s := h.state.(type) {
	case *OfferReceived:
		return s.Offer.ThreadID()
	case *RequestSent:
		return s.ThreadID
	case *Finished:
		return s.ThreadID
	}
	return ""
}

// ConnectionHandle returns the handle of the connection the request was
// sent over. The second value is false before the request.
func (h *Holder) ConnectionHandle() (uint32, bool) {
	if s, ok := h.state.(*RequestSent); ok {
		return s.ConnectionHandle, true
	}
	return 0, false
}

// CredentialStatus returns the outcome code of the issuance, 0 until it's
// finished.
func (h *Holder) CredentialStatus() uint32 {
	if s, ok := h.state.(*Finished); ok {
		return s.Status.Code()
	}
	return 0
}

// SendRequest creates the credential request for the offer and sends it to
// the issuer. If the request cannot be created the issuer gets a problem
// report and the issuance finishes as failed.
func (h *Holder) SendRequest(ctx context.Context, conn core.Conn, connHandle uint32) (err error) {
	defer err2.Handle(&err, "send credential request")

	s, ok := h.state.(*OfferReceived)
	if !ok {
		return h.notReady("send request")
	}
	thID := s.Offer.ThreadID()
	request, reqMeta, credDef, err := h.createRequest(ctx, conn, s.Offer)
	if err != nil {
		glog.Errorln(h.sourceID, "create credential request:", err)
		pr := issuecredential.NewProblemReport(thID,
			common.CodeInvalidCredentialOffer, err.Error())
		prot.SendBestEffort(ctx, conn, pr)
		h.setState(&Finished{Status: status.NewFailed(pr), ThreadID: thID})
		return nil
	}
	try.To(conn.SendMessage(ctx, issuecredential.NewRequest(thID, request)))

	h.setState(&RequestSent{
		Offer:            s.Offer,
		ReqMeta:          reqMeta,
		CredDefJSON:      credDef,
		ConnectionHandle: connHandle,
		ThreadID:         thID,
	})
	return nil
}

func (h *Holder) createRequest(
	ctx context.Context,
	conn core.Conn,
	offer *issuecredential.Offer,
) (request, reqMeta, credDef string, err error) {
	defer err2.Handle(&err)

	offerJSON := try.To1(offer.OffersAttach.Content())
	return h.anoncreds.CreateCredentialRequest(ctx, offerJSON, conn.Pairwise().PwDID)
}

func (h *Holder) storeCredential(
	ctx context.Context,
	s *RequestSent,
	cred *issuecredential.Credential,
) (credID string, err error) {
	defer err2.Handle(&err)

	credJSON := try.To1(cred.CredentialsAttach.Content())
	return h.anoncreds.StoreCredential(ctx, credJSON, s.ReqMeta, s.CredDefJSON)
}

// FindMessageToHandle returns the first pending message the current state
// can handle.
func (h *Holder) FindMessageToHandle(msgs map[string]didcomm.Msg) (uid string, msg didcomm.Msg, found bool) {
	return prot.FindMessageToHandle(msgs, h.state.CanHandle)
}

// UpdateState handles the first pending message of the connection the state
// accepts.
func (h *Holder) UpdateState(ctx context.Context, conn core.Conn) error {
	return prot.UpdateFromPending(ctx, conn, h.state.CanHandle, func(m didcomm.Msg) error {
		return h.UpdateStateWithMessage(ctx, conn, m)
	})
}

// UpdateStateWithMessage runs the inbound message through the state
// machine. On error the state is left as it was.
func (h *Holder) UpdateStateWithMessage(ctx context.Context, conn core.Conn, m didcomm.Msg) (err error) {
	defer err2.Handle(&err, "holder %s", h.sourceID)

	h.setState(try.To1(h.state.receive(ctx, h, conn, m)))
	return nil
}

// Credential returns the stored credential's ID and the credential message.
func (h *Holder) Credential() (credID string, cred *issuecredential.Credential, err error) {
	s, ok := h.state.(*Finished)
	if !ok {
		return "", nil, h.notReady("get credential")
	}
	if s.Credential == nil {
		return "", nil, vcxerr.New(vcxerr.InvalidState, "credential wasn't received")
	}
	return s.CredID, s.Credential, nil
}

// DeleteCredential deletes the stored credential from the wallet.
func (h *Holder) DeleteCredential(ctx context.Context) (err error) {
	defer err2.Handle(&err, "delete credential")

	credID, _ := try.To2(h.Credential())
	try.To(h.anoncreds.DeleteCredential(ctx, credID))
	glog.V(1).Infoln(h.sourceID, "credential deleted:", credID)
	return nil
}

func (h *Holder) setState(st State) {
	if st != h.state {
		glog.V(1).Infof("holder %s: %s -> %s", h.sourceID, h.state.kind(), st.kind())
	}
	h.state = st
}

func (h *Holder) notReady(op string) error {
	return vcxerr.Newf(vcxerr.NotReady, "cannot %s in state %s", op, h.state.kind())
}

// CredentialOffers returns the credential offers pending in the connection.
func CredentialOffers(ctx context.Context, conn core.Conn) (offers []*issuecredential.Offer, err error) {
	defer err2.Handle(&err, "credential offers")

	for _, m := range try.To1(conn.Messages(ctx)) {
		if offer, ok := m.(*issuecredential.Offer); ok {
			offers = append(offers, offer)
		}
	}
	return offers, nil
}

// CredentialOffer returns the pending message of the connection by its UID.
// The message must be a credential offer.
func CredentialOffer(ctx context.Context, conn core.Conn, uid string) (_ *issuecredential.Offer, err error) {
	defer err2.Handle(&err, "credential offer")

	msgs := try.To1(conn.Messages(ctx))
	m, ok := msgs[uid]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidMessages, "message %s not found", uid)
	}
	offer, ok := m.(*issuecredential.Offer)
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidMessages,
			"message %s is %s, not a credential offer", uid, m.MsgType())
	}
	return offer, nil
}
