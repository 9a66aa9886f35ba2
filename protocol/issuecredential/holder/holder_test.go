package holder

import (
	"context"
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pairwise"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/golang/mock/gomock"
	"github.com/lainio/err2/assert"
	"github.com/lainio/err2/try"
)

const (
	offerJSON   = `{"cred_def_id":"cred-def-1","nonce":"1"}`
	requestJSON = `{"prover_did":"did","nonce":"2"}`
	credJSON    = `{"values":{"name":{"raw":"alice"}}}`
	proverDID   = "VsKV7grR1BUE29mG2Fm2kX"
)

var (
	ctx      = context.Background()
	errAnon  = errors.New("anoncreds failure")
	errRelay = errors.New("relay down")
)

func TestMain(m *testing.M) {
	try.To(flag.Set("logtostderr", "true"))
	os.Exit(m.Run())
}

type env struct {
	anon *core.MockHolder
	conn *core.MockConn
	sent []didcomm.Msg
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)
	e := &env{
		anon: core.NewMockHolder(ctrl),
		conn: core.NewMockConn(ctrl),
	}
	e.conn.EXPECT().Pairwise().Return(pairwise.Info{PwDID: proverDID, PwVK: "vk"}).AnyTimes()
	return e
}

func (e *env) expectSends() {
	e.conn.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m didcomm.Msg) error {
			e.sent = append(e.sent, wire(m))
			return nil
		}).AnyTimes()
}

func (e *env) last() didcomm.Msg {
	return e.sent[len(e.sent)-1]
}

func wire(m didcomm.Msg) didcomm.Msg {
	return try.To1(aries.Decode(try.To1(aries.Encode(m))))
}

func newOffer() *issuecredential.Offer {
	preview := try.To1(issuecredential.NewPreview(`{"name":"alice"}`))
	return wire(issuecredential.NewOffer(offerJSON, "degree", preview)).(*issuecredential.Offer)
}

// requested returns the holder which has sent the request.
func (e *env) requested(t *testing.T, offer *issuecredential.Offer) *Holder {
	e.anon.EXPECT().CreateCredentialRequest(gomock.Any(), offerJSON, proverDID).
		Return(requestJSON, "req-meta", "cred-def-json", nil)
	e.expectSends()

	h, err := Create(e.anon, offer, "degree")
	assert.NoError(err)
	assert.Equal(h.StateCode(), status.RequestReceived)
	assert.NoError(h.SendRequest(ctx, e.conn, 5))
	assert.Equal(h.StateCode(), status.OfferSent)
	return h
}

func TestCreate(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	offer := newOffer()
	h, err := Create(nil, offer, "degree")
	assert.NoError(err)
	assert.Equal(h.SourceID(), "degree")
	assert.Equal(h.ThreadID(), offer.MsgID())
	assert.Equal(h.CredentialStatus(), uint32(0))
	_, ok := h.ConnectionHandle()
	assert.ThatNot(ok)

	_, err = Create(nil, nil, "degree")
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON))

	_, _, err = h.Credential()
	assert.That(vcxerr.IsKind(err, vcxerr.NotReady))
}

func TestReceiveCredential(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	offer := newOffer()
	h := e.requested(t, offer)

	req := e.last().(*issuecredential.Request)
	assert.Equal(req.ThreadID(), offer.MsgID())
	content, err := req.RequestsAttach.Content()
	assert.NoError(err)
	assert.Equal(content, requestJSON)
	connHandle, ok := h.ConnectionHandle()
	assert.That(ok)
	assert.Equal(connHandle, uint32(5))

	// a credential of another thread isn't ours
	assert.NoError(h.UpdateStateWithMessage(ctx, e.conn,
		wire(issuecredential.NewCredential("other", credJSON))))
	assert.Equal(h.StateCode(), status.OfferSent)

	e.anon.EXPECT().StoreCredential(gomock.Any(), credJSON, "req-meta", "cred-def-json").
		Return("cred-id-1", nil)
	cred := wire(issuecredential.NewCredential(offer.ThreadID(), credJSON))
	assert.NoError(h.UpdateStateWithMessage(ctx, e.conn, cred))
	assert.Equal(h.StateCode(), status.Accepted)
	assert.Equal(h.CredentialStatus(), uint32(1))

	ack := e.last().(*issuecredential.Ack)
	assert.Equal(ack.ThreadID(), offer.MsgID())

	credID, got, err := h.Credential()
	assert.NoError(err)
	assert.Equal(credID, "cred-id-1")
	assert.That(didcomm.Same(got, cred))

	e.anon.EXPECT().DeleteCredential(gomock.Any(), "cred-id-1").Return(nil)
	assert.NoError(h.DeleteCredential(ctx))
}

func TestReceiveCredentialFailures(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	h := e.requested(t, newOffer())
	e.anon.EXPECT().StoreCredential(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errAnon)
	assert.NoError(h.UpdateStateWithMessage(ctx, e.conn,
		wire(issuecredential.NewCredential(h.ThreadID(), credJSON))))
	pr := e.last().(*issuecredential.ProblemReport)
	assert.Equal(pr.Description.Code, common.CodeInvalidCredential)
	assert.Equal(h.StateCode(), status.None)
	assert.Equal(h.CredentialStatus(), uint32(2))
	_, _, err := h.Credential()
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidState))
	err = h.DeleteCredential(ctx)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidState))

	e = newEnv(t)
	h = e.requested(t, newOffer())
	assert.NoError(h.UpdateStateWithMessage(ctx, e.conn,
		wire(issuecredential.NewProblemReport(h.ThreadID(), "", "revoked"))))
	assert.Equal(h.CredentialStatus(), uint32(2))
}

func TestAckSendFails(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	offer := newOffer()
	e.anon.EXPECT().CreateCredentialRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(requestJSON, "req-meta", "cred-def-json", nil)
	e.anon.EXPECT().StoreCredential(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("cred-id-1", nil)
	gomock.InOrder(
		e.conn.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil),
		e.conn.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errRelay),
	)

	h, err := Create(e.anon, offer, "degree")
	assert.NoError(err)
	assert.NoError(h.SendRequest(ctx, e.conn, 5))
	err = h.UpdateStateWithMessage(ctx, e.conn,
		wire(issuecredential.NewCredential(offer.ThreadID(), credJSON)))
	assert.Error(err)
	assert.Equal(h.StateCode(), status.OfferSent)
}

func TestSendRequestFailure(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	e.expectSends()
	e.anon.EXPECT().CreateCredentialRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", "", "", errAnon)

	h, err := Create(e.anon, newOffer(), "degree")
	assert.NoError(err)
	assert.NoError(h.SendRequest(ctx, e.conn, 5))
	pr := e.last().(*issuecredential.ProblemReport)
	assert.Equal(pr.ThreadID(), h.ThreadID())
	assert.Equal(h.CredentialStatus(), uint32(2))

	err = h.SendRequest(ctx, e.conn, 5)
	assert.That(vcxerr.IsKind(err, vcxerr.NotReady))
}

func TestUpdateState(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	h := e.requested(t, newOffer())
	e.anon.EXPECT().StoreCredential(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("cred-id-1", nil)
	e.conn.EXPECT().Messages(gomock.Any()).Return(map[string]didcomm.Msg{
		"uid-1": wire(trustping.NewPing("hi")),
		"uid-2": wire(issuecredential.NewCredential(h.ThreadID(), credJSON)),
	}, nil)
	e.conn.EXPECT().UpdateMessageStatus(gomock.Any(), "uid-2").Return(nil)

	assert.NoError(h.UpdateState(ctx, e.conn))
	assert.Equal(h.StateCode(), status.Accepted)
}

func TestCredentialOffers(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	e := newEnv(t)
	offer := newOffer()
	e.conn.EXPECT().Messages(gomock.Any()).Return(map[string]didcomm.Msg{
		"uid-1": wire(trustping.NewPing("hi")),
		"uid-2": offer,
	}, nil).Times(4)

	offers, err := CredentialOffers(ctx, e.conn)
	assert.NoError(err)
	assert.Equal(len(offers), 1)
	assert.That(didcomm.Same(offers[0], offer))

	got, err := CredentialOffer(ctx, e.conn, "uid-2")
	assert.NoError(err)
	assert.Equal(got.MsgID(), offer.MsgID())

	_, err = CredentialOffer(ctx, e.conn, "uid-1")
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidMessages))
	_, err = CredentialOffer(ctx, e.conn, "uid-3")
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidMessages))
}

func TestSerialize(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	offer := newOffer()
	states := map[string]State{
		"offer_received": &OfferReceived{Offer: offer},
		"request_sent": &RequestSent{
			Offer:            offer,
			ReqMeta:          "meta",
			CredDefJSON:      "def",
			ConnectionHandle: 5,
			ThreadID:         offer.MsgID(),
		},
		"finished": &Finished{
			Status:     status.Status{Kind: status.Success},
			CredID:     "cred-id-1",
			Credential: issuecredential.NewCredential(offer.MsgID(), credJSON),
			ThreadID:   offer.MsgID(),
		},
	}
	assert.Equal(len(states), len(stateCreators))
	for key, st := range states {
		assert.Equal(st.kind(), key)
		h := &Holder{sourceID: "source " + key, state: st}
		data, err := h.Serialize()
		assert.NoError(err)

		got, err := Deserialize(nil, data)
		assert.NoError(err)
		assert.Equal(got.StateCode(), h.StateCode())
		assert.Equal(got.ThreadID(), offer.MsgID())

		again, err := got.Serialize()
		assert.NoError(err)
		assert.Equal(string(again), string(data))
	}

	for _, data := range []string{
		`{"version":"1.0","state":{"kind":"nope","data":{}}}`,
		`{"version":"1.0","state":{"kind":"offer_received","data":{}}}`,
		`{"version":"1.0","state":{"kind":"request_sent","data":{"thread_id":"t"}}}`,
	} {
		_, err := Deserialize(nil, []byte(data))
		assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON), data)
	}
}
