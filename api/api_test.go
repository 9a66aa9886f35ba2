package api

import (
	"context"
	"encoding/json"
	"flag"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/ssi"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/trans"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/issuecredential"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/golang/mock/gomock"
	"github.com/lainio/err2/assert"
	"github.com/lainio/err2/try"
)

var (
	ctx = context.Background()
	server *httptest.Server
)

func TestMain(m *testing.M) {
	setUp()
	code := m.Run()
	tearDown()
	os.Exit(code)
}

func setUp() {
	try.To(flag.Set("logtostderr", "true"))
	try.To(flag.Set("v", "0"))

	relay := trans.NewRelay(ssi.NewWallet(nil, nil), "")
	server = httptest.NewServer(relay)
	relay.SetBaseURL(server.URL)
}

func tearDown() {
	server.Close()
}

// party is an agent with a real wallet and relay client. Only the anoncreds
// are mocked.
type party struct {
	*Agent
	issuer    *core.MockIssuer
	resolver  *core.MockCredDefResolver
	holder    *core.MockHolder
	prover    *core.MockProver
	validator *core.MockProofValidator
}

func newParty(t *testing.T) *party {
	ctrl := gomock.NewController(t)
	w := ssi.NewWallet(nil, nil)
	client := trans.New(server.URL, w)
	p := &party{
		issuer:    core.NewMockIssuer(ctrl),
		resolver:  core.NewMockCredDefResolver(ctrl),
		holder:    core.NewMockHolder(ctrl),
		prover:    core.NewMockProver(ctrl),
		validator: core.NewMockProofValidator(ctrl),
	}
	p.Agent = New(Services{
		Crypto:      w,
		Transport:   client,
		Provisioner: client,
		Issuer:      p.issuer,
		Resolver:    p.resolver,
		Holder:      p.holder,
		Prover:      p.prover,
		Validator:   p.validator,
	})
	return p
}

func (p *party) connState(h uint32) status.StateType {
	return try.To1(p.ConnectionState(h))
}

// pendingUID returns the uid of the first pending message f accepts.
func (p *party) pendingUID(h uint32, f func(m didcomm.Msg) bool) string {
	var msgs map[string]json.RawMessage
	try.To(json.Unmarshal([]byte(try.To1(p.ConnectionMessages(ctx, h))), &msgs))
	for uid, data := range msgs {
		if f(try.To1(aries.Decode(data))) {
			return uid
		}
	}
	return ""
}

// connect runs the connection protocol between the parties through the
// relay.
func connect(t *testing.T) (alice, bob *party, aliceConn, bobConn uint32) {
	alice, bob = newParty(t), newParty(t)

	aliceConn = alice.ConnectionCreate("alice")
	assert.Equal(alice.connState(aliceConn), status.Initialized)
	assert.NoError(alice.ConnectionConnect(ctx, aliceConn))
	assert.Equal(alice.connState(aliceConn), status.OfferSent)

	invite, err := alice.ConnectionInviteDetails(aliceConn)
	assert.NoError(err)
	bobConn, err = bob.ConnectionCreateWithInvite(ctx, "bob", invite)
	assert.NoError(err)
	assert.Equal(bob.connState(bobConn), status.OfferSent)

	assert.NoError(bob.ConnectionConnect(ctx, bobConn))
	assert.Equal(bob.connState(bobConn), status.RequestReceived)

	assert.NoError(alice.ConnectionUpdateState(ctx, aliceConn))
	assert.Equal(alice.connState(aliceConn), status.RequestReceived)

	assert.NoError(bob.ConnectionUpdateState(ctx, bobConn))
	assert.Equal(bob.connState(bobConn), status.Accepted)

	assert.NoError(alice.ConnectionUpdateState(ctx, aliceConn))
	assert.Equal(alice.connState(aliceConn), status.Accepted)
	return alice, bob, aliceConn, bobConn
}

func TestConnection(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	alice, bob, aliceConn, bobConn := connect(t)

	aliceInfo, err := alice.ConnectionInfo(aliceConn)
	assert.NoError(err)
	var info struct {
		My    struct{ DID string }
		Their *struct{ DID string }
	}
	assert.NoError(json.Unmarshal([]byte(aliceInfo), &info))
	assert.That(info.Their != nil)

	remoteDID, err := bob.ConnectionRemoteDID(bobConn)
	assert.NoError(err)
	assert.Equal(remoteDID, info.My.DID)
	_, err = bob.ConnectionRemoteVK(bobConn)
	assert.NoError(err)

	_, err = bob.ConnectionSendMessage(ctx, bobConn, "hello alice")
	assert.NoError(err)
	uid := alice.pendingUID(aliceConn, func(didcomm.Msg) bool { return true })
	assert.NotEqual(uid, "")
	assert.NoError(alice.ConnectionUpdateMessageStatus(ctx, aliceConn, uid))
	assert.Equal(alice.pendingUID(aliceConn, func(didcomm.Msg) bool { return true }), "")

	data, err := bob.ConnectionSerialize(bobConn)
	assert.NoError(err)
	again, err := bob.ConnectionDeserialize(data)
	assert.NoError(err)
	assert.NotEqual(again, bobConn)
	assert.Equal(bob.connState(again), status.Accepted)

	assert.NoError(bob.ConnectionDelete(ctx, again))
	_, err = bob.ConnectionState(again)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidConnectionHandle))
}

func TestIssueAndPresent(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	alice, bob, aliceConn, bobConn := connect(t)

	alice.resolver.EXPECT().CredDef(gomock.Any(), uint32(7)).
		Return(core.CredDefInfo{ID: "cred-def-1"}, nil)
	alice.issuer.EXPECT().CreateCredentialOffer(gomock.Any(), "cred-def-1").
		Return(`{"cred_def_id":"cred-def-1"}`, nil)
	alice.issuer.EXPECT().CreateCredential(gomock.Any(), gomock.Any(), `{"req":1}`,
		gomock.Any(), "", "").Return(`{"values":{}}`, "", nil)
	bob.holder.EXPECT().CreateCredentialRequest(gomock.Any(), `{"cred_def_id":"cred-def-1"}`, gomock.Any()).
		Return(`{"req":1}`, `{"meta":1}`, `{"def":1}`, nil)
	bob.holder.EXPECT().StoreCredential(gomock.Any(), `{"values":{}}`, `{"meta":1}`, `{"def":1}`).
		Return("cred-1", nil)

	ih, err := alice.IssuerCreate(ctx, "credential", 7, `{"name":"Bob"}`)
	assert.NoError(err)
	assert.NoError(alice.IssuerSendOffer(ctx, ih, aliceConn))
	assert.Equal(try.To1(alice.IssuerState(ih)), status.OfferSent)

	offers, err := bob.HolderCredentialOffers(ctx, bobConn)
	assert.NoError(err)
	var list []json.RawMessage
	assert.NoError(json.Unmarshal([]byte(offers), &list))
	assert.Equal(len(list), 1)

	uid := bob.pendingUID(bobConn, func(m didcomm.Msg) bool {
		_, ok := m.(*issuecredential.Offer)
		return ok
	})
	hh, err := bob.HolderCreateWithMsgID(ctx, "credential", bobConn, uid)
	assert.NoError(err)
	assert.NoError(bob.ConnectionUpdateMessageStatus(ctx, bobConn, uid))
	assert.Equal(try.To1(bob.HolderState(hh)), status.RequestReceived)

	assert.NoError(bob.HolderSendRequest(ctx, hh, bobConn))
	assert.Equal(try.To1(bob.HolderState(hh)), status.OfferSent)

	assert.NoError(alice.IssuerUpdateState(ctx, ih))
	assert.Equal(try.To1(alice.IssuerState(ih)), status.RequestReceived)
	assert.NoError(alice.IssuerSendCredential(ctx, ih))
	assert.Equal(try.To1(alice.IssuerState(ih)), status.Accepted)

	assert.NoError(bob.HolderUpdateState(ctx, hh))
	assert.Equal(try.To1(bob.HolderState(hh)), status.Accepted)
	assert.Equal(try.To1(bob.HolderCredentialStatus(hh)), uint32(1))
	credID, _, err := bob.HolderCredential(hh)
	assert.NoError(err)
	assert.Equal(credID, "cred-1")

	assert.NoError(alice.IssuerUpdateState(ctx, ih))
	assert.Equal(try.To1(alice.IssuerCredentialStatus(ih)), uint32(1))

	// presentation of the credential
	alice.validator.EXPECT().Validate(gomock.Any(), `{"proof":1}`, gomock.Any()).Return(true, nil)
	bob.prover.EXPECT().CreatePresentation(gomock.Any(), gomock.Any(), `{"cred":"cred-1"}`, `{}`).
		Return(`{"proof":1}`, nil)

	vh, err := alice.VerifierCreate("proof", `{"name":"proof"}`, "show me")
	assert.NoError(err)
	assert.NoError(alice.VerifierSendRequest(ctx, vh, aliceConn))
	assert.Equal(try.To1(alice.VerifierState(vh)), status.OfferSent)

	uid = bob.pendingUID(bobConn, func(m didcomm.Msg) bool {
		_, ok := m.(*presentproof.Request)
		return ok
	})
	ph, err := bob.ProverCreateWithMsgID(ctx, "proof", bobConn, uid)
	assert.NoError(err)
	assert.NoError(bob.ConnectionUpdateMessageStatus(ctx, bobConn, uid))
	assert.NoError(bob.ProverGeneratePresentation(ctx, ph, `{"cred":"cred-1"}`, `{}`))
	assert.NoError(bob.ProverSendPresentation(ctx, ph, bobConn))
	assert.Equal(try.To1(bob.ProverState(ph)), status.OfferSent)

	assert.NoError(alice.VerifierUpdateState(ctx, vh))
	assert.Equal(try.To1(alice.VerifierState(vh)), status.Accepted)
	assert.Equal(try.To1(alice.VerifierPresentationStatus(vh)), uint32(1))
	_, rs, err := alice.VerifierPresentation(vh)
	assert.NoError(err)
	assert.Equal(rs, status.NonRevoked)

	assert.NoError(bob.ProverUpdateState(ctx, ph))
	assert.Equal(try.To1(bob.ProverState(ph)), status.Accepted)
	assert.Equal(try.To1(bob.ProverPresentationStatus(ph)), uint32(1))
}

func TestHandles(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	p := newParty(t)
	_, err := p.ConnectionState(1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidConnectionHandle))
	_, err = p.IssuerState(1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))
	_, err = p.HolderState(1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))
	_, err = p.ProverState(1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))
	_, err = p.VerifierState(1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))

	vh, err := p.VerifierCreate("proof", `{"name":"proof"}`, "")
	assert.NoError(err)
	err = p.VerifierSendRequest(ctx, vh, 1)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidConnectionHandle))
	assert.Equal(try.To1(p.VerifierState(vh)), status.Initialized)

	err = p.VerifierUpdateStateWithMessage(ctx, vh, `{"@type":`)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidOption))
	assert.NoError(p.VerifierUpdateState(ctx, vh))

	_, err = p.VerifierCreate("proof", `not json`, "")
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON))
	_, err = p.ConnectionCreateWithInvite(ctx, "bob", `{"@type":"https://didcomm.org/trust_ping/1.0/ping"}`)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON))
	_, err = p.HolderCreate("holder", `{}`)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON))

	data, err := p.VerifierSerialize(vh)
	assert.NoError(err)
	again, err := p.VerifierDeserialize(data)
	assert.NoError(err)
	assert.Equal(try.To1(p.VerifierState(again)), status.Initialized)

	assert.NoError(p.VerifierRelease(vh))
	_, err = p.VerifierState(vh)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))
	assert.That(vcxerr.IsKind(p.VerifierRelease(vh), vcxerr.InvalidHandle))

	ch := p.ConnectionCreate("alice")
	p.ReleaseAll()
	_, err = p.VerifierState(again)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidHandle))
	_, err = p.ConnectionState(ch)
	assert.That(vcxerr.IsKind(err, vcxerr.InvalidConnectionHandle))
}
