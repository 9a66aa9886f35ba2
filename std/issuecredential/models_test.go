package issuecredential

import (
	"encoding/json"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2/assert"
)

func TestNewPreview(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	p, err := NewPreview(`{"name":"alice","age":25,"sex":["female"]}`)
	assert.NoError(err)
	assert.Equal(p.Type, pltype.IssueCredentialCredentialPreview)
	assert.DeepEqual(p.Attributes, []Attribute{
		{Name: "age", MimeType: mimeTypePlain, Value: "25"},
		{Name: "name", MimeType: mimeTypePlain, Value: "alice"},
		{Name: "sex", MimeType: mimeTypePlain, Value: "female"},
	})

	_, err = NewPreview(`["not","an","object"]`)
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidJSON)
}

func TestExchangeThreads(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	offer := NewOffer(`{"cred_def_id":"def"}`, "degree", PreviewCredential{})
	assert.Equal(offer.ThreadID(), offer.MsgID())
	content, err := offer.OffersAttach.Content()
	assert.NoError(err)
	assert.Equal(content, `{"cred_def_id":"def"}`)

	req := NewRequest(offer.ThreadID(), `{"prover_did":"did"}`)
	assert.Equal(req.ThreadID(), offer.MsgID())
	assert.Equal(req.RequestsAttach.ID(), pltype.LibindyCredRequestID)

	cred := NewCredential(offer.ThreadID(), `{"values":{}}`)
	assert.That(cred.AckRequested())
	assert.Equal(cred.ThreadID(), offer.MsgID())

	ack := NewAck(offer.ThreadID())
	assert.Equal(ack.MsgType(), pltype.IssueCredentialACK)
	pr := NewProblemReport(offer.ThreadID(), "invalid-credential", "bad")
	assert.Equal(pr.MsgType(), pltype.IssueCredentialProblemReport)
	assert.Equal(pr.ThreadID(), offer.MsgID())

	data, err := json.Marshal(cred)
	assert.NoError(err)
	var got Credential
	assert.NoError(json.Unmarshal(data, &got))
	assert.That(got.AckRequested())
	content, err = got.CredentialsAttach.Content()
	assert.NoError(err)
	assert.Equal(content, `{"values":{}}`)
}
