package did

import (
	"encoding/json"
	"testing"

	"github.com/lainio/err2/assert"
)

const (
	testVK  = "EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"
	testVK2 = "GJ1SzoWzavQYfNL9XkaJdrQejfztN4XqdsiV4ct3LXKL"
)

const w3cDoc = `{
  "@context": ["https://www.w3.org/ns/did/v1"],
  "id": "did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa",
  "verificationMethod": [{
    "id": "did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa#key-1",
    "type": "Ed25519VerificationKey2018",
    "controller": "did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa",
    "publicKeyBase58": "EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"
  }],
  "service": [{
    "id": "did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa#didcomm",
    "type": "did-communication",
    "priority": 0,
    "recipientKeys": ["did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa#key-1"],
    "serviceEndpoint": "http://localhost:8080/a2a"
  }]
}`

func TestDoc_JSON(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	doc := New("8XFh8yBzrpJQmNyZzgoTqB", "http://localhost:8080",
		[]string{testVK}, []string{testVK2})

	data, err := json.Marshal(doc)
	assert.NoError(err)

	var legacy DataDoc
	assert.NoError(json.Unmarshal(data, &legacy))
	assert.Equal(len(legacy.PublicKey), 1)
	assert.Equal(legacy.PublicKey[0].PublicKeyBase58, testVK)
	assert.Equal(legacy.Service[0].RecipientKeys[0], "8XFh8yBzrpJQmNyZzgoTqB#1")
	assert.Equal(legacy.Service[0].ServiceEndpoint, "http://localhost:8080")

	got := new(Doc)
	assert.NoError(json.Unmarshal(data, got))
	assert.DeepEqual(got, doc)
	assert.Equal(got.RecipientKey(), testVK)
}

func TestDoc_UnmarshalPlainKeys(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	didKey, err := DIDKey(testVK2)
	assert.NoError(err)

	data := `{"id":"did:sov:abc","service":[{"recipientKeys":["` + testVK +
		`"],"routingKeys":["` + didKey + `"],"serviceEndpoint":"https://agency"}]}`
	got := new(Doc)
	assert.NoError(json.Unmarshal([]byte(data), got))
	assert.DeepEqual(got.RecipientKeys, []string{testVK})
	assert.DeepEqual(got.RoutingKeys, []string{testVK2})
	assert.Equal(got.ServiceEndpoint, "https://agency")

	bad := `{"id":"did:sov:abc","service":[{"recipientKeys":["other#3"],"serviceEndpoint":"x"}]}`
	assert.Error(json.Unmarshal([]byte(bad), new(Doc)))
}

func TestFromW3C(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	got := new(Doc)
	assert.NoError(json.Unmarshal([]byte(w3cDoc), got))
	assert.Equal(got.ServiceEndpoint, "http://localhost:8080/a2a")
	assert.DeepEqual(got.RecipientKeys, []string{testVK})
	assert.Equal(len(got.RoutingKeys), 0)
}

func TestNilDoc(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	var d *Doc
	assert.Equal(d.RecipientKey(), "")
}

func TestDoc_W3C(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	doc := New("8XFh8yBzrpJQmNyZzgoTqB", "http://localhost:8080",
		[]string{testVK}, []string{testVK2})

	w3c, err := doc.W3C()
	assert.NoError(err)
	assert.Equal(w3c.ID, "did:sov:8XFh8yBzrpJQmNyZzgoTqB")
	assert.Equal(len(w3c.Service), 1)
	uri, err := w3c.Service[0].ServiceEndpoint.URI()
	assert.NoError(err)
	assert.Equal(uri, "http://localhost:8080")

	data, err := doc.W3CJSON()
	assert.NoError(err)
	got, err := FromW3C(data)
	assert.NoError(err)
	assert.Equal(got.ServiceEndpoint, doc.ServiceEndpoint)
	assert.DeepEqual(got.RecipientKeys, doc.RecipientKeys)
	assert.DeepEqual(got.RoutingKeys, doc.RoutingKeys)

	_, err = New("x", "http://localhost", []string{"0OIl"}, nil).W3C()
	assert.Error(err)
}
