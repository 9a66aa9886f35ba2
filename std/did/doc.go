// Package did implements the DID document of the peer: its service endpoint
// and the recipient and routing keys messages must be packed for.
package did

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/golang/glog"
	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/fingerprint"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
)

// Doc is the resolved DID document. Keys are base58 encoded verkeys. A Doc is
// never modified after it's built.
type Doc struct {
	ID              string
	ServiceEndpoint string
	RecipientKeys   []string
	RoutingKeys     []string
}

// New returns a new Doc with its own copies of the key slices.
func New(id, endpoint string, recipientKeys, routingKeys []string) *Doc {
	d := &Doc{
		ID:              id,
		ServiceEndpoint: endpoint,
		RecipientKeys:   append([]string{}, recipientKeys...),
		RoutingKeys:     append([]string{}, routingKeys...),
	}
	return d
}

// RecipientKey returns the first recipient key or empty string.
func (d *Doc) RecipientKey() string {
	if d == nil || len(d.RecipientKeys) == 0 {
		return ""
	}
	return d.RecipientKeys[0]
}

func (d *Doc) MarshalJSON() (_ []byte, err error) {
	defer err2.Handle(&err, "marshal did doc")

	return try.To1(json.Marshal(d.toData())), nil
}

// UnmarshalJSON reads both the Indy format and the W3C DID documents.
func (d *Doc) UnmarshalJSON(b []byte) (err error) {
	defer err2.Handle(&err, "unmarshal did doc")

	var doc *Doc
	if isW3C(b) {
		doc = try.To1(FromW3C(b))
	} else {
		data := new(DataDoc)
		try.To(json.Unmarshal(b, data))
		doc = try.To1(data.toDoc())
	}
	*d = *doc
	return nil
}

// FromW3C builds the Doc from a W3C DID document with the aries parser. The
// first service is the one we use like every other agent does.
func FromW3C(b []byte) (d *Doc, err error) {
	defer err2.Handle(&err, "w3c did doc")

	doc := try.To1(did.ParseDocument(b))
	d = &Doc{ID: doc.ID}
	if len(doc.Service) == 0 {
		glog.Warningln("did doc without service:", doc.ID)
		return d.normalize(), nil
	}
	s := doc.Service[0]
	d.ServiceEndpoint = try.To1(s.ServiceEndpoint.URI())
	for _, key := range s.RecipientKeys {
		d.RecipientKeys = append(d.RecipientKeys, try.To1(resolveVM(doc, key)))
	}
	for _, key := range s.RoutingKeys {
		d.RoutingKeys = append(d.RoutingKeys, try.To1(resolveVM(doc, key)))
	}
	return d.normalize(), nil
}

func resolveVM(doc *did.Doc, key string) (string, error) {
	for _, vm := range doc.VerificationMethod {
		if vm.ID == key || sameFragment(vm.ID, key) {
			return base58.Encode(vm.Value), nil
		}
	}
	return verkey(key)
}

// verkey returns the base58 verkey of did:key or of a plain verkey.
func verkey(key string) (string, error) {
	if strings.HasPrefix(key, "did:key:") {
		didKey := key
		if i := strings.Index(didKey, "#"); i > 0 {
			didKey = didKey[:i]
		}
		pk, err := fingerprint.PubKeyFromDIDKey(didKey)
		if err != nil {
			return "", vcxerr.Wrap(vcxerr.InvalidVerkey, err, "did:key")
		}
		return base58.Encode(pk), nil
	}
	if strings.Contains(key, "#") {
		return "", vcxerr.Newf(vcxerr.InvalidJSON, "unresolved key reference %q", key)
	}
	return key, nil
}

// DIDKey returns did:key presentation of the base58 verkey.
func DIDKey(vk string) (string, error) {
	pk, err := base58.Decode(vk)
	if err != nil {
		return "", vcxerr.Wrap(vcxerr.NotBase58, err, "verkey")
	}
	didKey, _ := fingerprint.CreateDIDKey(pk)
	return didKey, nil
}

func (d *Doc) normalize() *Doc {
	d.RecipientKeys = nonNil(d.RecipientKeys)
	d.RoutingKeys = nonNil(d.RoutingKeys)
	return d
}

func isW3C(b []byte) bool {
	return bytes.Contains(b, []byte(`"verificationMethod"`))
}

func keyRef(id string, i int) string {
	return id + "#" + strconv.Itoa(i)
}

func sameFragment(a, b string) bool {
	ia, ib := strings.LastIndex(a, "#"), strings.LastIndex(b, "#")
	return ia >= 0 && ib >= 0 && a[ia:] == b[ib:]
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
