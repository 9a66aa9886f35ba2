package did

import (
	"strings"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/hyperledger/aries-framework-go/component/models/did/endpoint"
	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	"github.com/mr-tron/base58"
)

const sovPrefix = "did:sov:"

// W3C returns the Doc as W3C DID document. Unqualified Indy DIDs get the
// did:sov method.
func (d *Doc) W3C() (*did.Doc, error) {
	id := d.ID
	if !strings.HasPrefix(id, "did:") {
		id = sovPrefix + id
	}
	vms := make([]did.VerificationMethod, 0, len(d.RecipientKeys))
	refs := make([]string, 0, len(d.RecipientKeys))
	for i, vk := range d.RecipientKeys {
		pk, err := base58.Decode(vk)
		if err != nil {
			return nil, vcxerr.Wrap(vcxerr.NotBase58, err, "recipient key")
		}
		ref := keyRef(id, i+1)
		vms = append(vms, *did.NewVerificationMethodFromBytes(ref, keyType, id, pk))
		refs = append(refs, ref)
	}
	doc := did.BuildDoc(
		did.WithVerificationMethod(vms),
		did.WithService([]did.Service{{
			ID:              id + serviceIDPostfix,
			Type:            serviceType,
			ServiceEndpoint: endpoint.NewDIDCommV1Endpoint(d.ServiceEndpoint),
			RecipientKeys:   refs,
			RoutingKeys:     nonNil(d.RoutingKeys),
		}}),
	)
	doc.ID = id
	return doc, nil
}

// W3CJSON marshals the W3C presentation of the Doc.
func (d *Doc) W3CJSON() ([]byte, error) {
	doc, err := d.W3C()
	if err != nil {
		return nil, err
	}
	return doc.JSONBytes()
}
