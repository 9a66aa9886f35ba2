package did

// DataDoc is the DID document format Indy agents exchange inside connection
// requests and responses.
type DataDoc struct {
	Context        string               `json:"@context,omitempty"`
	ID             string               `json:"id,omitempty"`
	PublicKey      []PublicKey          `json:"publicKey,omitempty"`
	Authentication []VerificationMethod `json:"authentication,omitempty"`
	Service        []Service            `json:"service,omitempty"`
}

// PublicKey DID doc public key
type PublicKey struct {
	ID              string `json:"id,omitempty"`
	Type            string `json:"type,omitempty"`
	Controller      string `json:"controller,omitempty"`
	PublicKeyBase58 string `json:"publicKeyBase58,omitempty"`
}

// Service DID doc service
type Service struct {
	ID              string   `json:"id,omitempty"`
	Type            string   `json:"type,omitempty"`
	Priority        uint     `json:"priority"`
	RecipientKeys   []string `json:"recipientKeys"`
	RoutingKeys     []string `json:"routingKeys"`
	ServiceEndpoint string   `json:"serviceEndpoint"`
}

// VerificationMethod authentication verification method
type VerificationMethod struct {
	Type      string `json:"type,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
}

const (
	contextV1        = "https://w3id.org/did/v1"
	keyType          = "Ed25519VerificationKey2018"
	authType         = "Ed25519SignatureAuthentication2018"
	serviceType      = "IndyAgent"
	serviceIDPostfix = ";indy"
)

func (d *Doc) toData() *DataDoc {
	data := &DataDoc{
		Context: contextV1,
		ID:      d.ID,
	}
	refs := make([]string, len(d.RecipientKeys))
	for i, vk := range d.RecipientKeys {
		ref := keyRef(d.ID, i+1)
		refs[i] = ref
		data.PublicKey = append(data.PublicKey, PublicKey{
			ID:              ref,
			Type:            keyType,
			Controller:      d.ID,
			PublicKeyBase58: vk,
		})
		data.Authentication = append(data.Authentication, VerificationMethod{
			Type:      authType,
			PublicKey: ref,
		})
	}
	data.Service = []Service{{
		ID:              d.ID + serviceIDPostfix,
		Type:            serviceType,
		RecipientKeys:   refs,
		RoutingKeys:     nonNil(d.RoutingKeys),
		ServiceEndpoint: d.ServiceEndpoint,
	}}
	return data
}

func (data *DataDoc) toDoc() (*Doc, error) {
	d := &Doc{ID: data.ID}
	if len(data.Service) == 0 {
		return d.normalize(), nil
	}
	s := data.Service[0]
	d.ServiceEndpoint = s.ServiceEndpoint
	for _, key := range s.RecipientKeys {
		vk, err := data.resolve(key)
		if err != nil {
			return nil, err
		}
		d.RecipientKeys = append(d.RecipientKeys, vk)
	}
	for _, key := range s.RoutingKeys {
		vk, err := verkey(key)
		if err != nil {
			return nil, err
		}
		d.RoutingKeys = append(d.RoutingKeys, vk)
	}
	return d.normalize(), nil
}

// resolve returns the verkey of the key reference or the key itself if it
// isn't a reference.
func (data *DataDoc) resolve(key string) (string, error) {
	for _, pk := range data.PublicKey {
		if pk.ID == key || sameFragment(pk.ID, key) {
			return pk.PublicKeyBase58, nil
		}
	}
	return verkey(key)
}
