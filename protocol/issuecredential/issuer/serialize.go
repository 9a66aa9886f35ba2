package issuer

import (
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Version of the serialized format.
const Version = "1.0"

type stateJSON struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type issuerJSON struct {
	Version  string    `json:"version"`
	SourceID string    `json:"source_id"`
	State    stateJSON `json:"state"`
}

var stateCreators = map[string]func() State{
	"initial":          func() State { return new(Initial) },
	"offer_sent":       func() State { return new(OfferSent) },
	"request_received": func() State { return new(RequestReceived) },
	"credential_sent":  func() State { return new(CredentialSent) },
	"finished":         func() State { return new(Finished) },
}

// Serialize returns the issuer as JSON.
func (i *Issuer) Serialize() (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidJSON, err, "serialize issuer")
	})

	return json.Marshal(issuerJSON{
		Version:  Version,
		SourceID: i.sourceID,
		State: stateJSON{
			Kind: i.state.kind(),
			Data: try.To1(json.Marshal(i.state)),
		},
	})
}

// Deserialize builds the issuer from its JSON.
func Deserialize(svc *Services, data []byte) (i *Issuer, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.InvalidJSON, err, "deserialize issuer")
		}
		return err
	})

	var ij issuerJSON
	try.To(json.Unmarshal(data, &ij))
	if ij.Version != Version {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unsupported version %q", ij.Version)
	}
	create, ok := stateCreators[ij.State.Kind]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unknown state %q", ij.State.Kind)
	}
	st := create()
	try.To(json.Unmarshal(ij.State.Data, st))
	try.To(st.validate())

	return &Issuer{svc: svc, sourceID: ij.SourceID, state: st}, nil
}

func (*Initial) validate() error        { return nil }
func (*OfferSent) validate() error      { return nil }
func (*CredentialSent) validate() error { return nil }
func (*Finished) validate() error       { return nil }

func (s *RequestReceived) validate() error {
	if s.Request == nil {
		return vcxerr.New(vcxerr.InvalidJSON, "request_received state without request")
	}
	return nil
}
