package verifier

import (
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Version of the serialized format.
const Version = "1.0"

type stateJSON struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type verifierJSON struct {
	Version  string    `json:"version"`
	SourceID string    `json:"source_id"`
	State    stateJSON `json:"state"`
}

var stateCreators = map[string]func() State{
	"initial":      func() State { return new(Initial) },
	"request_sent": func() State { return new(RequestSent) },
	"finished":     func() State { return new(Finished) },
}

// Serialize returns the verifier as JSON.
func (v *Verifier) Serialize() (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidJSON, err, "serialize verifier")
	})

	return json.Marshal(verifierJSON{
		Version:  Version,
		SourceID: v.sourceID,
		State: stateJSON{
			Kind: v.state.kind(),
			Data: try.To1(json.Marshal(v.state)),
		},
	})
}

// Deserialize builds the verifier from its JSON.
func Deserialize(validator core.ProofValidator, data []byte) (v *Verifier, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.InvalidJSON, err, "deserialize verifier")
		}
		return err
	})

	var vj verifierJSON
	try.To(json.Unmarshal(data, &vj))
	if vj.Version != Version {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unsupported version %q", vj.Version)
	}
	create, ok := stateCreators[vj.State.Kind]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unknown state %q", vj.State.Kind)
	}
	st := create()
	try.To(json.Unmarshal(vj.State.Data, st))
	try.To(st.validate())

	return &Verifier{validator: validator, sourceID: vj.SourceID, state: st}, nil
}

func (*Initial) validate() error { return nil }

func (s *RequestSent) validate() error {
	if s.Request == nil {
		return vcxerr.New(vcxerr.InvalidJSON, "request_sent state without request")
	}
	return nil
}

func (s *Finished) validate() error {
	if s.Presentation != nil && s.RevocationStatus == nil {
		return vcxerr.New(vcxerr.InvalidJSON, "presentation without revocation status")
	}
	return nil
}
