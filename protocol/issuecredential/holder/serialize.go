package holder

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

type holderJSON struct {
	Version  string    `json:"version"`
	SourceID string    `json:"source_id"`
	State    stateJSON `json:"state"`
}

var stateCreators = map[string]func() State{
	"offer_received": func() State { return new(OfferReceived) },
	"request_sent":   func() State { return new(RequestSent) },
	"finished":       func() State { return new(Finished) },
}

// Serialize returns the holder as JSON.
func (h *Holder) Serialize() (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidJSON, err, "serialize holder")
	})

	return json.Marshal(holderJSON{
		Version:  Version,
		SourceID: h.sourceID,
		State: stateJSON{
			Kind: h.state.kind(),
			Data: try.To1(json.Marshal(h.state)),
		},
	})
}

// Deserialize builds the holder from its JSON.
func Deserialize(anoncreds core.Holder, data []byte) (h *Holder, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.InvalidJSON, err, "deserialize holder")
		}
		return err
	})

	var hj holderJSON
	try.To(json.Unmarshal(data, &hj))
	if hj.Version != Version {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unsupported version %q", hj.Version)
	}
	create, ok := stateCreators[hj.State.Kind]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unknown state %q", hj.State.Kind)
	}
	st := create()
	try.To(json.Unmarshal(hj.State.Data, st))
	try.To(st.validate())

	return &Holder{anoncreds: anoncreds, sourceID: hj.SourceID, state: st}, nil
}

func (*Finished) validate() error { return nil }

func (s *OfferReceived) validate() error {
	if s.Offer == nil {
		return vcxerr.New(vcxerr.InvalidJSON, "offer_received state without offer")
	}
	return nil
}

func (s *RequestSent) validate() error {
	if s.Offer == nil {
		return vcxerr.New(vcxerr.InvalidJSON, "request_sent state without offer")
	}
	return nil
}
