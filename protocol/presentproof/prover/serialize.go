package prover

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

type proverJSON struct {
	Version  string    `json:"version"`
	SourceID string    `json:"source_id"`
	State    stateJSON `json:"state"`
}

var stateCreators = map[string]func() State{
	"initial":            func() State { return new(Initial) },
	"prepared":           func() State { return new(Prepared) },
	"preparation_failed": func() State { return new(PreparationFailed) },
	"sent":               func() State { return new(Sent) },
	"finished":           func() State { return new(Finished) },
}

// Serialize returns the prover as JSON.
func (p *Prover) Serialize() (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidJSON, err, "serialize prover")
	})

	return json.Marshal(proverJSON{
		Version:  Version,
		SourceID: p.sourceID,
		State: stateJSON{
			Kind: p.state.kind(),
			Data: try.To1(json.Marshal(p.state)),
		},
	})
}

// Deserialize builds the prover from its JSON.
func Deserialize(anoncreds core.Prover, data []byte) (p *Prover, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.InvalidJSON, err, "deserialize prover")
		}
		return err
	})

	var pj proverJSON
	try.To(json.Unmarshal(data, &pj))
	if pj.Version != Version {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unsupported version %q", pj.Version)
	}
	create, ok := stateCreators[pj.State.Kind]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unknown state %q", pj.State.Kind)
	}
	st := create()
	try.To(json.Unmarshal(pj.State.Data, st))
	try.To(st.validate())

	return &Prover{anoncreds: anoncreds, sourceID: pj.SourceID, state: st}, nil
}

func missing(state, field string) error {
	return vcxerr.Newf(vcxerr.InvalidJSON, "%s state without %s", state, field)
}

func (s *Initial) validate() error {
	if s.Request == nil {
		return missing(s.kind(), "request")
	}
	return nil
}

func (s *Prepared) validate() error {
	switch {
	case s.Request == nil:
		return missing(s.kind(), "request")
	case s.Presentation == nil:
		return missing(s.kind(), "presentation")
	}
	return nil
}

func (s *PreparationFailed) validate() error {
	switch {
	case s.Request == nil:
		return missing(s.kind(), "request")
	case s.ProblemReport == nil:
		return missing(s.kind(), "problem report")
	}
	return nil
}

func (s *Sent) validate() error {
	switch {
	case s.Request == nil:
		return missing(s.kind(), "request")
	case s.Presentation == nil:
		return missing(s.kind(), "presentation")
	}
	return nil
}

func (s *Finished) validate() error {
	if s.Request == nil {
		return missing(s.kind(), "request")
	}
	return nil
}
