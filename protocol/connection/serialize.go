package connection

import (
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/pairwise"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Version of the serialized format.
const Version = "1.0"

type stateJSON struct {
	Role Role            `json:"role"`
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type connectionJSON struct {
	Version    string                  `json:"version"`
	SourceID   string                  `json:"source_id"`
	Pairwise   pairwise.Info           `json:"pairwise"`
	CloudAgent pairwise.CloudAgentInfo `json:"cloud_agent"`
	State      stateJSON               `json:"state"`
}

var stateCreators = map[string]func() State{
	"invitee/null":      func() State { return new(InviteeNull) },
	"invitee/invited":   func() State { return new(InviteeInvited) },
	"invitee/requested": func() State { return new(InviteeRequested) },
	"invitee/completed": func() State { return new(InviteeCompleted) },
	"inviter/null":      func() State { return new(InviterNull) },
	"inviter/invited":   func() State { return new(InviterInvited) },
	"inviter/responded": func() State { return new(InviterResponded) },
	"inviter/completed": func() State { return new(InviterCompleted) },
}

func stateKey(role Role, kind string) string {
	return string(role) + "/" + kind
}

// Serialize returns the connection as JSON. The collaborators aren't part of
// it.
func (c *Connection) Serialize() (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidJSON, err, "serialize connection")
	})

	return json.Marshal(connectionJSON{
		Version:    Version,
		SourceID:   c.sourceID,
		Pairwise:   c.pairwise,
		CloudAgent: c.cloudAgent,
		State: stateJSON{
			Role: c.state.Role(),
			Kind: c.state.kind(),
			Data: try.To1(json.Marshal(c.state)),
		},
	})
}

// Deserialize builds the connection from its JSON.
func Deserialize(svc *Services, data []byte) (c *Connection, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.InvalidJSON, err, "deserialize connection")
		}
		return err
	})

	var cj connectionJSON
	try.To(json.Unmarshal(data, &cj))
	if cj.Version != Version {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unsupported version %q", cj.Version)
	}
	create, ok := stateCreators[stateKey(cj.State.Role, cj.State.Kind)]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON, "unknown state %s/%s",
			cj.State.Role, cj.State.Kind)
	}
	st := create()
	try.To(json.Unmarshal(cj.State.Data, st))
	try.To(st.validate())

	return &Connection{
		svc:        svc,
		sourceID:   cj.SourceID,
		pairwise:   cj.Pairwise,
		cloudAgent: cj.CloudAgent,
		state:      st,
	}, nil
}

func missing(state, field string) error {
	return vcxerr.Newf(vcxerr.InvalidJSON, "%s state without %s", state, field)
}

func (*InviteeNull) validate() error { return nil }
func (*InviterNull) validate() error { return nil }

func (s *InviteeInvited) validate() error {
	if s.Invitation == nil {
		return missing("invited", "invitation")
	}
	return nil
}

func (s *InviterInvited) validate() error {
	if s.Invitation == nil {
		return missing("invited", "invitation")
	}
	return nil
}

func (s *InviteeRequested) validate() error {
	switch {
	case s.Request == nil:
		return missing("requested", "request")
	case s.DidDoc == nil:
		return missing("requested", "did doc")
	}
	return nil
}

func (s *InviterResponded) validate() error {
	switch {
	case s.SignedResponse == nil:
		return missing("responded", "signed response")
	case s.DidDoc == nil:
		return missing("responded", "did doc")
	}
	return nil
}

func (s Completed) validate() error {
	if s.DidDoc == nil {
		return missing("completed", "did doc")
	}
	return nil
}
