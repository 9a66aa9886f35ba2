// Package discovery has the messages of the discover features protocol and
// the registry of the protocols this module supports.
package discovery

import (
	"strings"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// Query message
type Query struct {
	didcomm.Header
	Query   string `json:"query"`
	Comment string `json:"comment,omitempty"`
}

// ProtocolDescriptor describes one supported protocol.
type ProtocolDescriptor struct {
	PID   string   `json:"pid"`
	Roles []string `json:"roles,omitempty"`
}

// Disclose message
type Disclose struct {
	didcomm.Header
	Protocols []ProtocolDescriptor `json:"protocols"`
}

// Protocols is our protocol registry: protocol family and the roles we can
// play in it.
var Protocols = []ProtocolDescriptor{
	{PID: pltype.Connection + "/1.0", Roles: []string{"invitee", "inviter"}},
	{PID: pltype.Notification + "/1.0"},
	{PID: pltype.ReportProblem + "/1.0"},
	{PID: pltype.TrustPing + "/1.0"},
	{PID: pltype.DiscoverFeatures + "/1.0"},
	{PID: pltype.BasicMessage + "/1.0"},
	{PID: pltype.IssueCredential + "/1.0", Roles: []string{"issuer", "holder"}},
	{PID: pltype.PresentProof + "/1.0", Roles: []string{"prover", "verifier"}},
}

// NewQuery returns a new query. Empty query means all, i.e. "*".
func NewQuery(query, comment string) *Query {
	if query == "" {
		query = "*"
	}
	return &Query{
		Header:  didcomm.NewHeader(pltype.DiscoverFeaturesQuery),
		Query:   query,
		Comment: comment,
	}
}

// NewDisclose answers the query from our protocol registry.
func NewDisclose(q *Query) *Disclose {
	return &Disclose{
		Header:    didcomm.NewReplyHeader(pltype.DiscoverFeaturesDisclose, q.ThreadID()),
		Protocols: Match(q.Query),
	}
}

// Match returns the protocols matching the query. The query may end with the
// '*' wildcard.
func Match(query string) []ProtocolDescriptor {
	matched := make([]ProtocolDescriptor, 0, len(Protocols))
	prefix, wildcard := strings.CutSuffix(query, "*")
	for _, p := range Protocols {
		if (wildcard && strings.HasPrefix(p.PID, prefix)) || p.PID == query {
			matched = append(matched, p)
		}
	}
	return matched
}
