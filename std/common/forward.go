package common

import (
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// Forward is the routing message a mediator unwraps. Msg is the packed
// envelope for the key in To.
type Forward struct {
	didcomm.Header
	To  string          `json:"to"`
	Msg json.RawMessage `json:"msg"`
}

// NewForward wraps the packed envelope for the next hop.
func NewForward(to string, packed []byte) *Forward {
	return &Forward{
		Header: didcomm.NewHeader(pltype.RoutingForward),
		To:     to,
		Msg:    json.RawMessage(packed),
	}
}
