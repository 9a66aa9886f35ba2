// Package trustping has the messages of the trust ping protocol.
package trustping

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// Ping message
type Ping struct {
	didcomm.Header
	ResponseRequested bool   `json:"response_requested"`
	Comment           string `json:"comment,omitempty"`
}

// PingResponse message
type PingResponse struct {
	didcomm.Header
	Comment string `json:"comment,omitempty"`
}

// NewPing returns ping which asks a response.
func NewPing(comment string) *Ping {
	return &Ping{
		Header:            didcomm.NewHeader(pltype.TrustPingPing),
		ResponseRequested: true,
		Comment:           comment,
	}
}

// NewPingResponse returns response threaded to the ping.
func NewPingResponse(p *Ping) *PingResponse {
	return &PingResponse{
		Header: didcomm.NewReplyHeader(pltype.TrustPingResponse, p.ThreadID()),
	}
}
