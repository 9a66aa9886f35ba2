// Package presentproof has the messages of the Aries present proof protocol
// 1.0.
package presentproof

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/decorator"
)

// Request is the presentation request of the verifier.
type Request struct {
	didcomm.Header
	Comment                    string                `json:"comment,omitempty"`
	RequestPresentationsAttach decorator.Attachments `json:"request_presentations~attach"`
}

// Presentation is the prover's answer to the request.
type Presentation struct {
	didcomm.Header
	Comment             string                `json:"comment,omitempty"`
	PresentationsAttach decorator.Attachments `json:"presentations~attach"`
}

// Ack is the protocol's own acknowledgement.
type Ack common.Ack

// ProblemReport is the protocol's own problem report.
type ProblemReport common.ProblemReport

// NewRequest returns presentation request which starts the thread.
func NewRequest(requestJSON, comment string) *Request {
	return &Request{
		Header:                     didcomm.NewHeader(pltype.PresentProofRequest),
		Comment:                    comment,
		RequestPresentationsAttach: decorator.NewJSONAttachment(pltype.LibindyRequestPresentationID, requestJSON),
	}
}

// NewPresentation returns presentation threaded to the request. It asks for
// an ack.
func NewPresentation(thID, proofJSON string) *Presentation {
	p := &Presentation{
		Header:              didcomm.NewReplyHeader(pltype.PresentProofPresentation, thID),
		PresentationsAttach: decorator.NewJSONAttachment(pltype.LibindyPresentationID, proofJSON),
	}
	p.AskAck()
	return p
}

// NewAck returns presentation ack threaded to thID.
func NewAck(thID string) *Ack {
	return (*Ack)(common.NewAckWithType(pltype.PresentProofACK, thID))
}

// NewProblemReport returns the protocol's problem report threaded to thID.
func NewProblemReport(thID, code, comment string) *ProblemReport {
	return (*ProblemReport)(common.NewProblemReportWithType(
		pltype.PresentProofProblemReport, thID, code, comment))
}
