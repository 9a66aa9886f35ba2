package connection

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// ProblemCode is the connection protocol's problem code.
type ProblemCode string

const (
	RequestNotAccepted      ProblemCode = "request_not_accepted"
	RequestProcessingError  ProblemCode = "request_processing_error"
	ResponseNotAccepted     ProblemCode = "response_not_accepted"
	ResponseProcessingError ProblemCode = "response_processing_error"
)

// ProblemReport is the connection protocol's own problem report.
type ProblemReport struct {
	didcomm.Header
	ProblemCode ProblemCode `json:"problem-code,omitempty"`
	Explain     string      `json:"explain,omitempty"`
}

// NewProblemReport returns a problem report threaded to thID.
func NewProblemReport(thID string, code ProblemCode, explain string) *ProblemReport {
	return &ProblemReport{
		Header:      didcomm.NewReplyHeader(pltype.ConnectionProblemReport, thID),
		ProblemCode: code,
		Explain:     explain,
	}
}
