package common

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
)

// ProblemReport is the report-problem protocol's message which the issuance
// and presentation protocols use with their own message types.
type ProblemReport struct {
	didcomm.Header
	Description *Description `json:"description,omitempty"`
	Comment     string       `json:"comment,omitempty"`
	WhoRetries  string       `json:"who_retries,omitempty"`
}

// Description represents a problem report code with its english text.
type Description struct {
	Code string `json:"code"`
	En   string `json:"en,omitempty"`
}

// Codes used by the protocol handlers.
const (
	CodeInvalidCredentialOffer   = "invalid-credential-offer"
	CodeInvalidCredentialRequest = "invalid-credential-request"
	CodeInvalidCredential        = "invalid-credential"
	CodeInvalidPresentation      = "invalid-presentation"
	CodeInvalidPresentationReq   = "invalid-presentation-request"
	CodeRequestRejected          = "request-rejected"
	CodeRequestProcessingError   = "request-processing-error"
)

// NewProblemReport returns generic problem report threaded to thID.
func NewProblemReport(thID, code, comment string) *ProblemReport {
	return NewProblemReportWithType(pltype.ReportProblemProblemReport, thID, code, comment)
}

// NewProblemReportWithType returns problem report of the protocol specific
// type.
func NewProblemReportWithType(msgType, thID, code, comment string) *ProblemReport {
	pr := &ProblemReport{
		Header:  didcomm.NewReplyHeader(msgType, thID),
		Comment: comment,
	}
	if code != "" {
		pr.Description = &Description{Code: code, En: comment}
	}
	return pr
}

// Code returns the problem code or empty.
func (p *ProblemReport) Code() string {
	if p.Description == nil {
		return ""
	}
	return p.Description.Code
}
