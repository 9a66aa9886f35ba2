// Package issuecredential has the messages of the Aries issue credential
// protocol 1.0. Credentials, offers and requests are carried as base64
// attachments which are opaque to us.
package issuecredential

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/decorator"
)

// Offer is a message sent by the Issuer to the potential Holder, describing
// the credential they intend to offer.
type Offer struct {
	didcomm.Header
	Comment           string                `json:"comment,omitempty"`
	CredentialPreview PreviewCredential     `json:"credential_preview"`
	OffersAttach      decorator.Attachments `json:"offers~attach"`
}

// Request is a message sent by the potential Holder to the Issuer, to request
// the issuance of a credential.
type Request struct {
	didcomm.Header
	Comment        string                `json:"comment,omitempty"`
	RequestsAttach decorator.Attachments `json:"requests~attach"`
}

// Credential contains as attached payload the credential being issued.
type Credential struct {
	didcomm.Header
	Comment           string                `json:"comment,omitempty"`
	CredentialsAttach decorator.Attachments `json:"credentials~attach"`
}

// Ack is the protocol's own acknowledgement.
type Ack common.Ack

// ProblemReport is the protocol's own problem report.
type ProblemReport common.ProblemReport

// PreviewCredential is used to construct a preview of the data for the
// credential that is to be issued.
type PreviewCredential struct {
	Type       string      `json:"@type"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute describes an attribute for a Preview Credential
type Attribute struct {
	Name     string `json:"name"`
	MimeType string `json:"mime-type,omitempty"`
	Value    string `json:"value"`
}

const mimeTypePlain = "text/plain"

// NewPreview builds the preview from credential data JSON: an object of
// attribute names and values. Legacy data has the values in one item arrays.
func NewPreview(credData string) (p PreviewCredential, err error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(credData), &data); err != nil {
		return p, vcxerr.Wrap(vcxerr.InvalidJSON, err, "credential data")
	}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	p.Type = pltype.IssueCredentialCredentialPreview
	p.Attributes = make([]Attribute, 0, len(names))
	for _, name := range names {
		p.Attributes = append(p.Attributes, Attribute{
			Name:     name,
			MimeType: mimeTypePlain,
			Value:    attrValue(data[name]),
		})
	}
	return p, nil
}

func attrValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		if len(value) > 0 {
			return attrValue(value[0])
		}
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// NewOffer returns offer which starts the thread.
func NewOffer(offerJSON, comment string, preview PreviewCredential) *Offer {
	return &Offer{
		Header:            didcomm.NewHeader(pltype.IssueCredentialOffer),
		Comment:           comment,
		CredentialPreview: preview,
		OffersAttach:      decorator.NewJSONAttachment(pltype.LibindyCredOfferID, offerJSON),
	}
}

// NewRequest returns request threaded to the offer.
func NewRequest(thID, requestJSON string) *Request {
	return &Request{
		Header:         didcomm.NewReplyHeader(pltype.IssueCredentialRequest, thID),
		RequestsAttach: decorator.NewJSONAttachment(pltype.LibindyCredRequestID, requestJSON),
	}
}

// NewCredential returns the credential message which asks for an ack.
func NewCredential(thID, credJSON string) *Credential {
	c := &Credential{
		Header:            didcomm.NewReplyHeader(pltype.IssueCredentialIssue, thID),
		CredentialsAttach: decorator.NewJSONAttachment(pltype.LibindyCredentialID, credJSON),
	}
	c.AskAck()
	return c
}

// NewAck returns credential ack threaded to thID.
func NewAck(thID string) *Ack {
	return (*Ack)(common.NewAckWithType(pltype.IssueCredentialACK, thID))
}

// NewProblemReport returns the protocol's problem report threaded to thID.
func NewProblemReport(thID, code, comment string) *ProblemReport {
	return (*ProblemReport)(common.NewProblemReportWithType(
		pltype.IssueCredentialProblemReport, thID, code, comment))
}
