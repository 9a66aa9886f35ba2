// Package connection has the messages of the Aries connection protocol (RFC
// 0160): invitation, request, response and problem report.
package connection

import (
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Invitation defines connection invitation message. It's the only message of
// the protocol which doesn't have a thread.
type Invitation struct {
	didcomm.Header
	Label           string   `json:"label"`
	RecipientKeys   []string `json:"recipientKeys"`
	RoutingKeys     []string `json:"routingKeys"`
	ServiceEndpoint string   `json:"serviceEndpoint"`
	ProfileURL      string   `json:"profileUrl,omitempty"`
}

// NewInvitation builds the invitation with our keys and endpoint.
func NewInvitation(label, endpoint string, recipientKeys, routingKeys []string) *Invitation {
	return &Invitation{
		Header:          didcomm.NewHeader(pltype.ConnectionInvitation),
		Label:           label,
		RecipientKeys:   append([]string{}, recipientKeys...),
		RoutingKeys:     append([]string{}, routingKeys...),
		ServiceEndpoint: endpoint,
	}
}

// DidDoc returns the DID doc of the inviter. The invitation ID is used as the
// document ID.
func (inv *Invitation) DidDoc() *did.Doc {
	return did.New(inv.ID, inv.ServiceEndpoint, inv.RecipientKeys, inv.RoutingKeys)
}

// Validate checks the keys and the endpoint of the invitation.
func (inv *Invitation) Validate() (err error) {
	defer err2.Handle(&err, "invitation")

	try.To1(validation.ValidateURL(inv.ServiceEndpoint))
	try.To(validation.ValidateKeys(inv.RecipientKeys))
	try.To(validation.ValidateKeys(inv.RoutingKeys))
	return nil
}

// Data is the connection data exchanged in request and response.
type Data struct {
	DID    string   `json:"DID"`
	DIDDoc *did.Doc `json:"DIDDoc"`
}

// Validate checks the DID and the keys of the connection data.
func (c *Data) Validate() (err error) {
	defer err2.Handle(&err, "connection data")

	try.To1(validation.ValidateDID(c.DID))
	if c.DIDDoc == nil {
		return errMissingDoc
	}
	try.To1(validation.ValidateURL(c.DIDDoc.ServiceEndpoint))
	try.To(validation.ValidateKeys(c.DIDDoc.RecipientKeys))
	try.To(validation.ValidateKeys(c.DIDDoc.RoutingKeys))
	return nil
}

// Request is the connection request message of the invitee.
type Request struct {
	didcomm.Header
	Label      string `json:"label"`
	Connection Data   `json:"connection"`
}

// NewRequest builds the request with our pairwise DID and the DID doc which
// points to our cloud agent. The request starts a new thread which has the
// invitation as a parent.
func NewRequest(label, pwDID, pwVK, endpoint string, routingKeys []string) *Request {
	r := &Request{
		Header: didcomm.NewHeader(pltype.ConnectionRequest),
		Label:  label,
		Connection: Data{
			DID:    pwDID,
			DIDDoc: did.New(pwDID, endpoint, []string{pwVK}, routingKeys),
		},
	}
	return r
}

// SetParent sets the parent thread, i.e. the invitation ID.
func (r *Request) SetParent(invitationID string) {
	r.SetThreadID(r.ID)
	r.Thr.PID = invitationID
}

// DidDoc returns the requester's DID doc.
func (r *Request) DidDoc() *did.Doc {
	return r.Connection.DIDDoc
}

// Response is the unsigned response. It's never sent as it is, see Sign.
type Response struct {
	didcomm.Header
	Connection Data `json:"connection"`
}

// NewResponse builds the response to the request with reqID.
func NewResponse(reqID, pwDID, pwVK, endpoint string, routingKeys []string) *Response {
	r := &Response{
		Header: didcomm.NewReplyHeader(pltype.ConnectionResponse, reqID),
		Connection: Data{
			DID:    pwDID,
			DIDDoc: did.New(pwDID, endpoint, []string{pwVK}, routingKeys),
		},
	}
	return r
}

// DidDoc returns the responder's DID doc.
func (r *Response) DidDoc() *did.Doc {
	return r.Connection.DIDDoc
}
