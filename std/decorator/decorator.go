// Package decorator implements the Aries message decorators this module
// uses: ~thread, ~please_ack and the attachment (~attach) format.
package decorator

import (
	"encoding/json"
	"errors"

	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
)

// Thread is the ~thread decorator. ID is the thread ID which is the @id of
// the first message of the exchange.
type Thread struct {
	ID             string         `json:"thid,omitempty"`
	PID            string         `json:"pthid,omitempty"`
	SenderOrder    int            `json:"sender_order"`
	ReceivedOrders map[string]int `json:"received_orders,omitempty"`
}

// IsReply reports if the thread points to thread ID id.
func (t *Thread) IsReply(id string) bool {
	return t != nil && t.ID == id
}

// PleaseAck is the ~please_ack decorator. Its presence is the signal, the
// content is empty.
type PleaseAck struct{}

// MimeTypeJSON is the mime type of every attachment we produce.
const MimeTypeJSON = "application/json"

// AttachmentData is the data of an attachment. Only base64 is supported.
type AttachmentData struct {
	Base64 string `json:"base64,omitempty"`
	JSON   any    `json:"json,omitempty"`
}

// Attachment is one ~attach entry.
type Attachment struct {
	ID       string         `json:"@id"`
	MimeType string         `json:"mime-type"`
	Data     AttachmentData `json:"data"`
}

// Attachments is a list of attachments. Protocols put exactly one entry
// there with a well known ID.
type Attachments []Attachment

var errNoAttachment = errors.New("no attachment")

// NewJSONAttachment builds a base64 encoded attachment from the JSON string.
func NewJSONAttachment(id string, jsonStr string) Attachments {
	return Attachments{{
		ID:       id,
		MimeType: MimeTypeJSON,
		Data:     AttachmentData{Base64: utils.EncodeB64([]byte(jsonStr))},
	}}
}

// Content returns the decoded content of the first attachment.
func (a Attachments) Content() (string, error) {
	if len(a) == 0 {
		return "", vcxerr.Wrap(vcxerr.InvalidJSON, errNoAttachment, "attachment content")
	}
	d := a[0].Data
	if d.Base64 == "" && d.JSON != nil {
		data, err := json.Marshal(d.JSON)
		if err != nil {
			return "", vcxerr.Wrap(vcxerr.InvalidJSON, err, "attachment json")
		}
		return string(data), nil
	}
	data, err := utils.DecodeB64(d.Base64)
	if err != nil {
		return "", vcxerr.Wrap(vcxerr.InvalidJSON, err, "attachment base64")
	}
	return string(data), nil
}

// ID returns the ID of the first attachment or empty.
func (a Attachments) ID() string {
	if len(a) == 0 {
		return ""
	}
	return a[0].ID
}
