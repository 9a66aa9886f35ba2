/*
Package trans is the transport to the peers and to the relay service (the
agency) which hosts our cloud agents. Messages are packed with the Aries
legacy envelope and wrapped to forward messages for every routing key of the
receiver.
*/
package trans

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pairwise"
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Message statuses of the agency.
const (
	StatusReceived = "MS-103"
	StatusReviewed = "MS-106"
)

// AgentCreate is the request of the agent provisioning.
type AgentCreate struct {
	DID    string `json:"did"`
	Verkey string `json:"verkey"`
}

// AgentCreated is the agency's answer to the AgentCreate.
type AgentCreated struct {
	AgentDID string `json:"agent_did"`
	AgentVK  string `json:"agent_vk"`
	Endpoint string `json:"endpoint"`
}

// Message is the stored message in the cloud agent.
type Message struct {
	UID     string          `json:"uid"`
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload"`
}

// Messages is the message list of the cloud agent.
type Messages struct {
	Messages []Message `json:"messages"`
}

// StatusUpdate sets the status of the stored message.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Client implements core.Transport and core.AgentProvisioner over HTTP.
type Client struct {
	agency string
	crypto core.Crypto
}

var (
	_ core.Transport        = (*Client)(nil)
	_ core.AgentProvisioner = (*Client)(nil)
)

// New returns a new client. When agencyURL is empty utils.Settings is used.
func New(agencyURL string, crypto core.Crypto) *Client {
	if agencyURL == "" {
		agencyURL = utils.Settings.AgencyURL()
	}
	return &Client{
		agency: strings.TrimSuffix(agencyURL, "/"),
		crypto: crypto,
	}
}

func (c *Client) agentURL(agentDID string, elems ...string) string {
	p := append([]string{"agent", url.PathEscape(agentDID)}, elems...)
	return c.agency + "/" + strings.Join(p, "/")
}

// Pack encodes and encrypts the message to the receiver and wraps it to
// forward messages for every routing key.
func (c *Client) Pack(ctx context.Context, msg didcomm.Msg, from pairwise.Info, to *did.Doc) (packed []byte, err error) {
	defer err2.Handle(&err, "pack %s", msg.MsgType())

	recipient := to.RecipientKey()
	if recipient == "" {
		return nil, vcxerr.New(vcxerr.InvalidState, "receiver has no recipient keys")
	}
	data := try.To1(aries.Encode(msg))
	packed = try.To1(c.crypto.Encrypt(ctx, data, from.PwVK, recipient))

	next := recipient
	for _, rk := range to.RoutingKeys {
		fwd := try.To1(aries.Encode(common.NewForward(next, packed)))
		packed = try.To1(c.crypto.Encrypt(ctx, fwd, "", rk))
		next = rk
	}
	return packed, nil
}

// Send packs and posts the message to the receiver's service endpoint.
func (c *Client) Send(ctx context.Context, msg didcomm.Msg, from pairwise.Info, to *did.Doc) (err error) {
	defer err2.Handle(&err, "send")

	if to == nil {
		return vcxerr.New(vcxerr.InvalidState, "receiver's DID doc missing")
	}
	packed := try.To1(c.Pack(ctx, msg, from, to))

	glog.V(3).Infoln("send", msg.MsgType(), "to", to.ServiceEndpoint)
	try.To1(sendAndWait(ctx, "POST", to.ServiceEndpoint, contentTypeWire, packed))
	return nil
}

// ReceivePending returns the unread messages of the cloud agent keyed by
// their UIDs. Messages which we cannot decrypt or decode are skipped.
func (c *Client) ReceivePending(
	ctx context.Context,
	pw pairwise.Info,
	ca pairwise.CloudAgentInfo,
) (msgs map[string]didcomm.Msg, err error) {
	defer err2.Handle(&err, "receive pending")

	if ca.Empty() {
		return nil, vcxerr.New(vcxerr.NotReady, "cloud agent not created")
	}
	u := c.agentURL(ca.AgentDID, "messages") + "?status=" + StatusReceived
	data := try.To1(sendAndWait(ctx, "GET", u, "", nil))

	var list Messages
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, err, "message list")
	}
	msgs = make(map[string]didcomm.Msg, len(list.Messages))
	for _, m := range list.Messages {
		if m.Status != "" && m.Status != StatusReceived {
			continue
		}
		msg, err := c.unpack(ctx, m.Payload, pw.PwVK)
		if err != nil {
			glog.Warningln("skipping message", m.UID, err)
			continue
		}
		msgs[m.UID] = msg
	}
	return msgs, nil
}

func (c *Client) unpack(ctx context.Context, payload []byte, myVK string) (msg didcomm.Msg, err error) {
	defer err2.Handle(&err, "unpack")

	data, _ := try.To2(c.crypto.Decrypt(ctx, payload, myVK))
	return try.To1(aries.Decode(data)), nil
}

// MarkConsumed sets the message reviewed in the cloud agent.
func (c *Client) MarkConsumed(
	ctx context.Context,
	_ pairwise.Info,
	ca pairwise.CloudAgentInfo,
	uid string,
) (err error) {
	defer err2.Handle(&err, "mark consumed %s", uid)

	if ca.Empty() {
		return vcxerr.New(vcxerr.NotReady, "cloud agent not created")
	}
	body := try.To1(json.Marshal(StatusUpdate{Status: StatusReviewed}))
	u := c.agentURL(ca.AgentDID, "messages", url.PathEscape(uid), "status")
	try.To1(sendAndWait(ctx, "POST", u, contentTypeJSON, body))
	return nil
}

// CreateAgent provisions the cloud agent for the pairwise.
func (c *Client) CreateAgent(ctx context.Context, pw pairwise.Info) (ca pairwise.CloudAgentInfo, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.CreateConnection, err, "create agent")
	})

	body := try.To1(json.Marshal(AgentCreate{DID: pw.PwDID, Verkey: pw.PwVK}))
	data := try.To1(sendAndWait(ctx, "POST", c.agency+"/agent", contentTypeJSON, body))

	var created AgentCreated
	try.To(json.Unmarshal(data, &created))
	ca = pairwise.CloudAgentInfo{
		AgentDID:       created.AgentDID,
		AgentVK:        created.AgentVK,
		AgencyEndpoint: created.Endpoint,
	}
	try.To(ca.Validate())
	glog.V(2).Infoln("cloud agent created:", ca.AgentDID)
	return ca, nil
}

// DeleteAgent removes the cloud agent and its messages.
func (c *Client) DeleteAgent(ctx context.Context, ca pairwise.CloudAgentInfo) (err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.DeleteConnection, err, "delete agent")
	})

	if ca.Empty() {
		return nil
	}
	try.To1(sendAndWait(ctx, "DELETE", c.agentURL(ca.AgentDID), "", nil))
	return nil
}
