/*
Package connection implements the Aries connection protocol (RFC 0160) for
both roles. A Connection is the aggregate of our pairwise identity, the cloud
agent which receives our messages, and the state of the protocol. Inside the
established connection it runs trust ping and discover features.

The state machines are total: an event which the state doesn't handle leaves
the state as it is. Transitions are computed on a copy of the connection and
committed only when they succeed.
*/
package connection

import (
	"context"
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pairwise"
	"github.com/AbsaOSS/libvcx/agent/prot"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/basicmessage"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Services are the collaborators of the connection.
type Services struct {
	Crypto      core.Crypto
	Transport   core.Transport
	Provisioner core.AgentProvisioner
}

// Connection is the pairwise relationship to the other agent.
type Connection struct {
	svc        *Services
	sourceID   string
	pairwise   pairwise.Info
	cloudAgent pairwise.CloudAgentInfo
	state      State
}

// Create returns a new connection where we are the inviter. The pairwise
// identity and the cloud agent are created by Connect.
func Create(svc *Services, sourceID string) *Connection {
	return &Connection{
		svc:      svc,
		sourceID: sourceID,
		state:    &InviterNull{},
	}
}

// CreateWithInvite returns a new connection of the invitee which is in the
// invited state.
func CreateWithInvite(
	ctx context.Context,
	svc *Services,
	sourceID string,
	invitation *cnx.Invitation,
) (c *Connection, err error) {
	defer err2.Handle(&err, "create connection with invite")

	if invitation == nil {
		return nil, vcxerr.New(vcxerr.InvalidJSON, "invitation missing")
	}
	c = &Connection{
		svc:      svc,
		sourceID: sourceID,
		state:    &InviteeNull{},
	}
	try.To(c.Step(ctx, InvitationReceived{Invitation: invitation}))
	return c, nil
}

func (c *Connection) SourceID() string {
	return c.sourceID
}

func (c *Connection) Pairwise() pairwise.Info {
	return c.pairwise
}

func (c *Connection) CloudAgent() pairwise.CloudAgentInfo {
	return c.cloudAgent
}

// State returns the current state variant.
func (c *Connection) State() State {
	return c.state
}

// StateCode returns the numeric state code.
func (c *Connection) StateCode() status.StateType {
	return c.state.Code()
}

// IsCompleted tells if the connection is established.
func (c *Connection) IsCompleted() bool {
	_, ok := c.completed()
	return ok
}

func (c *Connection) completed() (Completed, bool) {
	switch s := c.state.(type) {
	case *InviteeCompleted:
		return s.Completed, true
	case *InviterCompleted:
		return s.Completed, true
	}
	return Completed{}, false
}

// Step runs the event through the state machine. On error the connection is
// left as it was.
func (c *Connection) Step(ctx context.Context, ev Event) (err error) {
	defer err2.Handle(&err, "connection %s", c.sourceID)

	next := *c
	st := try.To1(c.state.step(ctx, &next, ev))
	if transitioned(c.state, st) {
		glog.V(1).Infof("%s: %s %s -> %s", c.sourceID, c.state.Role(),
			c.state.kind(), st.kind())
	}
	next.state = st
	*c = next
	return nil
}

// transitioned tells if the step moved the connection to another state
// kind. Completed returns a fresh value for every handled event.
func transitioned(from, to State) bool {
	return from.Role() != to.Role() || from.kind() != to.kind()
}

// Connect starts the connection protocol: the inviter creates the
// invitation and the invitee sends the connection request.
func (c *Connection) Connect(ctx context.Context) error {
	return c.Step(ctx, Connect{})
}

// FindMessageToHandle returns the first pending message the current state
// can handle.
func (c *Connection) FindMessageToHandle(msgs map[string]didcomm.Msg) (uid string, msg didcomm.Msg, found bool) {
	return prot.FindMessageToHandle(msgs, c.state.CanHandle)
}

// UpdateState reads the pending messages from the cloud agent and handles
// the first one the state accepts. The handled message is marked consumed.
func (c *Connection) UpdateState(ctx context.Context) (err error) {
	defer err2.Handle(&err, "update state")

	if c.cloudAgent.Empty() {
		glog.V(3).Infoln(c.sourceID, "no cloud agent yet, nothing to update")
		return nil
	}
	msgs := try.To1(c.svc.Transport.ReceivePending(ctx, c.pairwise, c.cloudAgent))
	uid, msg, found := c.FindMessageToHandle(msgs)
	if !found {
		return nil
	}
	try.To(c.UpdateStateWithMessage(ctx, msg))
	try.To(c.svc.Transport.MarkConsumed(ctx, c.pairwise, c.cloudAgent, uid))
	return nil
}

// UpdateStateWithMessage runs the message through the state machine.
func (c *Connection) UpdateStateWithMessage(ctx context.Context, msg didcomm.Msg) (err error) {
	defer err2.Handle(&err, "update state with message")

	ev := try.To1(EventFromMessage(msg))
	return c.Step(ctx, ev)
}

// TheirDidDoc returns the other agent's DID doc as soon as we know it.
func (c *Connection) TheirDidDoc() (*did.Doc, error) {
	switch s := c.state.(type) {
	case *InviteeInvited:
		return s.Invitation.DidDoc(), nil
	case *InviteeRequested:
		return s.DidDoc, nil
	case *InviteeCompleted:
		return s.DidDoc, nil
	case *InviterResponded:
		return s.DidDoc, nil
	case *InviterCompleted:
		return s.DidDoc, nil
	}
	return nil, vcxerr.Newf(vcxerr.NotReady,
		"their DID doc isn't known in state %s", c.state.kind())
}

// RemoteDID returns the DID of the other agent.
func (c *Connection) RemoteDID() (string, error) {
	doc, err := c.TheirDidDoc()
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

// RemoteVK returns the verkey of the other agent.
func (c *Connection) RemoteVK() (string, error) {
	doc, err := c.TheirDidDoc()
	if err != nil {
		return "", err
	}
	if vk := doc.RecipientKey(); vk != "" {
		return vk, nil
	}
	return "", vcxerr.New(vcxerr.NotReady, "their DID doc has no keys")
}

// InviteDetails returns the invitation. Only the invited inviter has it.
func (c *Connection) InviteDetails() (*cnx.Invitation, error) {
	if s, ok := c.state.(*InviterInvited); ok {
		return s.Invitation, nil
	}
	return nil, vcxerr.Newf(vcxerr.ActionNotSupported,
		"no invitation in %s %s state", c.state.Role(), c.state.kind())
}

// SendMessage sends the message to the other agent over the established
// connection.
func (c *Connection) SendMessage(ctx context.Context, msg didcomm.Msg) (err error) {
	defer err2.Handle(&err, "send message")

	s, ok := c.completed()
	if !ok {
		return vcxerr.Newf(vcxerr.NotReady,
			"connection %s isn't completed", c.sourceID)
	}
	return c.send(ctx, msg, s.DidDoc)
}

// SendGenericMessage sends a basic message and returns its ID.
func (c *Connection) SendGenericMessage(ctx context.Context, content string) (id string, err error) {
	msg := basicmessage.New(content)
	if err = c.SendMessage(ctx, msg); err != nil {
		return "", err
	}
	return msg.MsgID(), nil
}

// SendPing sends a trust ping which asks a response.
func (c *Connection) SendPing(ctx context.Context, comment string) error {
	if !c.IsCompleted() {
		return vcxerr.Newf(vcxerr.NotReady, "connection %s isn't completed", c.sourceID)
	}
	return c.Step(ctx, SendPing{Comment: comment})
}

// SendDiscoveryFeatures asks the protocols the other agent supports. The
// answer is available from RemoteProtocols after it's handled.
func (c *Connection) SendDiscoveryFeatures(ctx context.Context, query, comment string) error {
	if !c.IsCompleted() {
		return vcxerr.Newf(vcxerr.NotReady, "connection %s isn't completed", c.sourceID)
	}
	return c.Step(ctx, DiscoverFeatures{Query: query, Comment: comment})
}

// RemoteProtocols returns the protocols the other agent disclosed.
func (c *Connection) RemoteProtocols() []discovery.ProtocolDescriptor {
	s, _ := c.completed()
	return s.Protocols
}

// Messages returns the pending messages of the cloud agent.
func (c *Connection) Messages(ctx context.Context) (map[string]didcomm.Msg, error) {
	if c.cloudAgent.Empty() {
		return nil, vcxerr.New(vcxerr.NotReady, "no cloud agent")
	}
	return c.svc.Transport.ReceivePending(ctx, c.pairwise, c.cloudAgent)
}

// MessageByID returns the pending message by its UID.
func (c *Connection) MessageByID(ctx context.Context, uid string) (_ didcomm.Msg, err error) {
	defer err2.Handle(&err, "message by id")

	msgs := try.To1(c.Messages(ctx))
	msg, ok := msgs[uid]
	if !ok {
		return nil, vcxerr.Newf(vcxerr.InvalidMessages, "message %s not found", uid)
	}
	return msg, nil
}

// UpdateMessageStatus marks the message consumed in the cloud agent.
func (c *Connection) UpdateMessageStatus(ctx context.Context, uid string) error {
	if c.cloudAgent.Empty() {
		return vcxerr.New(vcxerr.NotReady, "no cloud agent")
	}
	return c.svc.Transport.MarkConsumed(ctx, c.pairwise, c.cloudAgent, uid)
}

// SideInfo is one side of the connection info.
type SideInfo struct {
	DID             string                         `json:"did"`
	RecipientKeys   []string                       `json:"recipientKeys"`
	RoutingKeys     []string                       `json:"routingKeys"`
	ServiceEndpoint string                         `json:"serviceEndpoint"`
	Protocols       []discovery.ProtocolDescriptor `json:"protocols,omitempty"`
}

// Info is the connection info shown to the callers.
type Info struct {
	My    SideInfo  `json:"my"`
	Their *SideInfo `json:"their,omitempty"`
}

// Info returns the connection info as JSON.
func (c *Connection) Info() ([]byte, error) {
	info := Info{
		My: SideInfo{
			DID:             c.pairwise.PwDID,
			RecipientKeys:   []string{},
			RoutingKeys:     c.cloudAgent.RoutingKeys(),
			ServiceEndpoint: c.cloudAgent.AgencyEndpoint,
			Protocols:       discovery.Protocols,
		},
	}
	if c.pairwise.PwVK != "" {
		info.My.RecipientKeys = []string{c.pairwise.PwVK}
	}
	if doc, err := c.TheirDidDoc(); err == nil {
		info.Their = &SideInfo{
			DID:             doc.ID,
			RecipientKeys:   doc.RecipientKeys,
			RoutingKeys:     doc.RoutingKeys,
			ServiceEndpoint: doc.ServiceEndpoint,
			Protocols:       c.RemoteProtocols(),
		}
	}
	data, err := json.Marshal(info)
	if err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, err, "connection info")
	}
	return data, nil
}

// Delete removes the cloud agent of the connection.
func (c *Connection) Delete(ctx context.Context) (err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.DeleteConnection, err, "delete "+c.sourceID)
	})

	if c.cloudAgent.Empty() {
		return nil
	}
	try.To(c.svc.Provisioner.DeleteAgent(ctx, c.cloudAgent))
	glog.V(1).Infoln(c.sourceID, "cloud agent deleted")
	return nil
}

// provision creates the missing pairwise identity and cloud agent.
func (c *Connection) provision(ctx context.Context) (err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.CreateConnection, err, "provision")
	})

	if c.pairwise.Empty() {
		pwDID, pwVK := try.To2(c.svc.Crypto.CreatePairwiseIdentity(ctx, ""))
		c.pairwise = pairwise.Info{PwDID: pwDID, PwVK: pwVK}
	}
	if c.cloudAgent.Empty() {
		c.cloudAgent = try.To1(c.svc.Provisioner.CreateAgent(ctx, c.pairwise))
	}
	return nil
}

func (c *Connection) send(ctx context.Context, msg didcomm.Msg, to *did.Doc) error {
	glog.V(3).Infoln(c.sourceID, "send", msg.MsgType())
	return c.svc.Transport.Send(ctx, msg, c.pairwise, to)
}

// sendBestEffort sends the message and only logs the error.
func (c *Connection) sendBestEffort(ctx context.Context, msg didcomm.Msg, to *did.Doc) {
	if err := c.send(ctx, msg, to); err != nil {
		// errors discarded, the state changes anyway
		glog.Warningln(c.sourceID, "best effort send of", msg.MsgType(), "failed:", err)
	}
}

func (c *Connection) answerPing(ctx context.Context, p *trustping.Ping, to *did.Doc) error {
	if !p.ResponseRequested {
		return nil
	}
	return c.send(ctx, trustping.NewPingResponse(p), to)
}
