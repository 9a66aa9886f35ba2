package trans

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/std/common"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

const maxBody = 1 << 20

// Relay is a minimal agency: it provisions cloud agents, receives the
// forward messages to them and keeps the messages until the owner reads them.
// It's used by the tests and by the vcx relay command. Nothing is persisted.
type Relay struct {
	l       sync.Mutex
	crypto  core.Crypto
	baseURL string
	agents  map[string]*cloudAgent
}

type cloudAgent struct {
	owner AgentCreate
	vk    string
	msgs  []Message
}

// NewRelay returns a relay which uses crypto for the agent keys. The baseURL
// is used to build the agent endpoints.
func NewRelay(crypto core.Crypto, baseURL string) *Relay {
	return &Relay{
		crypto:  crypto,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		agents:  make(map[string]*cloudAgent),
	}
}

// SetBaseURL sets the URL where the relay is reachable. Call it before the
// first agent is created.
func (r *Relay) SetBaseURL(u string) {
	r.l.Lock()
	defer r.l.Unlock()
	r.baseURL = strings.TrimSuffix(u, "/")
}

// Len returns the number of cloud agents.
func (r *Relay) Len() int {
	r.l.Lock()
	defer r.l.Unlock()
	return len(r.agents)
}

func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer err2.Catch(err2.Err(func(err error) {
		glog.Warningln("relay:", req.Method, req.URL.Path, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	}))

	glog.V(5).Infoln("relay:", req.Method, req.URL.Path)
	parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
	for i := range parts {
		parts[i] = try.To1(url.PathUnescape(parts[i]))
	}

	switch {
	case req.Method == "POST" && len(parts) == 1 && parts[0] == "agent":
		try.To(r.createAgent(w, req))
	case req.Method == "DELETE" && len(parts) == 2 && parts[0] == "agent":
		try.To(r.deleteAgent(w, parts[1]))
	case req.Method == "GET" && len(parts) == 3 && parts[2] == "messages":
		try.To(r.messages(w, parts[1], req.URL.Query().Get("status")))
	case req.Method == "POST" && len(parts) == 5 && parts[4] == "status":
		try.To(r.updateStatus(w, req, parts[1], parts[3]))
	case req.Method == "POST" && len(parts) == 2 && parts[0] == "msg":
		try.To(r.receive(w, req, parts[1]))
	case req.Method == "GET" && len(parts) == 1 && parts[0] == "version":
		_, _ = w.Write([]byte(utils.Settings.VersionInfo()))
	default:
		http.NotFound(w, req)
	}
}

func readBody(req *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(req.Body, maxBody))
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	return json.NewEncoder(w).Encode(v)
}

// agent must be called under the lock.
func (r *Relay) agent(agentDID string) (*cloudAgent, error) {
	a, ok := r.agents[agentDID]
	if !ok {
		return nil, fmt.Errorf("agent %s not found", agentDID)
	}
	return a, nil
}

func (r *Relay) createAgent(w http.ResponseWriter, req *http.Request) (err error) {
	defer err2.Handle(&err, "create agent")

	var ac AgentCreate
	try.To(json.Unmarshal(try.To1(readBody(req)), &ac))
	agentDID, agentVK := try.To2(r.crypto.CreatePairwiseIdentity(req.Context(), ""))

	r.l.Lock()
	r.agents[agentDID] = &cloudAgent{owner: ac, vk: agentVK}
	endpoint := r.baseURL + "/msg/" + url.PathEscape(agentDID)
	r.l.Unlock()

	glog.V(2).Infoln("relay: agent", agentDID, "for", ac.DID)
	return writeJSON(w, AgentCreated{AgentDID: agentDID, AgentVK: agentVK, Endpoint: endpoint})
}

func (r *Relay) deleteAgent(w http.ResponseWriter, agentDID string) (err error) {
	defer err2.Handle(&err, "delete agent")

	r.l.Lock()
	defer r.l.Unlock()

	try.To1(r.agent(agentDID))
	delete(r.agents, agentDID)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (r *Relay) messages(w http.ResponseWriter, agentDID, status string) (err error) {
	defer err2.Handle(&err, "messages")

	r.l.Lock()
	a, err := r.agent(agentDID)
	if err != nil {
		r.l.Unlock()
		return err
	}
	list := Messages{Messages: make([]Message, 0, len(a.msgs))}
	for _, m := range a.msgs {
		if status == "" || m.Status == status {
			list.Messages = append(list.Messages, m)
		}
	}
	r.l.Unlock()

	return writeJSON(w, list)
}

func (r *Relay) updateStatus(w http.ResponseWriter, req *http.Request, agentDID, uid string) (err error) {
	defer err2.Handle(&err, "update status")

	var su StatusUpdate
	try.To(json.Unmarshal(try.To1(readBody(req)), &su))

	r.l.Lock()
	defer r.l.Unlock()

	a := try.To1(r.agent(agentDID))
	for i := range a.msgs {
		if a.msgs[i].UID == uid {
			a.msgs[i].Status = su.Status
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	}
	return fmt.Errorf("message %s not found", uid)
}

// receive unwraps the forward message and stores its payload for the owner.
func (r *Relay) receive(w http.ResponseWriter, req *http.Request, agentDID string) (err error) {
	defer err2.Handle(&err, "receive")

	packed := try.To1(readBody(req))

	r.l.Lock()
	a, err := r.agent(agentDID)
	if err != nil {
		r.l.Unlock()
		return err
	}
	agentVK, ownerVK := a.vk, a.owner.Verkey
	r.l.Unlock()

	fwd := try.To1(r.unwrap(req.Context(), packed, agentVK))
	if fwd.To != ownerVK {
		return fmt.Errorf("forward to unknown key %s", fwd.To)
	}

	r.l.Lock()
	defer r.l.Unlock()

	a = try.To1(r.agent(agentDID))
	a.msgs = append(a.msgs, Message{
		UID:     utils.UUID(),
		Status:  StatusReceived,
		Payload: fwd.Msg,
	})
	w.WriteHeader(http.StatusAccepted)
	return nil
}

func (r *Relay) unwrap(ctx context.Context, packed []byte, agentVK string) (fwd *common.Forward, err error) {
	defer err2.Handle(&err, "unwrap forward")

	data, _ := try.To2(r.crypto.Decrypt(ctx, packed, agentVK))
	msg := try.To1(aries.Decode(data))
	fwd, ok := msg.(*common.Forward)
	if !ok {
		return nil, fmt.Errorf("expected forward, got %s", msg.MsgType())
	}
	return fwd, nil
}
