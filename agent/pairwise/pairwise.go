// Package pairwise has the identity of one relationship: our pairwise DID and
// verkey, and the cloud agent which receives messages for us.
package pairwise

import (
	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Info is our pairwise identity. It's immutable after creation.
type Info struct {
	PwDID string `json:"pw_did"`
	PwVK  string `json:"pw_vk"`
}

// Empty tells if the identity isn't created yet.
func (i Info) Empty() bool {
	return i.PwDID == "" || i.PwVK == ""
}

// Validate checks the DID and the verkey.
func (i Info) Validate() (err error) {
	defer err2.Handle(&err, "pairwise info")

	try.To1(validation.ValidateDID(i.PwDID))
	try.To1(validation.ValidateVerkey(i.PwVK))
	return nil
}

// CloudAgentInfo is the relay agent of the pairwise.
type CloudAgentInfo struct {
	AgentDID       string `json:"agent_did"`
	AgentVK        string `json:"agent_vk"`
	AgencyEndpoint string `json:"agency_endpoint"`
}

// Empty tells if the agent isn't provisioned yet.
func (c CloudAgentInfo) Empty() bool {
	return c.AgentDID == "" || c.AgentVK == ""
}

// RoutingKeys returns the routing keys others must use to reach us through
// the cloud agent.
func (c CloudAgentInfo) RoutingKeys() []string {
	if c.AgentVK == "" {
		return []string{}
	}
	return []string{c.AgentVK}
}

// Validate checks the agent's DID, verkey and endpoint.
func (c CloudAgentInfo) Validate() (err error) {
	defer err2.Handle(&err, "cloud agent info")

	try.To1(validation.ValidateDID(c.AgentDID))
	try.To1(validation.ValidateVerkey(c.AgentVK))
	try.To1(validation.ValidateURL(c.AgencyEndpoint))
	return nil
}
