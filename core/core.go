// Package core defines the collaborators of the protocol state machines: the
// wallet crypto, the relay transport, the cloud agent provisioning and the
// anoncreds operations. The state machines never touch keys, sockets or
// ledgers directly.
package core

//go:generate mockgen -source=core.go -destination=mock_core.go -package=core

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pairwise"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/std/did"
)

// Crypto is the wallet. Keys are referred by their base58 verkeys.
type Crypto interface {
	// CreatePairwiseIdentity creates a new key pair, seed is optional.
	CreatePairwiseIdentity(ctx context.Context, seed string) (did, vk string, err error)

	Sign(ctx context.Context, data []byte, vk string) ([]byte, error)
	Verify(ctx context.Context, data, signature []byte, vk string) (bool, error)

	// Encrypt is authcrypt when myVK is given, else anoncrypt.
	Encrypt(ctx context.Context, data []byte, myVK, theirVK string) ([]byte, error)
	// Decrypt returns the sender's verkey when message was authcrypted.
	Decrypt(ctx context.Context, data []byte, myVK string) (msg []byte, senderVK string, err error)
}

// Transport sends messages to the peers and reads the messages the cloud
// agent has received for us.
type Transport interface {
	Send(ctx context.Context, msg didcomm.Msg, from pairwise.Info, to *did.Doc) error
	ReceivePending(ctx context.Context, pw pairwise.Info, ca pairwise.CloudAgentInfo) (map[string]didcomm.Msg, error)
	MarkConsumed(ctx context.Context, pw pairwise.Info, ca pairwise.CloudAgentInfo, uid string) error
}

// AgentProvisioner creates the cloud agent for a pairwise.
type AgentProvisioner interface {
	CreateAgent(ctx context.Context, pw pairwise.Info) (pairwise.CloudAgentInfo, error)
	DeleteAgent(ctx context.Context, ca pairwise.CloudAgentInfo) error
}

// CredDefInfo is what the issuer needs to know about the credential
// definition. RevRegID and TailsFile are empty if revocation isn't supported.
type CredDefInfo struct {
	ID        string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	TailsFile string `json:"tails_file,omitempty"`
}

// CredDefResolver resolves credential definition handles.
type CredDefResolver interface {
	CredDef(ctx context.Context, handle uint32) (CredDefInfo, error)
}

// Issuer is the issuer side of anoncreds.
type Issuer interface {
	CreateCredentialOffer(ctx context.Context, credDefID string) (offer string, err error)
	CreateCredential(ctx context.Context, offer, request, credValues, revRegID, tailsFile string) (cred, credRevID string, err error)
	RevokeCredential(ctx context.Context, tailsFile, revRegID, credRevID string, publish bool) error
}

// Holder is the holder side of anoncreds.
type Holder interface {
	CreateCredentialRequest(ctx context.Context, offer, proverDID string) (request, reqMeta, credDef string, err error)
	StoreCredential(ctx context.Context, cred, reqMeta, credDef string) (credID string, err error)
	DeleteCredential(ctx context.Context, credID string) error
}

// Prover builds presentations of the stored credentials.
type Prover interface {
	CreatePresentation(ctx context.Context, request, credentials, selfAttested string) (presentation string, err error)
}

// ProofValidator validates presentation against its request.
type ProofValidator interface {
	Validate(ctx context.Context, presentation, request string) (bool, error)
}

// RevocationChecker is optionally implemented by a ProofValidator.
type RevocationChecker interface {
	RevocationStatus(ctx context.Context, presentation string) (status.RevocationStatus, error)
}

// Conn is the established connection the credential and proof protocols
// run over.
type Conn interface {
	SendMessage(ctx context.Context, msg didcomm.Msg) error
	Pairwise() pairwise.Info
	Messages(ctx context.Context) (map[string]didcomm.Msg, error)
	UpdateMessageStatus(ctx context.Context, uid string) error
}
