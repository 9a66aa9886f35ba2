/*
Package api is the handle based surface of the module. Every protocol object
lives in a registry of its kind and callers refer to it by an opaque uint32
handle, the way a foreign call interface would. Objects are passed in and out
as JSON strings.

Operations of one handle are serialized by the registry. The protocol objects
of issuance and presentation refer to their connection by its handle and the
connection is looked up for every operation which needs it.
*/
package api

import (
	"encoding/json"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/handle"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/protocol/connection"
	"github.com/AbsaOSS/libvcx/protocol/issuecredential/holder"
	"github.com/AbsaOSS/libvcx/protocol/issuecredential/issuer"
	"github.com/AbsaOSS/libvcx/protocol/presentproof/prover"
	"github.com/AbsaOSS/libvcx/protocol/presentproof/verifier"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Services are the collaborators of all the protocol objects. Anoncreds
// collaborators can be nil when the roles which need them aren't used.
type Services struct {
	Crypto      core.Crypto
	Transport   core.Transport
	Provisioner core.AgentProvisioner

	Issuer    core.Issuer
	Resolver  core.CredDefResolver
	Holder    core.Holder
	Prover    core.Prover
	Validator core.ProofValidator
}

// Agent owns the handle registries of every protocol object kind.
type Agent struct {
	svc Services

	connections *handle.Registry[*connection.Connection]
	issuers     *handle.Registry[*issuer.Issuer]
	holders     *handle.Registry[*holder.Holder]
	provers     *handle.Registry[*prover.Prover]
	verifiers   *handle.Registry[*verifier.Verifier]
}

// New returns an agent with empty registries.
func New(svc Services) *Agent {
	return &Agent{
		svc:         svc,
		connections: handle.New[*connection.Connection]("connection", vcxerr.InvalidConnectionHandle),
		issuers:     handle.New[*issuer.Issuer]("issuer", vcxerr.InvalidHandle),
		holders:     handle.New[*holder.Holder]("holder", vcxerr.InvalidHandle),
		provers:     handle.New[*prover.Prover]("prover", vcxerr.InvalidHandle),
		verifiers:   handle.New[*verifier.Verifier]("verifier", vcxerr.InvalidHandle),
	}
}

func (a *Agent) connectionServices() *connection.Services {
	return &connection.Services{
		Crypto:      a.svc.Crypto,
		Transport:   a.svc.Transport,
		Provisioner: a.svc.Provisioner,
	}
}

func (a *Agent) issuerServices() *issuer.Services {
	return &issuer.Services{Anoncreds: a.svc.Issuer, Resolver: a.svc.Resolver}
}

// ReleaseAll releases the handles of every kind.
func (a *Agent) ReleaseAll() {
	a.connections.ReleaseAll()
	a.issuers.ReleaseAll()
	a.holders.ReleaseAll()
	a.provers.ReleaseAll()
	a.verifiers.ReleaseAll()
	glog.V(1).Infoln("all handles released")
}

// mutate runs f for a copy of the handle's object. The copy replaces the
// object only when f succeeds.
func mutate[T any](r *handle.Registry[*T], h uint32, f func(obj *T) error) error {
	return r.GetMut(h, func(obj *T) (*T, error) {
		next := *obj
		if err := f(&next); err != nil {
			return nil, err
		}
		return &next, nil
	})
}

// read returns the value f computes from the handle's object.
func read[T, R any](r *handle.Registry[*T], h uint32, f func(obj *T) (R, error)) (res R, err error) {
	err = r.Get(h, func(obj *T) error {
		res, err = f(obj)
		return err
	})
	return res, err
}

// withConn calls f with the connection of the handle.
func (a *Agent) withConn(connHandle uint32, f func(conn core.Conn) error) error {
	return a.connections.Get(connHandle, func(c *connection.Connection) error {
		return f(c)
	})
}

// decodeMessage decodes the message the caller gives to update a state.
func decodeMessage(msg string) (didcomm.Msg, error) {
	m, err := aries.DecodeStr(msg)
	if err != nil {
		return nil, vcxerr.Wrap(vcxerr.InvalidOption, err, "cannot update state, bad message")
	}
	return m, nil
}

// encodeAll returns the messages as JSON array.
func encodeAll[M didcomm.Msg](msgs []M) (_ string, err error) {
	defer err2.Handle(&err, "encode messages")

	out := make([]json.RawMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, try.To1(aries.Encode(m)))
	}
	return string(try.To1(json.Marshal(out))), nil
}

// encode returns the message as JSON string.
func encode(m didcomm.Msg) (string, error) {
	data, err := aries.Encode(m)
	return string(data), err
}

// serialize is the common shape of the Serialize methods.
func serialize(s interface{ Serialize() ([]byte, error) }) (string, error) {
	data, err := s.Serialize()
	return string(data), err
}
