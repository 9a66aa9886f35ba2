package api

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/protocol/issuecredential/issuer"
)

// IssuerCreate creates the credential issuance of the credential
// definition handle.
func (a *Agent) IssuerCreate(ctx context.Context, sourceID string, credDefHandle uint32, credData string) (uint32, error) {
	i, err := issuer.Create(ctx, a.issuerServices(), credDefHandle, credData, sourceID)
	if err != nil {
		return 0, err
	}
	return a.issuers.Add(i), nil
}

// IssuerSendOffer sends the credential offer over the connection.
func (a *Agent) IssuerSendOffer(ctx context.Context, h, connHandle uint32) error {
	return mutate(a.issuers, h, func(i *issuer.Issuer) error {
		return a.withConn(connHandle, func(conn core.Conn) error {
			return i.SendOffer(ctx, conn, connHandle)
		})
	})
}

// IssuerSendCredential issues the requested credential.
func (a *Agent) IssuerSendCredential(ctx context.Context, h uint32) error {
	return mutate(a.issuers, h, func(i *issuer.Issuer) error {
		connHandle, ok := i.ConnectionHandle()
		if !ok {
			return vcxerr.New(vcxerr.NotReady, "credential offer not sent")
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return i.SendCredential(ctx, conn)
		})
	})
}

// IssuerUpdateState handles one pending message of the issuance. It does
// nothing before the offer is sent.
func (a *Agent) IssuerUpdateState(ctx context.Context, h uint32) error {
	return mutate(a.issuers, h, func(i *issuer.Issuer) error {
		connHandle, ok := i.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return i.UpdateState(ctx, conn)
		})
	})
}

// IssuerUpdateStateWithMessage handles the message JSON given.
func (a *Agent) IssuerUpdateStateWithMessage(h uint32, msg string) error {
	m, err := decodeMessage(msg)
	if err != nil {
		return err
	}
	return mutate(a.issuers, h, func(i *issuer.Issuer) error {
		i.UpdateStateWithMessage(m)
		return nil
	})
}

// IssuerState returns the state code of the issuance.
func (a *Agent) IssuerState(h uint32) (status.StateType, error) {
	return read(a.issuers, h, func(i *issuer.Issuer) (status.StateType, error) {
		return i.StateCode(), nil
	})
}

// IssuerCredentialStatus returns the outcome code of the issuance.
func (a *Agent) IssuerCredentialStatus(h uint32) (uint32, error) {
	return read(a.issuers, h, func(i *issuer.Issuer) (uint32, error) {
		return i.CredentialStatus(), nil
	})
}

// IssuerRevRegID returns the revocation registry of the credential.
func (a *Agent) IssuerRevRegID(h uint32) (string, error) {
	return read(a.issuers, h, func(i *issuer.Issuer) (string, error) {
		return i.RevRegID(), nil
	})
}

// IssuerThreadID returns the thread of the exchange.
func (a *Agent) IssuerThreadID(h uint32) (string, error) {
	return read(a.issuers, h, func(i *issuer.Issuer) (string, error) {
		return i.ThreadID(), nil
	})
}

// IssuerRevoke revokes the issued credential.
func (a *Agent) IssuerRevoke(ctx context.Context, h uint32, publish bool) error {
	return a.issuers.Get(h, func(i *issuer.Issuer) error {
		return i.Revoke(ctx, publish)
	})
}

// IssuerSerialize returns the issuance as JSON.
func (a *Agent) IssuerSerialize(h uint32) (string, error) {
	return read(a.issuers, h, func(i *issuer.Issuer) (string, error) {
		return serialize(i)
	})
}

// IssuerDeserialize restores the issuance and returns its new handle.
func (a *Agent) IssuerDeserialize(data string) (uint32, error) {
	i, err := issuer.Deserialize(a.issuerServices(), []byte(data))
	if err != nil {
		return 0, err
	}
	return a.issuers.Add(i), nil
}

// IssuerRelease releases the handle.
func (a *Agent) IssuerRelease(h uint32) error {
	return a.issuers.Release(h)
}
