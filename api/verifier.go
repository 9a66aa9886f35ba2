package api

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/protocol/presentproof/verifier"
)

// VerifierCreate creates the proof request of the request data JSON.
func (a *Agent) VerifierCreate(sourceID, requestData, comment string) (uint32, error) {
	v, err := verifier.Create(a.svc.Validator, requestData, comment, sourceID)
	if err != nil {
		return 0, err
	}
	return a.verifiers.Add(v), nil
}

// VerifierSendRequest sends the presentation request over the connection.
func (a *Agent) VerifierSendRequest(ctx context.Context, h, connHandle uint32) error {
	return mutate(a.verifiers, h, func(v *verifier.Verifier) error {
		return a.withConn(connHandle, func(conn core.Conn) error {
			return v.SendRequest(ctx, conn, connHandle)
		})
	})
}

// VerifierUpdateState handles one pending message of the proof request.
func (a *Agent) VerifierUpdateState(ctx context.Context, h uint32) error {
	return mutate(a.verifiers, h, func(v *verifier.Verifier) error {
		connHandle, ok := v.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return v.UpdateState(ctx, conn)
		})
	})
}

// VerifierUpdateStateWithMessage handles the message JSON given. Messages
// are ignored before the request is sent.
func (a *Agent) VerifierUpdateStateWithMessage(ctx context.Context, h uint32, msg string) error {
	m, err := decodeMessage(msg)
	if err != nil {
		return err
	}
	return mutate(a.verifiers, h, func(v *verifier.Verifier) error {
		connHandle, ok := v.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return v.UpdateStateWithMessage(ctx, conn, m)
		})
	})
}

// VerifierState returns the state code of the proof request.
func (a *Agent) VerifierState(h uint32) (status.StateType, error) {
	return read(a.verifiers, h, func(v *verifier.Verifier) (status.StateType, error) {
		return v.StateCode(), nil
	})
}

// VerifierPresentationStatus returns the outcome code of the proof request.
func (a *Agent) VerifierPresentationStatus(h uint32) (uint32, error) {
	return read(a.verifiers, h, func(v *verifier.Verifier) (uint32, error) {
		return v.PresentationStatus(), nil
	})
}

// VerifierPresentation returns the verified presentation message JSON and
// the revocation status of its credentials.
func (a *Agent) VerifierPresentation(h uint32) (pres string, rs status.RevocationStatus, err error) {
	err = a.verifiers.Get(h, func(v *verifier.Verifier) (err error) {
		p, revStatus, err := v.Presentation()
		if err != nil {
			return err
		}
		rs = revStatus
		pres, err = encode(p)
		return err
	})
	return pres, rs, err
}

// VerifierSerialize returns the verifier as JSON.
func (a *Agent) VerifierSerialize(h uint32) (string, error) {
	return read(a.verifiers, h, func(v *verifier.Verifier) (string, error) {
		return serialize(v)
	})
}

// VerifierDeserialize restores the verifier and returns its new handle.
func (a *Agent) VerifierDeserialize(data string) (uint32, error) {
	v, err := verifier.Deserialize(a.svc.Validator, []byte(data))
	if err != nil {
		return 0, err
	}
	return a.verifiers.Add(v), nil
}

// VerifierRelease releases the handle.
func (a *Agent) VerifierRelease(h uint32) error {
	return a.verifiers.Release(h)
}
