package api

import (
	"context"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/core"
	"github.com/AbsaOSS/libvcx/protocol/presentproof/prover"
	"github.com/AbsaOSS/libvcx/std/presentproof"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ProverCreate creates the prover from the presentation request JSON.
func (a *Agent) ProverCreate(sourceID, request string) (h uint32, err error) {
	defer err2.Handle(&err, "prover %s", sourceID)

	msg, err := aries.DecodeStr(request)
	if err != nil {
		return 0, vcxerr.Wrap(vcxerr.InvalidJSON, err, "presentation request")
	}
	req, ok := msg.(*presentproof.Request)
	if !ok {
		return 0, vcxerr.Newf(vcxerr.InvalidJSON, "not a presentation request: %s", msg.MsgType())
	}
	return a.provers.Add(try.To1(prover.Create(a.svc.Prover, req, sourceID))), nil
}

// ProverCreateWithMsgID creates the prover from the request pending in the
// connection.
func (a *Agent) ProverCreateWithMsgID(ctx context.Context, sourceID string, connHandle uint32, uid string) (h uint32, err error) {
	defer err2.Handle(&err, "prover %s", sourceID)

	var p *prover.Prover
	try.To(a.withConn(connHandle, func(conn core.Conn) (err error) {
		defer err2.Handle(&err)

		msg, found := try.To1(conn.Messages(ctx))[uid]
		if !found {
			return vcxerr.Newf(vcxerr.InvalidMessages, "message %s not found", uid)
		}
		req, ok := msg.(*presentproof.Request)
		if !ok {
			return vcxerr.Newf(vcxerr.InvalidMessages, "message %s is %s", uid, msg.MsgType())
		}
		p = try.To1(prover.Create(a.svc.Prover, req, sourceID))
		return nil
	}))
	return a.provers.Add(p), nil
}

// ProverPresentationRequests returns the requests pending in the connection
// as JSON array.
func (a *Agent) ProverPresentationRequests(ctx context.Context, connHandle uint32) (res string, err error) {
	err = a.withConn(connHandle, func(conn core.Conn) (err error) {
		reqs, err := prover.PresentationRequests(ctx, conn)
		if err != nil {
			return err
		}
		res, err = encodeAll(reqs)
		return err
	})
	return res, err
}

// ProverGeneratePresentation builds the presentation from the selected
// credentials and the self attested attributes.
func (a *Agent) ProverGeneratePresentation(ctx context.Context, h uint32, credentials, selfAttested string) error {
	return mutate(a.provers, h, func(p *prover.Prover) error {
		return p.GeneratePresentation(ctx, credentials, selfAttested)
	})
}

// ProverSendPresentation sends the presentation, or the problem report of
// the failed preparation, over the connection.
func (a *Agent) ProverSendPresentation(ctx context.Context, h, connHandle uint32) error {
	return mutate(a.provers, h, func(p *prover.Prover) error {
		return a.withConn(connHandle, func(conn core.Conn) error {
			return p.SendPresentation(ctx, conn, connHandle)
		})
	})
}

// ProverDeclinePresentationRequest rejects the request.
func (a *Agent) ProverDeclinePresentationRequest(ctx context.Context, h, connHandle uint32, reason string) error {
	return mutate(a.provers, h, func(p *prover.Prover) error {
		return a.withConn(connHandle, func(conn core.Conn) error {
			return p.DeclinePresentationRequest(ctx, conn, connHandle, reason)
		})
	})
}

// ProverUpdateState handles one pending message of the presentation.
func (a *Agent) ProverUpdateState(ctx context.Context, h uint32) error {
	return mutate(a.provers, h, func(p *prover.Prover) error {
		connHandle, ok := p.ConnectionHandle()
		if !ok {
			return nil
		}
		return a.withConn(connHandle, func(conn core.Conn) error {
			return p.UpdateState(ctx, conn)
		})
	})
}

// ProverUpdateStateWithMessage handles the message JSON given.
func (a *Agent) ProverUpdateStateWithMessage(h uint32, msg string) error {
	m, err := decodeMessage(msg)
	if err != nil {
		return err
	}
	return mutate(a.provers, h, func(p *prover.Prover) error {
		p.UpdateStateWithMessage(m)
		return nil
	})
}

// ProverState returns the state code of the presentation.
func (a *Agent) ProverState(h uint32) (status.StateType, error) {
	return read(a.provers, h, func(p *prover.Prover) (status.StateType, error) {
		return p.StateCode(), nil
	})
}

// ProverPresentationStatus returns the outcome code of the presentation.
func (a *Agent) ProverPresentationStatus(h uint32) (uint32, error) {
	return read(a.provers, h, func(p *prover.Prover) (uint32, error) {
		return p.PresentationStatus(), nil
	})
}

// ProverPresentation returns the presentation message JSON.
func (a *Agent) ProverPresentation(h uint32) (string, error) {
	return read(a.provers, h, func(p *prover.Prover) (string, error) {
		pres, err := p.Presentation()
		if err != nil {
			return "", err
		}
		return encode(pres)
	})
}

// ProverSerialize returns the prover as JSON.
func (a *Agent) ProverSerialize(h uint32) (string, error) {
	return read(a.provers, h, func(p *prover.Prover) (string, error) {
		return serialize(p)
	})
}

// ProverDeserialize restores the prover and returns its new handle.
func (a *Agent) ProverDeserialize(data string) (uint32, error) {
	p, err := prover.Deserialize(a.svc.Prover, []byte(data))
	if err != nil {
		return 0, err
	}
	return a.provers.Add(p), nil
}

// ProverRelease releases the handle.
func (a *Agent) ProverRelease(h uint32) error {
	return a.provers.Release(h)
}
