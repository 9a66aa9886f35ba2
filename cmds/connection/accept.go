package connection

import (
	"context"
	"errors"
	"io"

	"github.com/AbsaOSS/libvcx/agent/aries"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// AcceptCmd accepts the invitation JSON and sends the connection request.
type AcceptCmd struct {
	Cmd
	Invitation string
}

func (c AcceptCmd) Validate() (err error) {
	defer err2.Handle(&err)

	try.To(c.Cmd.Validate())
	if c.Invitation == "" {
		return errors.New("invitation cannot be empty")
	}
	try.To1(aries.DecodeStr(c.Invitation))
	return nil
}

func (c AcceptCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	ctx := context.Background()
	return c.exec(w, func(e *cmds.Env) (h uint32, err error) {
		defer err2.Handle(&err)

		h = try.To1(e.ConnectionCreateWithInvite(ctx, c.Name, c.Invitation))
		try.To(e.ConnectionConnect(ctx, h))
		return h, nil
	}, nil)
}
