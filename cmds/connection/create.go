package connection

import (
	"context"
	"io"

	"github.com/AbsaOSS/libvcx/cmds"
)

// CreateCmd creates the inviter side connection and prints its invitation.
type CreateCmd struct {
	Cmd
}

func (c CreateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	ctx := context.Background()
	return c.exec(w, func(e *cmds.Env) (uint32, error) {
		h := e.ConnectionCreate(c.Name)
		return h, e.ConnectionConnect(ctx, h)
	}, func(e *cmds.Env, h uint32, r *Result) (err error) {
		r.Invitation, err = e.ConnectionInviteDetails(h)
		return err
	})
}
