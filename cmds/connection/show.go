package connection

import (
	"io"

	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ShowCmd prints the connection info of both sides. W3C prints their DID doc
// as W3C DID document instead.
type ShowCmd struct {
	Cmd
	W3C bool
}

func (c ShowCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "show %s", c.Name)

	env := try.To1(c.Open())
	defer env.Close()

	h := try.To1(env.LoadConnection(c.Name))
	if c.W3C {
		cmds.Fprintln(w, try.To1(env.ConnectionRemoteDIDDoc(h)))
		return nil, nil
	}
	cmds.Fprintln(w, try.To1(env.ConnectionInfo(h)))
	return nil, nil
}
