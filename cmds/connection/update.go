package connection

import (
	"context"
	"io"

	"github.com/AbsaOSS/libvcx/cmds"
)

// UpdateCmd handles one pending message of the connection.
type UpdateCmd struct {
	Cmd
}

func (c UpdateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	return c.exec(w, nil, func(e *cmds.Env, h uint32, _ *Result) error {
		return e.ConnectionUpdateState(context.Background(), h)
	})
}
