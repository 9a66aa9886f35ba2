package connection

import (
	"context"
	"errors"
	"io"

	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// PingCmd sends trust ping over the connection. The response is handled by
// the next update.
type PingCmd struct {
	Cmd
	Comment string
}

func (c PingCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	return c.exec(w, nil, func(e *cmds.Env, h uint32, _ *Result) error {
		return e.ConnectionSendPing(context.Background(), h, c.Comment)
	})
}

// SendCmd sends a basic message over the connection.
type SendCmd struct {
	Cmd
	Message string
}

func (c SendCmd) Validate() (err error) {
	defer err2.Handle(&err)

	try.To(c.Cmd.Validate())
	if c.Message == "" {
		return errors.New("message cannot be empty")
	}
	return nil
}

func (c SendCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	return c.exec(w, nil, func(e *cmds.Env, h uint32, _ *Result) (err error) {
		defer err2.Handle(&err)

		id := try.To1(e.ConnectionSendMessage(context.Background(), h, c.Message))
		cmds.Fprintln(w, "message sent:", id)
		return nil
	})
}

// MessagesCmd prints the pending messages of the connection.
type MessagesCmd struct {
	Cmd
}

func (c MessagesCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "messages of %s", c.Name)

	env := try.To1(c.Open())
	defer env.Close()

	h := try.To1(env.LoadConnection(c.Name))
	cmds.Fprintln(w, try.To1(env.ConnectionMessages(context.Background(), h)))
	return nil, nil
}
