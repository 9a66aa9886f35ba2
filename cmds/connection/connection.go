/*
Package connection has the CLI commands of the Aries connection protocol. A
connection is stored with its name and restored for the next command.
*/
package connection

import (
	"errors"
	"io"

	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Cmd is the base of the commands for one named connection.
type Cmd struct {
	cmds.Cmd
	Name string
}

func (c Cmd) Validate() (err error) {
	defer err2.Handle(&err)

	try.To(c.Cmd.Validate())
	if c.Name == "" {
		return errors.New("connection name cannot be empty")
	}
	return nil
}

// Result is the state of the connection after the command.
type Result struct {
	Name       string           `json:"name"`
	State      status.StateType `json:"state"`
	StateName  string           `json:"state_name"`
	Invitation string           `json:"invitation,omitempty"`
}

func (r *Result) JSON() ([]byte, error) {
	return cmds.JSONResult{V: r}.JSON()
}

// exec opens the agent, restores the connection unless create is set, calls
// f and stores the connection again.
func (c Cmd) exec(
	w io.Writer,
	create func(e *cmds.Env) (uint32, error),
	f func(e *cmds.Env, h uint32, r *Result) error,
) (r cmds.Result, err error) {
	defer err2.Handle(&err, "connection %s", c.Name)

	env := try.To1(c.Open())
	defer env.Close()

	var h uint32
	if create != nil {
		h = try.To1(create(env))
	} else {
		h = try.To1(env.LoadConnection(c.Name))
	}
	res := &Result{Name: c.Name}
	if f != nil {
		try.To(f(env, h, res))
	}
	try.To(env.SaveConnection(c.Name, h))

	res.State = try.To1(env.ConnectionState(h))
	res.StateName = res.State.String()
	cmds.Fprintf(w, "connection %s: %s\n", c.Name, res.StateName)
	return res, nil
}
