// Package tools has the CLI helpers for the agent storage and the identifier
// validation.
package tools

import (
	"io"

	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ValidateCmd checks the DID, the verkey and the URL given.
type ValidateCmd struct {
	DID    string
	Verkey string
	URL    string
}

func (c ValidateCmd) Validate() error {
	if c.DID == "" && c.Verkey == "" && c.URL == "" {
		return cmds.ErrInvalid
	}
	return nil
}

type validated struct {
	DID    string `json:"did,omitempty"`
	Verkey string `json:"verkey,omitempty"`
	URL    string `json:"url,omitempty"`
}

func (c ValidateCmd) Exec(io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	var v validated
	if c.DID != "" {
		v.DID = try.To1(validation.ValidateDID(c.DID))
	}
	if c.Verkey != "" {
		v.Verkey = try.To1(validation.ValidateVerkey(c.Verkey))
	}
	if c.URL != "" {
		v.URL = try.To1(validation.ValidateURL(c.URL))
	}
	return cmds.JSONResult{V: v}, nil
}

// BackupCmd copies the storage file of the agent to its backup file.
type BackupCmd struct {
	cmds.Cmd
}

func (c BackupCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "backup")

	env := try.To1(c.Open())
	defer env.Close()

	name := try.To1(env.Backup())
	cmds.Fprintln(w, "backup written:", name)
	return nil, nil
}

// ListCmd prints the stored connections.
type ListCmd struct {
	cmds.Cmd
}

func (c ListCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "list connections")

	env := try.To1(c.Open())
	defer env.Close()

	for _, data := range try.To1(env.Connections()) {
		h := try.To1(env.ConnectionDeserialize(string(data)))
		info := try.To1(env.ConnectionInfo(h))
		st := try.To1(env.ConnectionState(h))
		cmds.Fprintf(w, "%s %s\n", st, info)
	}
	return nil, nil
}

