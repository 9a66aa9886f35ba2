/*
Package cmds implements the commands of the vcx CLI. Every command is a
struct which is validated and executed, cobra wiring lives in package cmd.

The commands which need an agent open the storage file, the wallet sealed
with the keyset file and the relay client. Connections are kept serialized in
the connection store by their names between the runs.
*/
package cmds

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/ssi"
	"github.com/AbsaOSS/libvcx/agent/storage"
	"github.com/AbsaOSS/libvcx/agent/trans"
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/api"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

const storageKeyLength = 64

var ErrInvalid = errors.New("invalid command, check arguments")

// Cmd is the base of the commands which run an agent.
type Cmd struct {
	DBName     string
	Key        string
	KeysetFile string
	AgencyURL  string
}

func (c Cmd) Validate() (err error) {
	defer err2.Handle(&err)

	if c.DBName == "" {
		return errors.New("storage file name cannot be empty")
	}
	if c.KeysetFile == "" {
		return errors.New("keyset file name cannot be empty")
	}
	try.To(ValidateKey(c.Key))
	try.To1(validation.ValidateURL(c.AgencyURL))
	return nil
}

// ValidateKey accepts an empty key or hex encoded 32 bytes.
func ValidateKey(k string) error {
	if k != "" && len(k) != storageKeyLength {
		return errors.New("storage key must be empty or 64 hex characters")
	}
	return nil
}

// Result is what the commands print.
type Result interface {
	JSON() ([]byte, error)
}

type Command interface {
	Validate() error
	Exec(w io.Writer) (r Result, err error)
}

// JSONResult is a Result of any JSON marshallable value.
type JSONResult struct {
	V any
}

func (r JSONResult) JSON() ([]byte, error) {
	return dto.ToJSONBytes(r.V), nil
}

// Env is the opened agent of a command.
type Env struct {
	*api.Agent

	db    *storage.Provider
	conns *storage.Store
}

// Open opens the storage and the wallet and returns the agent. Close must
// be called when done.
func (c Cmd) Open() (e *Env, err error) {
	defer err2.Handle(&err, "open agent %s", c.DBName)

	utils.Settings.SetDBName(c.DBName)
	utils.Settings.SetKeysetFile(c.KeysetFile)
	utils.Settings.SetAgencyURL(c.AgencyURL)

	db := try.To1(storage.Open(storage.Cfg{
		Filename:   c.DBName,
		Key:        c.Key,
		BackupName: utils.Settings.BackupName(),
	}))
	defer err2.Handle(&err, func(err error) error {
		_ = db.Close()
		return err
	})

	walletStore := try.To1(db.OpenStore(storage.Wallet))
	sealer := try.To1(ssi.OpenSealer(c.KeysetFile))
	wallet := ssi.NewWallet(walletStore, sealer)
	client := trans.New(c.AgencyURL, wallet)

	return &Env{
		Agent: api.New(api.Services{
			Crypto:      wallet,
			Transport:   client,
			Provisioner: client,
		}),
		db:    db,
		conns: try.To1(db.Store(storage.Connection)),
	}, nil
}

// Close releases the handles and closes the storage.
func (e *Env) Close() {
	e.ReleaseAll()
	if err := e.db.Close(); err != nil {
		glog.Errorln("close agent:", err)
	}
}

// Backup copies the storage file to its backup file.
func (e *Env) Backup() (string, error) {
	return e.db.Backup()
}

// LoadConnection restores the named connection and returns its handle.
func (e *Env) LoadConnection(name string) (h uint32, err error) {
	defer err2.Handle(&err, "load connection %s", name)

	data := try.To1(e.conns.Get(name))
	return e.ConnectionDeserialize(string(data))
}

// SaveConnection stores the connection of the handle with the name.
func (e *Env) SaveConnection(name string, h uint32) (err error) {
	defer err2.Handle(&err, "save connection %s", name)

	data := try.To1(e.ConnectionSerialize(h))
	return e.conns.Put(name, []byte(data))
}

// Connections returns the serialized connections.
func (e *Env) Connections() ([][]byte, error) {
	return e.conns.GetAll()
}

// Fprintln is fmt.Fprintln but it allows writer to be nil. Note! it throws an
// error.
func Fprintln(w io.Writer, a ...any) {
	if w != nil {
		try.To1(fmt.Fprintln(w, a...))
	}
}

// Fprintf is fmt.Fprintf but it allows writer to be nil. Note! it throws an
// error.
func Fprintf(w io.Writer, format string, a ...any) {
	if w != nil {
		try.To1(fmt.Fprintf(w, format, a...))
	}
}

// Fprint is fmt.Fprint but it allows writer to be nil. Note! it throws an
// error.
func Fprint(w io.Writer, a ...any) {
	if w != nil {
		try.To1(fmt.Fprint(w, a...))
	}
}

// ParseLoggingArgs gives the glog flags in s to the flag package, e.g.
// "-logtostderr=true -v=2".
func ParseLoggingArgs(s string) {
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Fields(s)...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}
