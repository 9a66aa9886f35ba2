// Package vcxerr defines the typed error kinds every public operation of the
// module returns. Callers switch on the Kind, never on error strings.
package vcxerr

import (
	"errors"
	"fmt"
)

// Kind is the error category. The numeric values are the classic libvcx
// error codes so they can be handed over a foreign call surface as they are.
type Kind int

const (
	Unknown                  Kind = 1001
	InvalidState             Kind = 1081
	InvalidConnectionHandle  Kind = 1003
	InvalidJSON              Kind = 1016
	InvalidOption            Kind = 1007
	InvalidDID               Kind = 1008
	InvalidVerkey            Kind = 1009
	NotReady                 Kind = 1005
	InvalidURL               Kind = 1010
	NotBase58                Kind = 1014
	InvalidHandle            Kind = 1048
	ActionNotSupported       Kind = 1103
	InvalidProof             Kind = 1023
	InvalidMessages          Kind = 1020
	InvalidRevocationDetails Kind = 1091
	CreateConnection         Kind = 1061
	DeleteConnection         Kind = 1062
	IOError                  Kind = 1074
)

var kindNames = map[Kind]string{
	Unknown:                  "Unknown error",
	InvalidState:             "Object is in invalid state for requested operation",
	InvalidConnectionHandle:  "Invalid Connection Handle",
	InvalidJSON:              "Invalid JSON string",
	InvalidOption:            "Invalid Configuration",
	InvalidDID:               "Invalid DID",
	InvalidVerkey:            "Invalid VERKEY",
	NotReady:                 "Object not ready for specified action",
	InvalidURL:               "Invalid URL",
	NotBase58:                "Value needs to be base58",
	InvalidHandle:            "Invalid handle",
	ActionNotSupported:       "Action is not supported",
	InvalidProof:             "Proof is invalid",
	InvalidMessages:          "Invalid message format",
	InvalidRevocationDetails: "Invalid Revocation Details",
	CreateConnection:         "Could not create connection",
	DeleteConnection:         "Could not delete connection",
	IOError:                  "IO Error, possibly creating a backup wallet",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("vcx error %d", int(k))
}

// Error carries a Kind, a human readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New returns a new Error of the kind k.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Newf is New with formatting.
func Newf(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches kind k to err. A nil err returns nil.
func Wrap(k Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, vcxerr.New(k, "")) match by kind only.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error found in err's chain. Plain
// errors are Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
