// Package status has the numeric state codes callers see and the outcome
// of finished protocols.
package status

import (
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
)

// StateType is the numeric state code of every protocol object. The values
// are shared by all the protocols.
type StateType uint32

const (
	None StateType = iota
	Initialized
	OfferSent
	RequestReceived
	Accepted
	Unfulfilled
	Expired
	Revoked
	Redirected
	Rejected
)

var stateNames = [...]string{
	"None", "Initialized", "OfferSent", "RequestReceived", "Accepted",
	"Unfulfilled", "Expired", "Revoked", "Redirected", "Rejected",
}

func (s StateType) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("StateType(%d)", uint32(s))
}

// Kind is the outcome of a finished protocol.
type Kind string

const (
	Undefined Kind = "Undefined"
	Success   Kind = "Success"
	Failed    Kind = "Failed"
	Declined  Kind = "Declined"
)

// Status is the outcome with the problem report in case of failure.
type Status struct {
	Kind          Kind            `json:"kind"`
	ProblemReport json.RawMessage `json:"problem_report,omitempty"`
}

// Code returns the numeric code of the outcome: 0 undefined, 1 success,
// 2 failed and 3 declined.
func (s Status) Code() uint32 {
	switch s.Kind {
	case Success:
		return 1
	case Failed:
		return 2
	case Declined:
		return 3
	}
	return 0
}

// NewFailed returns failed status with the problem report message. The
// status is failed even if the report can't be marshaled.
func NewFailed(problemReport any) Status {
	data, err := json.Marshal(problemReport)
	if err != nil {
		glog.Errorln("problem report of failed status:", err)
		data = nil
	}
	return Status{Kind: Failed, ProblemReport: data}
}

// RevocationStatus is the verifier's view of the presented credentials.
type RevocationStatus string

const (
	NonRevoked RevocationStatus = "NonRevoked"
	IsRevoked  RevocationStatus = "Revoked"
)
