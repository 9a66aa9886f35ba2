// Package basicmessage has the message of the basic message protocol which
// is the generic message we send over the connection.
package basicmessage

import (
	"errors"
	"strings"
	"time"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

type AriesTime struct {
	time.Time
}

// ISO8601 is the time format other agents accept, e.g. ACA-Py doesn't accept
// the nanoseconds.
const ISO8601 = "2006-01-02 15:04:05.999999Z"

type Basicmessage struct {
	didcomm.Header
	Content  string    `json:"content"`
	SentTime AriesTime `json:"sent_time"`
}

// New returns a basic message with the content.
func New(content string) *Basicmessage {
	return &Basicmessage{
		Header:   didcomm.NewHeader(pltype.BasicMessageSend),
		Content:  content,
		SentTime: AriesTime{Time: time.Now().UTC()},
	}
}

func validateTimestamp(timeStr string) (t time.Time, err error) {
	acceptedFormats := []string{ISO8601, time.RFC3339}
	for _, fmt := range acceptedFormats {
		if t, err = time.Parse(fmt, timeStr); err == nil {
			break
		}
	}
	return
}

func (at *AriesTime) UnmarshalJSON(b []byte) (err error) {
	defer err2.Handle(&err, "sent_time")

	t := try.To1(validateTimestamp(strings.Trim(string(b), "\"")))

	*at = AriesTime{Time: t}
	return nil
}

func (at AriesTime) MarshalJSON() ([]byte, error) {
	t := at.Time
	if y := t.Year(); y < 0 || y >= 10000 {
		return nil, errors.New("Time.MarshalJSON: year outside of range [0,9999]")
	}

	b := make([]byte, 0, len(ISO8601)+2)
	b = append(b, '"')
	b = t.AppendFormat(b, ISO8601)
	b = append(b, '"')
	return b, nil
}
