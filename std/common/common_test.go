package common

import (
	"encoding/json"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/lainio/err2/assert"
)

func TestNewAck(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	ack := NewAck("request-id")
	assert.Equal(ack.MsgType(), pltype.NotificationAck)
	assert.Equal(ack.ThreadID(), "request-id")
	assert.Equal(ack.Status, AckStatusOK)

	data, err := json.Marshal(ack)
	assert.NoError(err)
	var got Ack
	assert.NoError(json.Unmarshal(data, &got))
	assert.DeepEqual(&got, ack)
}

func TestNewProblemReport(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	pr := NewProblemReportWithType(pltype.PresentProofProblemReport,
		"thread", CodeInvalidPresentation, "proof does not verify")
	assert.Equal(pr.ThreadID(), "thread")
	assert.Equal(pr.Code(), CodeInvalidPresentation)
	assert.Equal(pr.Description.En, "proof does not verify")

	pr = NewProblemReport("thread", "", "no code")
	assert.Equal(pr.Code(), "")
	assert.Equal(pr.MsgType(), pltype.ReportProblemProblemReport)
}
