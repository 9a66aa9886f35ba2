package decorator

import (
	"encoding/json"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2/assert"
)

func TestNewThread(t *testing.T) {
	tests := []struct {
		name string
		ID   string
		PID  string
		want *Thread
	}{
		{"PID empty", "12345", "", &Thread{ID: "12345"}},
		{"PID same", "12345", "12345", &Thread{ID: "12345"}},
		{"PID different", "12345", "123456", &Thread{ID: "12345", PID: "123456"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			assert.DeepEqual(NewThread(tt.ID, tt.PID), tt.want)
		})
	}
}

func TestCheckThread(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	assert.DeepEqual(CheckThread(nil, "ID_VALUE"), &Thread{ID: "ID_VALUE"})
	assert.DeepEqual(CheckThread(&Thread{PID: "PID_VALUE"}, "ID_VALUE"),
		&Thread{ID: "ID_VALUE", PID: "PID_VALUE"})
	assert.DeepEqual(CheckThread(&Thread{ID: "ORG_ID_VALUE"}, "ID_VALUE"),
		&Thread{ID: "ORG_ID_VALUE"})

	assert.Equal(ThreadID(nil, "msg"), "msg")
	assert.Equal(ThreadID(&Thread{ID: "thread"}, "msg"), "thread")
	assert.That((&Thread{ID: "thread"}).IsReply("thread"))
	var nilThread *Thread
	assert.ThatNot(nilThread.IsReply("thread"))
}

func TestThreadJSON(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	data, err := json.Marshal(NewThread("a", "b"))
	assert.NoError(err)
	assert.Equal(string(data), `{"thid":"a","pthid":"b","sender_order":0}`)
}

func TestAttachments_Content(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	const content = `{"nonce":"1234","name":"proof_req_1"}`
	a := NewJSONAttachment("libindy-request-presentation-0", content)
	assert.Equal(a.ID(), "libindy-request-presentation-0")
	got, err := a.Content()
	assert.NoError(err)
	assert.Equal(got, content)

	var empty Attachments
	_, err = empty.Content()
	assert.Error(err)
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidJSON)
	assert.Equal(empty.ID(), "")

	broken := Attachments{{ID: "x", Data: AttachmentData{Base64: "**"}}}
	_, err = broken.Content()
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidJSON)
}
