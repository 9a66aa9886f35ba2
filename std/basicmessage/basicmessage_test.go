package basicmessage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/lainio/err2/assert"
)

var mbJSON = `{
    "@type": "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/basicmessage/1.0/message",
    "@id": "a70a5db1-0b35-41d2-a602-e355ec4df67f",
    "content": "test",
    "sent_time": "2020-01-20 12:06:36.225671Z"
  }`

func TestTimeFormats(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		year  int
		month time.Month
	}{
		{"iso8601", `{"sent_time":"2020-03-20 12:06:36.225671Z"}`, 2020, time.March},
		{"rfc3339", `{"sent_time":"2022-09-30T12:31:05.923762Z"}`, 2022, time.September},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			var msg Basicmessage
			assert.NoError(json.Unmarshal([]byte(tt.json), &msg))
			assert.Equal(msg.SentTime.Year(), tt.year)
			assert.Equal(msg.SentTime.Month(), tt.month)
		})
	}
}

func TestBasicmessage(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	var msg Basicmessage
	assert.NoError(json.Unmarshal([]byte(mbJSON), &msg))
	assert.Equal(msg.MsgType(), pltype.BasicMessageSend)
	assert.Equal(msg.Content, "test")
	assert.Equal(msg.SentTime.Day(), 20)

	bm := New("hello")
	data, err := json.Marshal(bm)
	assert.NoError(err)
	var got Basicmessage
	assert.NoError(json.Unmarshal(data, &got))
	assert.Equal(got.Content, "hello")
	assert.Equal(got.SentTime.Unix(), bm.SentTime.Unix())

	assert.Error(json.Unmarshal([]byte(`{"sent_time":"yesterday"}`), &got))
}
