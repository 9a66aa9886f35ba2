package didcomm

import (
	"encoding/json"
	"testing"

	"github.com/lainio/err2/assert"
)

type testMsg struct {
	Header
	Content string `json:"content"`
}

func TestHeader(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	first := &testMsg{Header: NewHeader("test/1.0/first")}
	assert.Equal(first.ThreadID(), first.MsgID())
	assert.That(first.Thread() == nil)
	assert.ThatNot(first.AckRequested())

	reply := &testMsg{Header: NewReplyHeader("test/1.0/reply", first.MsgID())}
	assert.NotEqual(reply.MsgID(), first.MsgID())
	assert.That(IsReplyTo(reply, first.MsgID()))
	assert.ThatNot(Same(reply, first))
	assert.That(Same(first, first))

	reply.SetThreadID("other")
	assert.ThatNot(IsReplyTo(reply, first.MsgID()))
}

func TestHeader_JSON(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	m := &testMsg{Header: NewReplyHeader("test/1.0/reply", "thread-1"), Content: "hello"}
	m.AskAck()
	data, err := json.Marshal(m)
	assert.NoError(err)

	var got testMsg
	assert.NoError(json.Unmarshal(data, &got))
	assert.Equal(got.MsgType(), "test/1.0/reply")
	assert.Equal(got.ThreadID(), "thread-1")
	assert.That(got.AckRequested())
	assert.Equal(got.Content, "hello")

	var msg Msg = &got
	assert.Equal(msg.MsgID(), m.MsgID())
}
