package connection

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/std/basicmessage"
	"github.com/AbsaOSS/libvcx/std/common"
	cnx "github.com/AbsaOSS/libvcx/std/connection"
	"github.com/AbsaOSS/libvcx/std/did"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/AbsaOSS/libvcx/std/trustping"
	"github.com/lainio/err2/assert"
)

var (
	testDoc    = did.New("8XFh8yBzrpJQmNyZzgoTqB", "http://bob.example.com", []string{"EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"}, nil)
	testInv    = cnx.NewInvitation("alice", "http://alice.example.com", []string{"EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A"}, nil)
	testReq    = cnx.NewRequest("bob", "8XFh8yBzrpJQmNyZzgoTqB", "EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A", "http://bob.example.com", nil)
	testResp   = &cnx.SignedResponse{Header: didcomm.NewReplyHeader(pltype.ConnectionResponse, "x")}
	testPR     = cnx.NewProblemReport("thread", cnx.RequestNotAccepted, "no")
	testPing   = trustping.NewPing("ping")
	testPong   = trustping.NewPingResponse(testPing)
	testQuery  = discovery.NewQuery("*", "")
	testDisc   = discovery.NewDisclose(testQuery)
	testAck    = common.NewAck("thread")
	testBasic  = basicmessage.New("hello")
	testStates = map[string]State{
		"invitee/null":      &InviteeNull{},
		"invitee/invited":   &InviteeInvited{Invitation: testInv},
		"invitee/requested": &InviteeRequested{Request: testReq, DidDoc: testDoc},
		"invitee/completed": &InviteeCompleted{Completed{DidDoc: testDoc}},
		"inviter/null":      &InviterNull{ProblemReport: testPR},
		"inviter/invited":   &InviterInvited{Invitation: testInv},
		"inviter/responded": &InviterResponded{SignedResponse: testResp, DidDoc: testDoc},
		"inviter/completed": &InviterCompleted{Completed{DidDoc: testDoc, Protocols: discovery.Protocols}},
	}
)

func allEvents() []Event {
	return []Event{
		InvitationReceived{Invitation: testInv},
		Connect{},
		ExchangeRequestReceived{Request: testReq},
		ExchangeResponseReceived{Response: testResp},
		ProblemReportReceived{ProblemReport: testPR},
		AckReceived{Ack: testAck},
		PingReceived{Ping: testPing},
		PingResponseReceived{PingResponse: testPong},
		SendPing{Comment: "x"},
		DiscoverFeatures{Query: "*"},
		QueryReceived{Query: testQuery},
		DiscloseReceived{Disclose: testDisc},
	}
}

// handled lists the events which change the state or make effects.
var handled = map[string][]string{
	"invitee/null":      {"InvitationReceived"},
	"invitee/invited":   {"Connect", "ProblemReportReceived"},
	"invitee/requested": {"ExchangeResponseReceived", "ProblemReportReceived"},
	"invitee/completed": {"PingReceived", "SendPing", "DiscoverFeatures", "QueryReceived", "DiscloseReceived"},
	"inviter/null":      {"Connect"},
	"inviter/invited":   {"ExchangeRequestReceived", "ProblemReportReceived"},
	"inviter/responded": {"AckReceived", "PingReceived", "PingResponseReceived", "ProblemReportReceived"},
	"inviter/completed": {"PingReceived", "SendPing", "DiscoverFeatures", "QueryReceived", "DiscloseReceived"},
}

func isHandled(key string, ev Event) bool {
	name := reflect.TypeOf(ev).Name()
	for _, h := range handled[key] {
		if h == name {
			return true
		}
	}
	return false
}

func TestStepTotality(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	for key, st := range testStates {
		for _, ev := range allEvents() {
			if isHandled(key, ev) {
				continue
			}
			name := fmt.Sprintf("%s+%T", key, ev)
			t.Run(name, func(t *testing.T) {
				assert.PushTester(t)
				defer assert.PopTester()

				// mocks without expectations fail on every call
				c := &Connection{svc: newSide(t).svc, sourceID: "test", state: st}
				assert.NoError(c.Step(ctx, ev))
				assert.DeepEqual(c.State(), st)
			})
		}
	}
}

func TestStateKeys(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	assert.Equal(len(testStates), len(stateCreators))
	for key, st := range testStates {
		assert.Equal(stateKey(st.Role(), st.kind()), key)
		_, ok := stateCreators[key]
		assert.That(ok)
	}
}

func TestTransitioned(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	completed := testStates["invitee/completed"]
	again := &InviteeCompleted{Completed{DidDoc: testDoc, Protocols: discovery.Protocols}}
	assert.ThatNot(transitioned(completed, again))
	assert.ThatNot(transitioned(completed, completed))
	assert.That(transitioned(testStates["invitee/null"], testStates["invitee/invited"]))
	assert.That(transitioned(testStates["invitee/completed"], testStates["inviter/completed"]))
}

func TestCanHandle(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	msgs := []didcomm.Msg{testInv, testReq, testResp, testPR, testAck, testPing, testPong, testQuery, testDisc, testBasic}
	accepts := map[string][]didcomm.Msg{
		"invitee/requested": {testResp, testPR},
		"invitee/completed": {testPing, testPong, testQuery, testDisc},
		"inviter/invited":   {testReq, testPR},
		"inviter/responded": {testAck, testPing, testPong, testPR},
		"inviter/completed": {testPing, testPong, testQuery, testDisc},
	}
	for key, st := range testStates {
		for _, m := range msgs {
			want := false
			for _, a := range accepts[key] {
				want = want || a == m
			}
			assert.Equal(st.CanHandle(m), want, "%s: %s", key, m.MsgType())
		}
	}
}

func TestFindMessageToHandle(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	c := &Connection{sourceID: "test", state: testStates["invitee/requested"]}
	msgs := map[string]didcomm.Msg{
		"1": testPing,
		"2": testResp,
		"3": testBasic,
	}
	for i := 0; i < 10; i++ {
		uid, msg, found := c.FindMessageToHandle(msgs)
		assert.That(found)
		assert.Equal(uid, "2")
		assert.That(didcomm.Same(msg, testResp))
	}

	delete(msgs, "2")
	_, _, found := c.FindMessageToHandle(msgs)
	assert.ThatNot(found)

	c.state = testStates["invitee/null"]
	_, _, found = c.FindMessageToHandle(map[string]didcomm.Msg{"1": testInv})
	assert.ThatNot(found)
}

func TestEventFromMessage(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	ev, err := EventFromMessage(testResp)
	assert.NoError(err)
	r, ok := ev.(ExchangeResponseReceived)
	assert.That(ok)
	assert.That(r.Response == testResp)

	_, err = EventFromMessage(testBasic)
	assert.That(vcxerr.IsKind(err, vcxerr.ActionNotSupported))
}

func TestSerializeStates(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	svc := newSide(t).svc
	for key, st := range testStates {
		c := &Connection{
			svc:      svc,
			sourceID: "source " + key,
			state:    st,
		}
		data, err := c.Serialize()
		assert.NoError(err)

		got, err := Deserialize(svc, data)
		assert.NoError(err)
		assert.Equal(got.SourceID(), c.SourceID())
		assert.Equal(got.StateCode(), c.StateCode())
		assert.Equal(stateKey(got.State().Role(), got.State().kind()), key)

		again, err := got.Serialize()
		assert.NoError(err)
		assert.Equal(string(again), string(data))
	}
}

func TestSerializeHandshake(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	alice, bob, inviter, invitee := handshake(t)
	for _, tt := range []struct {
		s *side
		c *Connection
	}{{alice, inviter}, {bob, invitee}} {
		data, err := tt.c.Serialize()
		assert.NoError(err)
		got, err := Deserialize(tt.s.svc, data)
		assert.NoError(err)
		assert.DeepEqual(got.Pairwise(), tt.c.Pairwise())
		assert.DeepEqual(got.CloudAgent(), tt.c.CloudAgent())
		assert.Equal(got.StateCode(), tt.c.StateCode())

		vk, err := got.RemoteVK()
		assert.NoError(err)
		want, _ := tt.c.RemoteVK()
		assert.Equal(vk, want)
	}
}

func TestDeserializeErrors(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"version":`},
		{"version", `{"version":"0.9","state":{"role":"invitee","kind":"null","data":{}}}`},
		{"state", `{"version":"1.0","state":{"role":"invitee","kind":"responded","data":{}}}`},
		{"data", `{"version":"1.0","state":{"role":"invitee","kind":"invited","data":{"invitation":1}}}`},
		{"no invitation", `{"version":"1.0","state":{"role":"invitee","kind":"invited","data":{}}}`},
		{"no request", `{"version":"1.0","state":{"role":"invitee","kind":"requested","data":{}}}`},
		{"no doc", `{"version":"1.0","state":{"role":"inviter","kind":"responded","data":{"signed_response":{}}}}`},
		{"no response", `{"version":"1.0","state":{"role":"inviter","kind":"responded","data":{}}}`},
		{"no completed doc", `{"version":"1.0","state":{"role":"invitee","kind":"completed","data":{}}}`},
		{"inviter invited", `{"version":"1.0","state":{"role":"inviter","kind":"invited","data":{}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			_, err := Deserialize(nil, []byte(tt.data))
			assert.That(vcxerr.IsKind(err, vcxerr.InvalidJSON))
		})
	}
}
