package discovery

import (
	"testing"

	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/lainio/err2/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "*", len(Protocols)},
		{"aries prefix", pltype.Aries + "/*", len(Protocols)},
		{"issuance family", pltype.IssueCredential + "/*", 1},
		{"exact", pltype.TrustPing + "/1.0", 1},
		{"exact miss", pltype.TrustPing + "/2.0", 0},
		{"other prefix", "https://didcomm.org/*", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			assert.Equal(len(Match(tt.query)), tt.want)
		})
	}
}

func TestNewDisclose(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	q := NewQuery("", "what do you support")
	assert.Equal(q.Query, "*")
	d := NewDisclose(q)
	assert.Equal(d.ThreadID(), q.MsgID())
	assert.Equal(len(d.Protocols), len(Protocols))
}
