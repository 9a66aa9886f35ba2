package validation

import (
	"testing"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2/assert"
)

func TestValidateDID(t *testing.T) {
	tests := []struct {
		name string
		did  string
		kind vcxerr.Kind
		ok   bool
	}{
		{"b58 and valid length", "8XFh8yBzrpJQmNyZzgoTqB", 0, true},
		{"fully qualified sov", "did:sov:8XFh8yBzrpJQmNyZzgoTqB", 0, true},
		{"fully qualified key", "did:key:z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH", 0, true},
		{"peer method", "did:peer:1zQmZMygzYqNwU6Uhmewx5Xepf2VLp5S4HLSwwgf2aiKZuwa", 0, true},
		{"too short", "8XFh8yBzrpJQmNyZzgoT", vcxerr.InvalidDID, false},
		{"too long", "8XFh8yBzrpJQmNyZzgoTqB8XFh8yBzrpJQmNy", vcxerr.InvalidDID, false},
		{"not b58", "8*Fh8yBzrpJQmNyZzgoTqB", vcxerr.NotBase58, false},
		{"zero is not in alphabet", "0XFh8yBzrpJQmNyZzgoTqB", vcxerr.NotBase58, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			got, err := ValidateDID(tt.did)
			if tt.ok {
				assert.NoError(err)
				assert.Equal(got, tt.did)
				return
			}
			assert.Error(err)
			assert.Equal(vcxerr.KindOf(err), tt.kind)
		})
	}
}

func TestValidateVerkey(t *testing.T) {
	tests := []struct {
		name string
		vk   string
		kind vcxerr.Kind
		ok   bool
	}{
		{"b58 and valid length", "EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A", 0, true},
		{"wrong length", "8XFh8yBzrpJQmNyZzgoT", vcxerr.InvalidVerkey, false},
		{"did is not verkey", "8XFh8yBzrpJQmNyZzgoTqB", vcxerr.InvalidVerkey, false},
		{"not b58", "*kVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A", vcxerr.NotBase58, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			got, err := ValidateVerkey(tt.vk)
			if tt.ok {
				assert.NoError(err)
				assert.Equal(got, tt.vk)
				return
			}
			assert.Error(err)
			assert.Equal(vcxerr.KindOf(err), tt.kind)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{"http", "http://localhost:8080/agency/msg", true},
		{"https", "https://agency.example.com", true},
		{"ws", "ws://127.0.0.1:9000", true},
		{"no scheme", "agency.example.com/msg", false},
		{"empty", "", false},
		{"broken escape", "http://a b.com/%zz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			_, err := ValidateURL(tt.url)
			if tt.ok {
				assert.NoError(err)
				return
			}
			assert.Error(err)
			assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidURL)
		})
	}
}
