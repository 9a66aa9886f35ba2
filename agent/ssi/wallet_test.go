package ssi

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/storage"
	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2"
	"github.com/lainio/err2/assert"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
)

const (
	dbPath     = "wallet_test.bolt"
	keysetPath = "wallet_test_keyset.json"
	seed       = "000000000000000000000000Steward1"
)

var (
	ctx = context.Background()
	db  *storage.Provider
)

func TestMain(m *testing.M) {
	setUp()
	code := m.Run()
	tearDown()
	os.Exit(code)
}

func setUp() {
	defer err2.Catch(err2.Err(func(err error) {
		fmt.Println("error on setup", err)
	}))

	// We don't want logs on file with tests
	try.To(flag.Set("logtostderr", "true"))

	db = try.To1(storage.Open(storage.Cfg{Filename: dbPath}))
}

func tearDown() {
	_ = db.Close()

	os.Remove(dbPath)
	os.Remove(keysetPath)
}

func TestWallet_CreatePairwiseIdentity(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	w := NewWallet(nil, nil)
	did, vk, err := w.CreatePairwiseIdentity(ctx, "")
	assert.NoError(err)
	_, err = validation.ValidateDID(did)
	assert.NoError(err)
	_, err = validation.ValidateVerkey(vk)
	assert.NoError(err)
	assert.That(w.Has(vk))

	raw, err := base58.Decode(vk)
	assert.NoError(err)
	assert.Equal(did, base58.Encode(raw[:16]))

	did1, vk1, err := w.CreatePairwiseIdentity(ctx, seed)
	assert.NoError(err)
	did2, vk2, err := NewWallet(nil, nil).CreatePairwiseIdentity(ctx, seed)
	assert.NoError(err)
	assert.Equal(did1, did2)
	assert.Equal(vk1, vk2)

	_, _, err = w.CreatePairwiseIdentity(ctx, "short seed")
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidOption)
}

func TestWallet_SignVerify(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	w := NewWallet(nil, nil)
	_, vk, err := w.CreatePairwiseIdentity(ctx, "")
	assert.NoError(err)

	data := []byte("signed data")
	sig, err := w.Sign(ctx, data, vk)
	assert.NoError(err)

	other := NewWallet(nil, nil)
	ok, err := other.Verify(ctx, data, sig, vk)
	assert.NoError(err)
	assert.That(ok)

	ok, err = other.Verify(ctx, []byte("other data"), sig, vk)
	assert.NoError(err)
	assert.ThatNot(ok)

	_, err = other.Sign(ctx, data, vk)
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidVerkey)
}

func TestWallet_EncryptDecrypt(t *testing.T) {
	tests := []struct {
		name   string
		authed bool
	}{
		{"authcrypt", true},
		{"anoncrypt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			alice := NewWallet(nil, nil)
			bob := NewWallet(nil, nil)
			_, aliceVK, err := alice.CreatePairwiseIdentity(ctx, "")
			assert.NoError(err)
			_, bobVK, err := bob.CreatePairwiseIdentity(ctx, "")
			assert.NoError(err)

			myVK := ""
			if tt.authed {
				myVK = aliceVK
			}
			msg := []byte(`{"@type":"test"}`)
			packed, err := alice.Encrypt(ctx, msg, myVK, bobVK)
			assert.NoError(err)

			got, sender, err := bob.Decrypt(ctx, packed, bobVK)
			assert.NoError(err)
			assert.Equal(string(got), string(msg))
			assert.Equal(sender, myVK)

			_, _, err = alice.Decrypt(ctx, packed, aliceVK)
			assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidMessages)
		})
	}
}

func TestWallet_Persistent(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	sealer, err := OpenSealer(keysetPath)
	assert.NoError(err)
	store, err := db.OpenStore(storage.Wallet)
	assert.NoError(err)

	w := NewWallet(store, sealer)
	_, vk, err := w.CreatePairwiseIdentity(ctx, "")
	assert.NoError(err)

	// a new wallet with the keyset read from the file finds the key
	sealer2, err := OpenSealer(keysetPath)
	assert.NoError(err)
	w2 := NewWallet(store, sealer2)
	assert.That(w2.Has(vk))

	sig, err := w2.Sign(ctx, []byte("data"), vk)
	assert.NoError(err)
	ok, err := w.Verify(ctx, []byte("data"), sig, vk)
	assert.NoError(err)
	assert.That(ok)
}
