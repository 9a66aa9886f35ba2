/*
Package ssi implements the wallet of the agent: ed25519 key pairs for the
pairwise identities, signatures and the Aries legacy message envelopes.

Keys live in memory and, when the wallet has a store, in the wallet bucket of
the storage sealed with the tink AEAD keyset.
*/
package ssi

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/golang/glog"
	"github.com/google/tink/go/aead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"
	"github.com/hyperledger/aries-framework-go/spi/storage"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
)

// didLen is the length of the legacy DID in bytes, the DID is the head of
// the verkey.
const didLen = 16

type keyRecord struct {
	DID  string `json:"did"`
	Seed []byte `json:"seed"`
}

// Wallet is the in-process key store. It implements core.Crypto.
type Wallet struct {
	l    sync.RWMutex
	keys map[string]ed25519.PrivateKey

	store  storage.Store
	sealer tink.AEAD
}

// NewWallet returns a wallet. The store is optional, without it the keys
// live only in memory. The sealer is mandatory with the store.
func NewWallet(store storage.Store, sealer tink.AEAD) *Wallet {
	if store != nil && sealer == nil {
		panic("wallet store needs a sealer")
	}
	return &Wallet{
		keys:   make(map[string]ed25519.PrivateKey),
		store:  store,
		sealer: sealer,
	}
}

// OpenSealer reads the AEAD keyset from the file or creates a new one if the
// file doesn't exist.
func OpenSealer(keysetFile string) (a tink.AEAD, err error) {
	defer err2.Handle(&err, "open keyset %s", keysetFile)

	var h *keyset.Handle
	f, err := os.Open(keysetFile)
	switch {
	case err == nil:
		defer f.Close()
		h = try.To1(insecurecleartextkeyset.Read(keyset.NewJSONReader(f)))
	case errors.Is(err, fs.ErrNotExist):
		glog.V(1).Infoln("creating new keyset:", keysetFile)
		h = try.To1(keyset.NewHandle(aead.AES256GCMKeyTemplate()))
		nf := try.To1(os.OpenFile(keysetFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600))
		defer nf.Close()
		try.To(insecurecleartextkeyset.Write(h, keyset.NewJSONWriter(nf)))
	default:
		return nil, err
	}
	return aead.New(h)
}

// CreatePairwiseIdentity creates a new key pair. The optional seed must be
// 32 bytes long.
func (w *Wallet) CreatePairwiseIdentity(_ context.Context, seed string) (did, vk string, err error) {
	defer err2.Handle(&err, "create pairwise identity")

	var priv ed25519.PrivateKey
	if seed != "" {
		if len(seed) != ed25519.SeedSize {
			return "", "", vcxerr.Newf(vcxerr.InvalidOption,
				"seed must be %d bytes", ed25519.SeedSize)
		}
		priv = ed25519.NewKeyFromSeed([]byte(seed))
	} else {
		_, priv = try.To2(ed25519.GenerateKey(rand.Reader))
	}
	pub := priv.Public().(ed25519.PublicKey)
	vk = base58.Encode(pub)
	did = base58.Encode(pub[:didLen])

	try.To(w.save(did, vk, priv))

	w.l.Lock()
	w.keys[vk] = priv
	w.l.Unlock()

	glog.V(3).Infoln("new pairwise identity:", did)
	return did, vk, nil
}

// Sign signs the data with the private key of vk.
func (w *Wallet) Sign(_ context.Context, data []byte, vk string) (sig []byte, err error) {
	defer err2.Handle(&err, "sign")

	priv := try.To1(w.key(vk))
	return ed25519.Sign(priv, data), nil
}

// Verify verifies the signature with the verkey. It needs no private keys.
func (w *Wallet) Verify(_ context.Context, data, signature []byte, vk string) (ok bool, err error) {
	defer err2.Handle(&err, "verify")

	pub := try.To1(publicKey(vk))
	return ed25519.Verify(pub, data, signature), nil
}

// Has tells if the wallet has the private key of the vk.
func (w *Wallet) Has(vk string) bool {
	_, err := w.key(vk)
	return err == nil
}

func publicKey(vk string) (ed25519.PublicKey, error) {
	if _, err := validation.ValidateVerkey(vk); err != nil {
		return nil, err
	}
	b, err := base58.Decode(vk)
	if err != nil {
		return nil, vcxerr.Wrap(vcxerr.NotBase58, err, vk)
	}
	return ed25519.PublicKey(b), nil
}

func (w *Wallet) key(vk string) (priv ed25519.PrivateKey, err error) {
	w.l.RLock()
	priv, ok := w.keys[vk]
	w.l.RUnlock()
	if ok {
		return priv, nil
	}
	if w.store == nil {
		return nil, vcxerr.Newf(vcxerr.InvalidVerkey, "key %s not in wallet", vk)
	}

	defer err2.Handle(&err, "load key")

	data, err := w.store.Get(vk)
	if errors.Is(err, storage.ErrDataNotFound) {
		return nil, vcxerr.Newf(vcxerr.InvalidVerkey, "key %s not in wallet", vk)
	}
	try.To(err)

	var rec keyRecord
	try.To(json.Unmarshal(data, &rec))
	seed := try.To1(w.sealer.Decrypt(rec.Seed, []byte(vk)))
	priv = ed25519.NewKeyFromSeed(seed)

	w.l.Lock()
	w.keys[vk] = priv
	w.l.Unlock()
	return priv, nil
}

func (w *Wallet) save(did, vk string, priv ed25519.PrivateKey) (err error) {
	if w.store == nil {
		return nil
	}
	defer err2.Handle(&err, "save key")

	sealed := try.To1(w.sealer.Encrypt(priv.Seed(), []byte(vk)))
	data := try.To1(json.Marshal(keyRecord{DID: did, Seed: sealed}))
	return w.store.Put(vk, data)
}
