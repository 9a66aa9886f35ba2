package ssi

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
	"github.com/teserakt-io/golang-ed25519/extra25519"
	"golang.org/x/crypto/blake2b"
	chacha "golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/box"
)

const (
	curveKeySize = 32
	boxNonceSize = 24

	typJWM    = "JWM/1.0"
	encChacha = "chacha20poly1305_ietf"
	algAuth   = "Authcrypt"
	algAnon   = "Anoncrypt"
)

// envelope is the Aries RFC 0019 legacy envelope.
type envelope struct {
	Protected  string `json:"protected"`
	IV         string `json:"iv"`
	CipherText string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

type protected struct {
	Enc        string      `json:"enc"`
	Typ        string      `json:"typ"`
	Alg        string      `json:"alg"`
	Recipients []recipient `json:"recipients"`
}

type recipient struct {
	EncryptedKey string          `json:"encrypted_key"`
	Header       recipientHeader `json:"header"`
}

type recipientHeader struct {
	KID    string `json:"kid"`
	Sender string `json:"sender,omitempty"`
	IV     string `json:"iv,omitempty"`
}

var errNoRecipient = errors.New("no recipient key accessible")

// Encrypt packs the data for theirVK. It's authcrypt when myVK is given and
// anoncrypt otherwise.
func (w *Wallet) Encrypt(_ context.Context, data []byte, myVK, theirVK string) (out []byte, err error) {
	defer err2.Handle(&err, "pack message")

	recPub := try.To1(publicKey(theirVK))
	recCurve := try.To1(publicToCurve(recPub))

	_, cek := try.To2(box.GenerateKey(rand.Reader))
	rcpt := recipient{Header: recipientHeader{KID: theirVK}}
	alg := algAnon
	if myVK != "" {
		alg = algAuth
		priv := try.To1(w.key(myVK))
		var nonce [boxNonceSize]byte
		try.To1(io.ReadFull(rand.Reader, nonce[:]))
		encCEK := box.Seal(nil, cek[:], &nonce, recCurve, privateToCurve(priv))
		encSender := try.To1(sealAnonymous([]byte(myVK), recCurve))
		rcpt.EncryptedKey = utils.EncodeB64(encCEK)
		rcpt.Header.Sender = utils.EncodeB64(encSender)
		rcpt.Header.IV = utils.EncodeB64(nonce[:])
	} else {
		rcpt.EncryptedKey = utils.EncodeB64(try.To1(sealAnonymous(cek[:], recCurve)))
	}

	protBytes := try.To1(json.Marshal(protected{
		Enc:        encChacha,
		Typ:        typJWM,
		Alg:        alg,
		Recipients: []recipient{rcpt},
	}))
	prot := utils.EncodeB64(protBytes)

	aeadCipher := try.To1(chacha.New(cek[:]))
	nonce := make([]byte, chacha.NonceSize)
	try.To1(io.ReadFull(rand.Reader, nonce))
	sealed := aeadCipher.Seal(nil, nonce, data, []byte(prot))
	tagAt := len(sealed) - aeadCipher.Overhead()

	return json.Marshal(envelope{
		Protected:  prot,
		IV:         utils.EncodeB64(nonce),
		CipherText: utils.EncodeB64(sealed[:tagAt]),
		Tag:        utils.EncodeB64(sealed[tagAt:]),
	})
}

// Decrypt opens the envelope with the private key of myVK. The sender's
// verkey is returned for authcrypted messages.
func (w *Wallet) Decrypt(_ context.Context, data []byte, myVK string) (msg []byte, senderVK string, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.InvalidMessages, err, "unpack message")
	})

	var env envelope
	try.To(json.Unmarshal(data, &env))
	var prot protected
	try.To(json.Unmarshal(try.To1(utils.DecodeB64(env.Protected)), &prot))
	if prot.Typ != typJWM {
		return nil, "", fmt.Errorf("message type %s not supported", prot.Typ)
	}

	var rcpt *recipient
	for i := range prot.Recipients {
		if prot.Recipients[i].Header.KID == myVK {
			rcpt = &prot.Recipients[i]
			break
		}
	}
	if rcpt == nil {
		return nil, "", errNoRecipient
	}

	priv := try.To1(w.key(myVK))
	myCurvePub := try.To1(publicToCurve(priv.Public().(ed25519.PublicKey)))
	myCurvePriv := privateToCurve(priv)
	encCEK := try.To1(utils.DecodeB64(rcpt.EncryptedKey))

	var cek []byte
	switch prot.Alg {
	case algAuth:
		sender := try.To1(openAnonymous(try.To1(utils.DecodeB64(rcpt.Header.Sender)),
			myCurvePub, myCurvePriv))
		senderVK = string(sender)
		senderPub := try.To1(publicKey(senderVK))
		senderCurve := try.To1(publicToCurve(senderPub))
		var nonce [boxNonceSize]byte
		copy(nonce[:], try.To1(utils.DecodeB64(rcpt.Header.IV)))
		var ok bool
		cek, ok = box.Open(nil, encCEK, &nonce, senderCurve, myCurvePriv)
		if !ok {
			return nil, "", errors.New("failed to decrypt CEK")
		}
	case algAnon:
		cek = try.To1(openAnonymous(encCEK, myCurvePub, myCurvePriv))
	default:
		return nil, "", fmt.Errorf("message format %s not supported", prot.Alg)
	}

	aeadCipher := try.To1(chacha.New(cek))
	nonce := try.To1(utils.DecodeB64(env.IV))
	cipherText := try.To1(utils.DecodeB64(env.CipherText))
	tag := try.To1(utils.DecodeB64(env.Tag))
	msg = try.To1(aeadCipher.Open(nil, nonce, append(cipherText, tag...), []byte(env.Protected)))
	return msg, senderVK, nil
}

func publicToCurve(pub ed25519.PublicKey) (*[curveKeySize]byte, error) {
	var edPub [ed25519.PublicKeySize]byte
	copy(edPub[:], pub)
	out := new([curveKeySize]byte)
	if !extra25519.PublicKeyToCurve25519(out, &edPub) {
		return nil, vcxerr.New(vcxerr.InvalidVerkey, "cannot convert to curve25519: "+base58.Encode(pub))
	}
	return out, nil
}

func privateToCurve(priv ed25519.PrivateKey) *[curveKeySize]byte {
	var edPriv [ed25519.PrivateKeySize]byte
	copy(edPriv[:], priv)
	out := new([curveKeySize]byte)
	extra25519.PrivateKeyToCurve25519(out, &edPriv)
	return out
}

// boxNonce is libsodium's sealed box nonce: blake2b(epk || rpk).
func boxNonce(epk, rpk []byte) (*[boxNonceSize]byte, error) {
	h, err := blake2b.New(boxNonceSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write(epk)
	h.Write(rpk)
	var nonce [boxNonceSize]byte
	copy(nonce[:], h.Sum(nil))
	return &nonce, nil
}

// sealAnonymous is libsodium's crypto_box_seal.
func sealAnonymous(msg []byte, recPub *[curveKeySize]byte) (_ []byte, err error) {
	defer err2.Handle(&err, "seal box")

	// Not try.To2: go1.21 ICE ("bad ptr to array in slice") on generic *[32]byte.
	epk, esk, err := box.GenerateKey(rand.Reader)
	try.To(err)
	nonce := try.To1(boxNonce(epk[:], recPub[:]))
	out := append([]byte{}, epk[:]...)
	return box.Seal(out, msg, nonce, recPub, esk), nil
}

// openAnonymous is libsodium's crypto_box_seal_open.
func openAnonymous(msg []byte, pub, priv *[curveKeySize]byte) (_ []byte, err error) {
	defer err2.Handle(&err, "open sealed box")

	if len(msg) < curveKeySize {
		return nil, errors.New("sealed box too short")
	}
	var epk [curveKeySize]byte
	copy(epk[:], msg[:curveKeySize])
	nonce := try.To1(boxNonce(epk[:], pub[:]))
	out, ok := box.Open(nil, msg[curveKeySize:], nonce, &epk, priv)
	if !ok {
		return nil, errors.New("failed to open sealed box")
	}
	return out, nil
}
