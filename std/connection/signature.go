package connection

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/AbsaOSS/libvcx/agent/didcomm"
	"github.com/AbsaOSS/libvcx/agent/pltype"
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

const timestampLen = 8

var (
	errMissingDoc    = errors.New("missing DID doc")
	errSignatureData = errors.New("missing or invalid signature data")
)

// Signer signs data with the private key of the verkey.
type Signer interface {
	Sign(ctx context.Context, data []byte, vk string) ([]byte, error)
}

// Verifier verifies the signature made by the verkey.
type Verifier interface {
	Verify(ctx context.Context, data, signature []byte, vk string) (bool, error)
}

// Signature is the connection~sig decorator.
type Signature struct {
	Type      string `json:"@type"`
	Signature string `json:"signature"`
	SigData   string `json:"sig_data"`
	Signer    string `json:"signer"`
}

// SignedResponse is the response as it's sent: the connection data lives
// only inside the signed data.
type SignedResponse struct {
	didcomm.Header
	ConnectionSig Signature `json:"connection~sig"`
}

// Sign signs the connection data of the response with vk, which must be the
// recipient key of the invitation. Signed data is an 8 byte big endian unix
// timestamp followed by the connection JSON.
func (r *Response) Sign(ctx context.Context, signer Signer, vk string) (sr *SignedResponse, err error) {
	defer err2.Handle(&err, "sign response")

	connJSON := try.To1(json.Marshal(r.Connection))
	data := make([]byte, timestampLen, timestampLen+len(connJSON))
	binary.BigEndian.PutUint64(data, uint64(time.Now().Unix()))
	data = append(data, connJSON...)

	sig := try.To1(signer.Sign(ctx, data, vk))
	return &SignedResponse{
		Header: r.Header,
		ConnectionSig: Signature{
			Type:      pltype.ConnectionSignature,
			Signature: utils.EncodeB64(sig),
			SigData:   utils.EncodeB64(data),
			Signer:    vk,
		},
	}, nil
}

// Decode verifies the signature and returns the response it carries. The
// signer must be expectedVK, the recipient key of the invitation we used.
func (sr *SignedResponse) Decode(ctx context.Context, v Verifier, expectedVK string) (r *Response, err error) {
	defer err2.Handle(&err, "decode signed response")

	if sr.ConnectionSig.Signer != expectedVK {
		return nil, vcxerr.Newf(vcxerr.InvalidJSON,
			"signer %s is not the invitation key %s", sr.ConnectionSig.Signer, expectedVK)
	}
	data := try.To1(utils.DecodeB64(sr.ConnectionSig.SigData))
	if len(data) <= timestampLen {
		return nil, vcxerr.Wrap(vcxerr.InvalidJSON, errSignatureData, "sig_data")
	}
	sig := try.To1(utils.DecodeB64(sr.ConnectionSig.Signature))
	ok := try.To1(v.Verify(ctx, data, sig, expectedVK))
	if !ok {
		return nil, vcxerr.New(vcxerr.InvalidJSON, "connection signature does not verify")
	}
	ts := time.Unix(int64(binary.BigEndian.Uint64(data[:timestampLen])), 0)
	glog.V(3).Infoln("verified connection signature w/ ts:", ts)

	r = &Response{Header: sr.Header}
	try.To(json.Unmarshal(data[timestampLen:], &r.Connection))
	return r, nil
}
