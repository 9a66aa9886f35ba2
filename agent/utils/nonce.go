package utils

import (
	"crypto/rand"
	"math"
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// UUID generates new message ID. All the message IDs and thread IDs are
// UUIDs.
func UUID() string {
	return uuid.New().String()
}

// NewNonce generates new uint64 nonce with Go's crypto package
func NewNonce() uint64 {
	m := big.NewInt(math.MaxInt64)
	r, err := rand.Int(rand.Reader, m)
	if err != nil {
		panic("cannot create nonce")
	}
	return r.Uint64()
}

// NewNonceStr generates new nonce with Go's crypto package, and returns value
// as string. Presentation requests use these.
func NewNonceStr() string {
	return strconv.FormatUint(NewNonce(), 10)
}
