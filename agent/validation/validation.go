// Package validation implements the structural checks made to peer supplied
// identifiers before they are trusted or used.
package validation

import (
	"net/url"
	"regexp"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/mr-tron/base58"
)

const (
	didLen    = 16
	verkeyLen = 32
)

var didRegexp = regexp.MustCompile(`did:([a-z0-9]+):([a-zA-Z0-9:.-_]*)`)

// ValidateDID accepts fully qualified DIDs (did:<method>:<id>) and legacy
// unqualified DIDs which are base58 encoded 16 byte values. It returns the DID
// unchanged.
func ValidateDID(did string) (string, error) {
	if didRegexp.MatchString(did) {
		return did, nil
	}
	raw, err := base58.Decode(did)
	if err != nil {
		return "", vcxerr.Wrap(vcxerr.NotBase58, err, "invalid DID")
	}
	if len(raw) != didLen {
		return "", vcxerr.Newf(vcxerr.InvalidDID,
			"DID %q has length %d, expected %d", did, len(raw), didLen)
	}
	return did, nil
}

// ValidateVerkey accepts base58 encoded 32 byte keys.
func ValidateVerkey(vk string) (string, error) {
	raw, err := base58.Decode(vk)
	if err != nil {
		return "", vcxerr.Wrap(vcxerr.NotBase58, err, "invalid verkey")
	}
	if len(raw) != verkeyLen {
		return "", vcxerr.Newf(vcxerr.InvalidVerkey,
			"verkey %q has length %d, expected %d", vk, len(raw), verkeyLen)
	}
	return vk, nil
}

// ValidateURL accepts absolute URLs, i.e. the scheme is mandatory.
func ValidateURL(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", vcxerr.Wrap(vcxerr.InvalidURL, err, "invalid url")
	}
	if u.Scheme == "" {
		return "", vcxerr.Newf(vcxerr.InvalidURL, "url %q is missing scheme", s)
	}
	return s, nil
}

// ValidateKeys runs ValidateVerkey for every key and returns the first error.
func ValidateKeys(keys []string) error {
	for _, k := range keys {
		if _, err := ValidateVerkey(k); err != nil {
			return err
		}
	}
	return nil
}
