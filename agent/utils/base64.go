package utils

import "encoding/base64"

// DecodeB64 decodes URL encoded base64 with or without padding and falls back
// to the standard encoding which some agents use for attachments.
func DecodeB64(str string) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(str)
	if err != nil {
		data, err = base64.RawURLEncoding.DecodeString(str)
	}
	if err != nil {
		data, err = base64.StdEncoding.DecodeString(str)
	}
	return data, err
}

// EncodeB64 encodes with URL encoding and padding.
func EncodeB64(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}
