package scram

import "encoding/base64"

// encodeB64 produces standard base64 with padding, matching RFC 5802's
// wire format for nonces, salts and proofs.
func encodeB64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// decodeB64 rejects invalid characters and padding.
func decodeB64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
