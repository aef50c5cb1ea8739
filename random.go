package scram

import "crypto/rand"

// cryptoRandSource is the default RandomSource, backed by crypto/rand.
// Every nonce-generating example in the reference corpus (gonzalop-mq's
// SCRAM example, FerretDB's SCRAM-SHA-256 hasher) calls crypto/rand.Read
// directly; there is no third-party random-byte library in the pack to
// prefer over it.
type cryptoRandSource struct{}

func (cryptoRandSource) Read(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
