package scram

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
)

// tag enumerates the supported hash families. It exists so Algorithm stays
// a small comparable value (usable as a map key and with ==) instead of
// carrying a func field directly.
type tag int

const (
	tagSHA1 tag = iota + 1
	tagSHA256
)

// Algorithm identifies the hash family a [Conversation] negotiates.
// It is a closed sum type constructed only through the SHA1 and SHA256
// package values, so there is no zero value that silently behaves as an
// unsupported, zero-size algorithm.
type Algorithm struct {
	t tag
}

// Name returns the SASL mechanism name the caller should negotiate with
// the server, e.g. "SCRAM-SHA-256". This package never emits the name
// itself; the transport does.
func (a Algorithm) Name() string {
	switch a.t {
	case tagSHA1:
		return "SCRAM-SHA-1"
	case tagSHA256:
		return "SCRAM-SHA-256"
	default:
		panic("scram: use of the zero Algorithm value")
	}
}

// HashSize returns the digest size in bytes for this algorithm: 20 for
// SHA-1, 32 for SHA-256.
func (a Algorithm) HashSize() int {
	switch a.t {
	case tagSHA1:
		return sha1.Size
	case tagSHA256:
		return sha256.Size
	default:
		panic("scram: use of the zero Algorithm value")
	}
}

func (a Algorithm) newHash() hash.Hash {
	switch a.t {
	case tagSHA1:
		return sha1.New()
	case tagSHA256:
		return sha256.New()
	default:
		panic("scram: use of the zero Algorithm value")
	}
}

func (a Algorithm) valid() bool { return a.t == tagSHA1 || a.t == tagSHA256 }

var (
	// SHA1 is SCRAM-SHA-1 (RFC 5802), hash size 20.
	SHA1 = Algorithm{t: tagSHA1}
	// SHA256 is SCRAM-SHA-256 (RFC 7677), hash size 32.
	SHA256 = Algorithm{t: tagSHA256}
)

// HashProvider is the capability this package consumes for hashing and
// HMAC. The default implementation, built from an [Algorithm], wraps the
// stdlib crypto/hmac and crypto/sha1 or crypto/sha256 packages directly;
// no example in the reference corpus reaches for a third-party HMAC or
// hash library for SCRAM, so stdlib is the idiomatic choice rather than a
// fallback.
type HashProvider interface {
	// Hash returns H(data) for the provider's algorithm.
	Hash(data []byte) []byte
	// HMAC returns HMAC(key, data) for the provider's algorithm.
	HMAC(key, data []byte) []byte
	// Size returns the digest size in bytes.
	Size() int
}

type stdlibHashProvider struct {
	algorithm Algorithm
}

func newStdlibHashProvider(algorithm Algorithm) HashProvider {
	return stdlibHashProvider{algorithm: algorithm}
}

func (p stdlibHashProvider) Hash(data []byte) []byte {
	h := p.algorithm.newHash()
	h.Write(data)
	return h.Sum(nil)
}

func (p stdlibHashProvider) HMAC(key, data []byte) []byte {
	m := hmac.New(p.algorithm.newHash, key)
	m.Write(data)
	return m.Sum(nil)
}

func (p stdlibHashProvider) Size() int { return p.algorithm.HashSize() }

// RandomSource is the capability this package consumes for generating the
// client nonce. The default implementation wraps crypto/rand.
type RandomSource interface {
	// Read fills buf with len(buf) cryptographically strong random bytes.
	Read(buf []byte) error
}
