package scram

import "golang.org/x/crypto/pbkdf2"

var (
	clientKeyLabel = []byte("Client Key")
	serverKeyLabel = []byte("Server Key")
)

// hi computes the salted password, RFC 5802's Hi(password, salt, i): the
// HMAC chain salt||INT(1), then i-1 more rounds XORed into the
// accumulator. That is, by definition, PBKDF2 with a derived-key length
// equal to one hash block, so pbkdf2.Key(password, salt, iterations,
// hashSize, newHash) computes exactly the same bytes. gonzalop-mq's
// scram_auth example and FerretDB's SCRAM-SHA-256 hasher both reach for
// golang.org/x/crypto/pbkdf2 here rather than hand-rolling the HMAC chain.
func hi(algorithm Algorithm, password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, algorithm.HashSize(), algorithm.newHash)
}

// deriveClientKey returns HMAC(saltedPassword, "Client Key").
func deriveClientKey(provider HashProvider, saltedPassword []byte) []byte {
	return provider.HMAC(saltedPassword, clientKeyLabel)
}

// deriveServerKey returns HMAC(saltedPassword, "Server Key").
func deriveServerKey(provider HashProvider, saltedPassword []byte) []byte {
	return provider.HMAC(saltedPassword, serverKeyLabel)
}

// deriveStoredKey returns H(clientKey).
func deriveStoredKey(provider HashProvider, clientKey []byte) []byte {
	return provider.Hash(clientKey)
}

// deriveClientSignature returns HMAC(storedKey, authMessage).
func deriveClientSignature(provider HashProvider, storedKey, authMessage []byte) []byte {
	return provider.HMAC(storedKey, authMessage)
}

// deriveServerSignature returns HMAC(serverKey, authMessage).
func deriveServerSignature(provider HashProvider, serverKey, authMessage []byte) []byte {
	return provider.HMAC(serverKey, authMessage)
}

// xorBytes XORs a and b, returning a new slice the length of the shorter
// of the two. The kernel only ever calls this with two equal-length
// digests (ClientKey and ClientSignature).
func xorBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}
