package scram

// CacheEntry holds the presecrets and derived secrets for one
// (algorithm, hashed password, salt, iterations) combination,
// so a later [Conversation] against the same server can skip PBKDF2.
//
// A CacheEntry may outlive the Conversation that produced it and be handed
// to future conversations; [Conversation.Cache] and [Conversation.SetCache]
// always deep-copy, so a CacheEntry is never shared between conversations.
type CacheEntry struct {
	Algorithm      Algorithm
	HashedPassword []byte
	DecodedSalt    []byte
	Iterations     int
	SaltedPassword []byte
	ClientKey      []byte
	ServerKey      []byte
}

// Copy returns an independent deep copy of e.
func (e *CacheEntry) Copy() *CacheEntry {
	if e == nil {
		return nil
	}
	return &CacheEntry{
		Algorithm:      e.Algorithm,
		HashedPassword: append([]byte(nil), e.HashedPassword...),
		DecodedSalt:    append([]byte(nil), e.DecodedSalt...),
		Iterations:     e.Iterations,
		SaltedPassword: append([]byte(nil), e.SaltedPassword...),
		ClientKey:      append([]byte(nil), e.ClientKey...),
		ServerKey:      append([]byte(nil), e.ServerKey...),
	}
}

// Destroy zeroes the hashed password and derived keys in place before the
// entry is released rather than leaving them for the garbage collector.
func (e *CacheEntry) Destroy() {
	if e == nil {
		return
	}
	zero(e.HashedPassword)
	e.HashedPassword = nil
	zero(e.SaltedPassword)
	zero(e.ClientKey)
	zero(e.ServerKey)
}

// HasPresecrets reports whether e was derived from the same presecrets as
// the candidate (hashedPassword, decodedSalt, iterations) under algorithm.
//
// The algorithm is part of the identity check: two algorithms can agree
// on a hashed password, salt and iteration count yet need different
// keys, so omitting the algorithm here would let a cache entry serve the
// wrong hash family.
func (e *CacheEntry) HasPresecrets(algorithm Algorithm, hashedPassword []byte, decodedSalt []byte, iterations int) bool {
	if e == nil {
		return false
	}
	return e.Algorithm == algorithm &&
		bytesEqual(e.HashedPassword, hashedPassword) &&
		e.Iterations == iterations &&
		bytesEqual(e.DecodedSalt, decodedSalt)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
