package scram

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
)

// minIterations is the downgrade-attack floor: any server-advertised
// iteration count below this is rejected outright.
const minIterations = 4096

// nonceSize is the number of random bytes used for the client nonce,
// matching lib-pq's makeNonce.
const nonceSize = 24

// authMessageCap bounds the AuthMessage accumulator so a misbehaving
// server can't force unbounded growth; overflow is a protocol error
// rather than a panic.
const authMessageCap = 4096

// Option configures a Conversation at construction time.
type Option func(*Conversation)

// WithHashProvider overrides the default stdlib-backed HashProvider.
func WithHashProvider(p HashProvider) Option {
	return func(c *Conversation) { c.hashProvider = p }
}

// WithRandomSource overrides the default crypto/rand-backed RandomSource.
func WithRandomSource(r RandomSource) Option {
	return func(c *Conversation) { c.random = r }
}

// WithoutSASLprep selects the degraded, ASCII-only password preparation
// path for environments with no Unicode normalization available, instead
// of the default github.com/xdg-go/stringprep path.
func WithoutSASLprep() Option {
	return func(c *Conversation) { c.asciiOnlyPasswords = true }
}

// Conversation drives one client-side SCRAM authentication attempt. It is
// short-lived: construct one per attempt with NewConversation, call Step
// up to three times, then either discard it or keep its Cache for reuse.
//
// A Conversation is not safe for concurrent use; Step calls on one
// Conversation must be strictly serial.
type Conversation struct {
	algorithm          Algorithm
	hashProvider       HashProvider
	random             RandomSource
	asciiOnlyPasswords bool

	username string
	password []byte
	step     int

	clientNonce string
	authMessage []byte

	hashedPassword []byte
	iterations     int
	decodedSalt    []byte

	saltedPassword []byte
	clientKeyBytes []byte
	serverKeyBytes []byte

	cache *CacheEntry
}

// NewConversation constructs a Conversation for the given algorithm. The
// algorithm is immutable for the conversation's lifetime.
func NewConversation(algorithm Algorithm, opts ...Option) *Conversation {
	if !algorithm.valid() {
		panic("scram: NewConversation requires scram.SHA1 or scram.SHA256")
	}
	c := &Conversation{
		algorithm:    algorithm,
		hashProvider: newStdlibHashProvider(algorithm),
		random:       cryptoRandSource{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUsername replaces the username. An empty value clears it.
func (c *Conversation) SetUsername(user string) {
	c.username = user
}

// SetPassword replaces the password. Any prior password bytes are zeroed
// in place before being released. An empty value clears it.
func (c *Conversation) SetPassword(pass string) {
	zero(c.password)
	c.password = []byte(pass)
}

// SetCache attaches a deep copy of entry to the conversation, so step 2 can
// skip key derivation if the presecrets match.
func (c *Conversation) SetCache(entry *CacheEntry) {
	c.cache.Destroy()
	c.cache = entry.Copy()
}

// Cache returns a deep copy of the conversation's current cache entry, or
// nil if none is set.
func (c *Conversation) Cache() *CacheEntry {
	return c.cache.Copy()
}

// Destroy zeroes the password and hashed-password buffers in place.
// Callers should call Destroy once a Conversation, successful or not, is
// no longer needed.
func (c *Conversation) Destroy() {
	zero(c.password)
	c.password = nil
	zero(c.hashedPassword)
	c.hashedPassword = nil
	zero(c.saltedPassword)
	zero(c.clientKeyBytes)
	zero(c.serverKeyBytes)
	c.cache.Destroy()
	c.cache = nil
}

// Step advances the conversation by one turn. in is the server's previous
// message (ignored on the first call); the returned slice is the next
// client message to send. Step returns a *Error of KindNotDone once the
// conversation has already completed its third turn. Once any turn fails,
// every later Step call returns a KindProtocol error without advancing.
func (c *Conversation) Step(in []byte) ([]byte, error) {
	if c.step < 0 {
		return nil, protocolError("conversation aborted by an earlier error")
	}
	c.step++
	var out []byte
	var err error
	switch c.step {
	case 1:
		out, err = c.step1()
	case 2:
		out, err = c.step2(in)
	case 3:
		out, err = c.step3(in)
	default:
		return nil, &Error{Kind: KindNotDone, Message: "conversation already completed"}
	}
	if err != nil {
		c.step = -1
	}
	return out, err
}

func (c *Conversation) step1() ([]byte, error) {
	if c.username == "" {
		return nil, protocolError("username is not set")
	}

	nonce := make([]byte, nonceSize)
	if err := c.random.Read(nonce); err != nil {
		return nil, protocolError("could not generate client nonce: %v", err)
	}
	c.clientNonce = encodeB64(nonce)

	out := "n,,n=" + escapeUsername(c.username) + ",r=" + c.clientNonce
	if len(out) > authMessageCap {
		return nil, protocolError("could not buffer client-first-message")
	}

	c.authMessage = make([]byte, 0, authMessageCap)
	c.authMessage = append(c.authMessage, out[3:]...)
	c.authMessage = append(c.authMessage, ',')

	return []byte(out), nil
}

func (c *Conversation) step2(in []byte) ([]byte, error) {
	hashedPassword, err := c.prepareHashedPassword()
	if err != nil {
		return nil, err
	}

	if err := c.appendAuthMessage(in); err != nil {
		return nil, err
	}
	if err := c.appendAuthMessage([]byte{','}); err != nil {
		return nil, err
	}

	attrs, err := parseAttributes(string(in))
	if err != nil {
		return nil, err
	}
	if err := rejectUnknownAttributes(attrs, "r", "s", "i"); err != nil {
		return nil, err
	}
	values, err := requireAttributes(attrs, "r", "s", "i")
	if err != nil {
		return nil, err
	}
	combinedNonce, saltB64, iterStr := values[0], values[1], values[2]

	if !constantTimeHasPrefix(combinedNonce, c.clientNonce) {
		return nil, protocolError("client nonce not repeated")
	}

	decodedSalt, err := decodeB64(saltB64)
	if err != nil {
		return nil, protocolError("unable to decode salt: %v", err)
	}
	expectedSaltLen := c.algorithm.HashSize() - 4
	if len(decodedSalt) != expectedSaltLen {
		return nil, protocolError("invalid salt length of %d", len(decodedSalt))
	}

	iterations, err := parseIterations(iterStr)
	if err != nil {
		return nil, err
	}
	if iterations < minIterations {
		return nil, protocolError("iterations must be at least %d", minIterations)
	}

	c.hashedPassword = hashedPassword
	c.iterations = iterations
	c.decodedSalt = decodedSalt

	if c.cache.HasPresecrets(c.algorithm, hashedPassword, decodedSalt, iterations) {
		c.saltedPassword = append([]byte(nil), c.cache.SaltedPassword...)
		c.clientKeyBytes = append([]byte(nil), c.cache.ClientKey...)
		c.serverKeyBytes = append([]byte(nil), c.cache.ServerKey...)
	} else if c.saltedPassword == nil {
		c.saltedPassword = hi(c.algorithm, hashedPassword, decodedSalt, iterations)
	}

	out := "c=biws,r=" + combinedNonce
	if err := c.appendAuthMessage([]byte(out)); err != nil {
		return nil, err
	}

	clientKeyBytes := c.ensureClientKey()
	storedKeyBytes := deriveStoredKey(c.hashProvider, clientKeyBytes)
	signature := deriveClientSignature(c.hashProvider, storedKeyBytes, c.authMessage)
	proof := xorBytes(clientKeyBytes, signature)

	out = out + ",p=" + encodeB64(proof)
	return []byte(out), nil
}

func (c *Conversation) step3(in []byte) ([]byte, error) {
	attrs, err := parseAttributes(string(in))
	if err != nil {
		return nil, err
	}
	if err := rejectUnknownAttributes(attrs, "e", "v"); err != nil {
		return nil, err
	}

	if e, ok := attrs["e"]; ok {
		return nil, protocolError("authentication failure: %s", e)
	}
	v, ok := attrs["v"]
	if !ok {
		return nil, protocolError("no v param given")
	}

	serverKeyBytes := c.ensureServerKey()
	expected := deriveServerSignature(c.hashProvider, serverKeyBytes, c.authMessage)
	expectedB64 := encodeB64(expected)

	if !constantTimeEqual(expectedB64, v) {
		return nil, protocolError("server signature mismatch")
	}

	c.cache.Destroy()
	c.cache = &CacheEntry{
		Algorithm:      c.algorithm,
		HashedPassword: append([]byte(nil), c.hashedPassword...),
		DecodedSalt:    append([]byte(nil), c.decodedSalt...),
		Iterations:     c.iterations,
		SaltedPassword: append([]byte(nil), c.saltedPassword...),
		ClientKey:      append([]byte(nil), c.clientKeyBytes...),
		ServerKey:      append([]byte(nil), c.serverKeyBytes...),
	}

	return []byte{}, nil
}

func (c *Conversation) ensureClientKey() []byte {
	if c.clientKeyBytes == nil {
		c.clientKeyBytes = deriveClientKey(c.hashProvider, c.saltedPassword)
	}
	return c.clientKeyBytes
}

func (c *Conversation) ensureServerKey() []byte {
	if c.serverKeyBytes == nil {
		c.serverKeyBytes = deriveServerKey(c.hashProvider, c.saltedPassword)
	}
	return c.serverKeyBytes
}

// prepareHashedPassword returns the per-algorithm form of the password
// used as the key material in Hi.
func (c *Conversation) prepareHashedPassword() ([]byte, error) {
	if len(c.password) == 0 {
		return nil, protocolError("password is not set")
	}
	if c.algorithm == SHA1 {
		sum := md5.Sum([]byte(c.username + ":mongo:" + string(c.password)))
		return []byte(hex.EncodeToString(sum[:])), nil
	}
	prepared, err := preparePassword(string(c.password), c.asciiOnlyPasswords)
	if err != nil {
		return nil, err
	}
	return []byte(prepared), nil
}

func (c *Conversation) appendAuthMessage(b []byte) error {
	if len(c.authMessage)+len(b) > authMessageCap {
		return protocolError("could not buffer auth message")
	}
	c.authMessage = append(c.authMessage, b...)
	return nil
}

func parseIterations(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, protocolError("invalid iteration count %q", s)
	}
	if n < 0 {
		return 0, protocolError("iteration count must not be negative")
	}
	return n, nil
}

// constantTimeHasPrefix reports whether s begins with prefix, using a
// constant-time comparison over the overlapping length so a mismatching
// nonce can't be distinguished by timing any more than a mismatching
// server signature can.
func constantTimeHasPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s[:len(prefix)]), []byte(prefix)) == 1
}

func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
