// Package scram implements the client side of Salted Challenge Response
// Authentication Mechanism conversations (RFC 5802, RFC 7677) for
// SCRAM-SHA-1 and SCRAM-SHA-256.
//
// The package exposes a reusable, synchronously driven [Conversation] that,
// given a username, a password and a hash [Algorithm], produces the three
// SCRAM client messages in order and verifies the server's final signature.
// Derived key material can be cached across conversations against the same
// server through [CacheEntry], so repeat authentications skip the
// expensive PBKDF2-style iteration.
//
// # Scope
//
// This package only implements the conversation itself. It does not carry
// bytes over a network, frame them inside a SASL or database wire protocol,
// or generate its own random bytes and hash digests from scratch: those are
// consumed through the small [RandomSource] and [HashProvider] interfaces,
// with stdlib-backed defaults. Hi (PBKDF2) and the SCRAM-SHA-1 MD5 password
// pre-hash call the stdlib hashes for the algorithm directly rather than
// going through the [HashProvider]. Wiring a [Conversation] into an actual
// client is shown by [Authenticator] and [NewScramAuthenticator].
//
// # Quick start
//
//	conv := scram.NewConversation(scram.SHA256)
//	conv.SetUsername("user")
//	conv.SetPassword("pencil")
//
//	clientFirst, err := conv.Step(nil)
//	// ... send clientFirst, receive serverFirst ...
//	clientFinal, err := conv.Step(serverFirst)
//	// ... send clientFinal, receive serverFinal ...
//	_, err = conv.Step(serverFinal)
//	if err != nil {
//	    // server signature did not verify, or the server reported e=...
//	}
//
// # Caching derived secrets
//
// After a successful conversation, [Conversation.Cache] returns an
// independent copy of the derived key material. Attaching that copy to a
// fresh [Conversation] with [Conversation.SetCache] before the second step
// lets the conversation skip PBKDF2 entirely when the username, password,
// salt, iteration count and algorithm are unchanged.
//
// # Non-goals
//
// Server-side SCRAM, channel binding beyond the fixed "n,," gs2-header,
// authorization identities (the a= field), and renegotiating the hash
// algorithm mid-conversation are all out of scope.
package scram
