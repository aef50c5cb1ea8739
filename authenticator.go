package scram

import (
	"io"
	"log/slog"
)

// Authenticator handles the authentication exchange for a specific
// authentication method, independent of any particular transport.
//
// A caller obtains InitialData for its handshake's first message, feeds
// each server challenge to HandleChallenge, and calls Complete once the
// server reports success. [NewScramAuthenticator] is the SCRAM-backed
// implementation.
type Authenticator interface {
	// Method returns the SASL mechanism name, e.g. "SCRAM-SHA-256".
	Method() string

	// InitialData returns the data to send as the first authentication
	// message. Callers should call this exactly once, before any
	// HandleChallenge call.
	InitialData() ([]byte, error)

	// HandleChallenge processes one challenge from the server and returns
	// the response to send back.
	HandleChallenge(challenge []byte) ([]byte, error)

	// Complete is called once the server reports success.
	Complete() error
}

// scramAuthenticator adapts a Conversation to the Authenticator interface.
type scramAuthenticator struct {
	conv   *Conversation
	logger *slog.Logger
}

// NewScramAuthenticator returns an Authenticator that drives a SCRAM
// [Conversation] for the given algorithm, username and password. logger
// may be nil, in which case a discarding logger is used.
func NewScramAuthenticator(algorithm Algorithm, username, password string, logger *slog.Logger) Authenticator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	conv := NewConversation(algorithm)
	conv.SetUsername(username)
	conv.SetPassword(password)
	return &scramAuthenticator{conv: conv, logger: logger}
}

func (a *scramAuthenticator) Method() string {
	return a.conv.algorithm.Name()
}

func (a *scramAuthenticator) InitialData() ([]byte, error) {
	out, err := a.conv.Step(nil)
	if err != nil {
		a.logger.Error("scram: client-first failed", "error", err)
		return nil, err
	}
	return out, nil
}

func (a *scramAuthenticator) HandleChallenge(challenge []byte) ([]byte, error) {
	out, err := a.conv.Step(challenge)
	if err != nil {
		a.logger.Error("scram: challenge rejected", "error", err)
		return nil, err
	}
	return out, nil
}

func (a *scramAuthenticator) Complete() error {
	a.conv.Destroy()
	a.logger.Debug("scram: authentication complete", "method", a.Method())
	return nil
}
