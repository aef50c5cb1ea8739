package scram

import "fmt"

// Kind classifies a SCRAM [Error].
type Kind int

const (
	// KindProtocol covers any malformed or policy-violating input: bad
	// base64, an iteration count below the floor, a nonce mismatch, a
	// server-reported e= failure, a server signature mismatch, and so on.
	KindProtocol Kind = iota
	// KindNotDone is returned when Step is called after the conversation
	// has already completed its third turn.
	KindNotDone
)

func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return "protocol error"
	case KindNotDone:
		return "not done"
	default:
		return "unknown"
	}
}

// Error is the only error type this package returns. Every failure surfaces
// at the Step boundary; the caller is expected to discard the conversation
// once it sees one.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("scram: %s: %s", e.Kind, e.Message)
}

// Is lets callers write errors.Is(err, scram.ErrNotDone) and
// errors.Is(err, scram.ErrProtocol) to test the failure category without
// inspecting fields.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	if other.Message == "" {
		return e.Kind == other.Kind
	}
	return e.Kind == other.Kind && e.Message == other.Message
}

func protocolError(format string, args ...any) error {
	return &Error{Kind: KindProtocol, Message: fmt.Sprintf(format, args...)}
}

// ErrNotDone is a sentinel usable with errors.Is; it matches any *Error of
// KindNotDone regardless of message.
var ErrNotDone = &Error{Kind: KindNotDone}

// ErrProtocol is a sentinel usable with errors.Is; it matches any *Error of
// KindProtocol regardless of message.
var ErrProtocol = &Error{Kind: KindProtocol}
