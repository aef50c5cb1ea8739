package scram

import "github.com/xdg-go/stringprep"

// preparePassword normalizes a password before it's used as HMAC key
// material, either via full SASLprep or the degraded ASCII-only fallback.
//
// The ecosystem's RFC 4013 implementation, github.com/xdg-go/stringprep,
// is what lib-pq, FerretDB and momeni-clean-arch all reach for, so it is
// the default here. The ASCII-only fallback is an explicit, caller-selected
// degraded mode (Conversation.asciiOnlyPasswords) rather than a build tag,
// since Go has no equivalent to conditionally compiling around an optional
// Unicode library.
func preparePassword(pass string, asciiOnly bool) (string, error) {
	if asciiOnly {
		return prepareASCIIOnly(pass)
	}
	prepared, err := stringprep.SASLprep.Prepare(pass)
	if err != nil {
		return "", protocolError("SASLprep failed: %v", err)
	}
	return prepared, nil
}

// prepareASCIIOnly is the fallback path used when no Unicode profile is
// available: any byte outside printable ASCII is fatal, otherwise the
// password passes through unchanged.
func prepareASCIIOnly(pass string) (string, error) {
	for i := 0; i < len(pass); i++ {
		b := pass[i]
		if b < 0x20 || b >= 0x7F {
			return "", protocolError("ICU required to SASLprep password")
		}
	}
	return pass, nil
}
