package scram

import "strings"

// parseAttributes parses a comma-separated k=v attribute list as used by
// every SCRAM wire message. It rejects a missing '=' or an empty key.
func parseAttributes(msg string) (map[string]string, error) {
	attrs := make(map[string]string)
	if msg == "" {
		return attrs, nil
	}
	for _, part := range strings.Split(msg, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" {
			return nil, protocolError("invalid parse state, expected k=v in %q", part)
		}
		attrs[key] = value
	}
	return attrs, nil
}

// requireAttributes fetches required keys from attrs, failing on the
// first one missing.
func requireAttributes(attrs map[string]string, keys ...string) ([]string, error) {
	values := make([]string, len(keys))
	for i, k := range keys {
		v, ok := attrs[k]
		if !ok {
			return nil, protocolError("no %s param given", k)
		}
		values[i] = v
	}
	return values, nil
}

// rejectUnknownAttributes fails if attrs contains any key not in allowed.
func rejectUnknownAttributes(attrs map[string]string, allowed ...string) error {
	for k := range attrs {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return protocolError("unknown key %q in server message", k)
		}
	}
	return nil
}

// escapeUsername applies RFC 5802 §5.1's saslname escaping: ',' -> "=2C",
// '=' -> "=3D", everything else passes through unchanged.
func escapeUsername(user string) string {
	if !strings.ContainsAny(user, ",=") {
		return user
	}
	var b strings.Builder
	b.Grow(len(user) + 8)
	for i := 0; i < len(user); i++ {
		switch user[i] {
		case ',':
			b.WriteString("=2C")
		case '=':
			b.WriteString("=3D")
		default:
			b.WriteByte(user[i])
		}
	}
	return b.String()
}
