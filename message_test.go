package scram

import "testing"

func TestParseAttributesBasic(t *testing.T) {
	attrs, err := parseAttributes("r=abc,s=salt,i=4096")
	if err != nil {
		t.Fatal(err)
	}
	if attrs["r"] != "abc" || attrs["s"] != "salt" || attrs["i"] != "4096" {
		t.Fatalf("unexpected attrs: %#v", attrs)
	}
}

func TestParseAttributesEmptyMessage(t *testing.T) {
	attrs, err := parseAttributes("")
	if err != nil {
		t.Fatal(err)
	}
	if len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %#v", attrs)
	}
}

func TestParseAttributesRejectsMissingEquals(t *testing.T) {
	if _, err := parseAttributes("r=abc,garbage"); err == nil {
		t.Fatal("expected error for attribute without '='")
	}
}

func TestParseAttributesRejectsEmptyKey(t *testing.T) {
	if _, err := parseAttributes("=value"); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestRequireAttributesMissing(t *testing.T) {
	attrs := map[string]string{"r": "abc"}
	if _, err := requireAttributes(attrs, "r", "s"); err == nil {
		t.Fatal("expected error for missing s param")
	}
}

func TestRequireAttributesPresent(t *testing.T) {
	attrs := map[string]string{"r": "abc", "s": "salt", "i": "4096"}
	values, err := requireAttributes(attrs, "r", "s", "i")
	if err != nil {
		t.Fatal(err)
	}
	if values[0] != "abc" || values[1] != "salt" || values[2] != "4096" {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestRejectUnknownAttributes(t *testing.T) {
	attrs := map[string]string{"r": "abc", "x": "unexpected"}
	if err := rejectUnknownAttributes(attrs, "r", "s", "i"); err == nil {
		t.Fatal("expected error for unknown attribute x")
	}
}

func TestEscapeUsername(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		"a,b":     "a=2Cb",
		"a=b":     "a=3Db",
		"a,b=c,d": "a=2Cb=3Dc=2Cd",
	}
	for in, want := range cases {
		if got := escapeUsername(in); got != want {
			t.Errorf("escapeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}
