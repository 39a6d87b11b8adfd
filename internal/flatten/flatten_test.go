package flatten

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no breaks", "test test", "test test"},
		{"lf", "a\nb", "a b"},
		{"crlf", "a\r\nb", "a b"},
		{"cr", "a\rb", "a b"},
		{"leading and crlf", "\ntest\r\ntest", "test test"},
		{"trailing lf trimmed", "test\n", "test"},
		{"adjacent breaks not squashed", "a\n\nb", "a  b"},
		{"lf cr is two breaks", "a\n\rb", "a  b"},
		{"mixed", "a\r\nb\nc\rd", "a b c d"},
		{"outer spaces trimmed", "  a\nb  ", "a b"},
		{"only breaks", "\r\n\n\r", ""},
		{"tabs inside kept", "a\t\nb", "a\t b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"\ntest\r\ntest",
		"a\n\nb\r\r\nc",
		" x \r y \n",
		"one\rtwo\r\nthree\nfour",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNoTrimKeepsOuterWhitespace(t *testing.T) {
	n := Normalizer{}
	if got, want := n.Apply("\ntest\r\ntest\n"), " test test "; got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestSpacesMatchBreakCount(t *testing.T) {
	inputs := []string{
		"a\r\nb",
		"a\nb\nc",
		"\r\r\r",
		"x\r\n\r\ny\rz\n",
		"no breaks here",
	}
	n := Normalizer{}
	for _, in := range inputs {
		out := n.Apply(in)
		if strings.ContainsAny(out, "\r\n") {
			t.Errorf("Apply(%q) = %q still has breaks", in, out)
		}
		added := strings.Count(out, " ") - strings.Count(in, " ")
		if breaks := CountBreaks(in); added != breaks {
			t.Errorf("Apply(%q): %d spaces added, %d breaks", in, added, breaks)
		}
	}
}

func TestCountBreaks(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"\r\n", 1},
		{"\n\r", 2},
		{"\r\n\r\n", 2},
		{"a\rb\nc\r\nd", 3},
	}
	for _, tt := range tests {
		if got := CountBreaks(tt.in); got != tt.want {
			t.Errorf("CountBreaks(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
