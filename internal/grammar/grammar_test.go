package grammar_test

import (
	"testing"

	"github.com/ghettovoice/urlcodec/internal/grammar"
)

func TestHasSchemePrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"example.com", false},
		{"https://example.com", true},
		{"FTP://files", true},
		{"ws://", true},
		{"://example.com", false},
		{"svn+ssh://host", false},
		{"h2://host", false},
		{"mailto:john@example.com", false},
		{"https:/example.com", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.HasSchemePrefix(c.in); got != c.want {
				t.Errorf("grammar.HasSchemePrefix(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIndexDoubleEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"a%20b", -1},
		{"a%2520b", 1},
		{"%25", -1},
		{"%25z0", -1},
		{"x%25%20%25aF", 7},
		{"%254", -1},
		{"%25E2%2582%25AC", 0},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IndexDoubleEscape(c.in); got != c.want {
				t.Errorf("grammar.IndexDoubleEscape(%q) = %d, want %d", c.in, got, c.want)
			}
			if got := grammar.IndexDoubleEscape([]byte(c.in)); got != c.want {
				t.Errorf("grammar.IndexDoubleEscape([]byte(%q)) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestIsEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		i    int
		want bool
	}{
		{"%20", 0, true},
		{"%2", 0, false},
		{"a%aF", 1, true},
		{"%zz", 0, false},
		{"%20", 1, false},
	}
	for _, c := range cases {
		if got := grammar.IsEscape(c.in, c.i); got != c.want {
			t.Errorf("grammar.IsEscape(%q, %d) = %v, want %v", c.in, c.i, got, c.want)
		}
	}
}

func TestCharClasses(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		b := byte(c)
		unreserved := grammar.IsCharUnreserved(b)
		if unreserved && grammar.IsCharReserved(b) {
			t.Errorf("%q is both reserved and unreserved", b)
		}
		if unreserved && !grammar.IsCharComponentSafe(b) {
			t.Errorf("grammar.IsCharComponentSafe(%q) = false for unreserved char", b)
		}
		if b >= 0x80 && (unreserved || grammar.IsCharReserved(b) || grammar.IsCharComponentSafe(b)) {
			t.Errorf("non-ASCII byte %#x classified as safe", b)
		}
	}

	for _, b := range []byte("-._~") {
		if !grammar.IsCharUnreserved(b) {
			t.Errorf("grammar.IsCharUnreserved(%q) = false, want true", b)
		}
	}
	for _, b := range []byte(":/?#[]@!$&'()*+,;=") {
		if !grammar.IsCharReserved(b) {
			t.Errorf("grammar.IsCharReserved(%q) = false, want true", b)
		}
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		hi, lo := grammar.HexByte(byte(c))
		if !grammar.IsHex(hi) || !grammar.IsHex(lo) {
			t.Fatalf("grammar.HexByte(%#x) = %q%q, not hex", c, hi, lo)
		}
		if got := grammar.Unhex(hi)<<4 | grammar.Unhex(lo); got != byte(c) {
			t.Errorf("unhex(HexByte(%#x)) = %#x", c, got)
		}
	}
	if grammar.IsHex('g') {
		t.Errorf("grammar.IsHex('g') = true, want false")
	}
}
