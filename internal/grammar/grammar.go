// Package grammar contains character classes and ABNF rules of RFC 3986
// used by the encoder, the decoder and the URL parser.
package grammar

import (
	"github.com/ghettovoice/abnf"
)

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Hexadecimal digits are matched case-insensitively, as RFC 3986 section 2.1 requires.
var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte("A"), []byte("Z")),
		abnf.Range("%x61-7A", []byte("a"), []byte("z")),
	)
	hexdig = abnf.Alt(
		"HEXDIG",
		abnf.Range("DIGIT", []byte("0"), []byte("9")),
		abnf.Range("%x41-46", []byte("A"), []byte("F")),
		abnf.Range("%x61-66", []byte("a"), []byte("f")),
	)

	// scheme-prefix = 1*ALPHA "://"
	schemePrefix = abnf.Concat(
		"scheme-prefix",
		abnf.Repeat1Inf("1*ALPHA", alpha),
		abnf.Literal("\"://\"", []byte("://")),
	)

	// double-escaped = "%25" HEXDIG HEXDIG
	doubleEscaped = abnf.Concat(
		"double-escaped",
		abnf.Literal("\"%25\"", []byte("%25")),
		hexdig,
		hexdig,
	)
)

func matchPrefix(op abnf.Operator, s []byte) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() > 0
}

// HasSchemePrefix reports whether s starts with one or more ASCII letters followed by "://".
func HasSchemePrefix[T Byteseq](s T) bool {
	return matchPrefix(schemePrefix, []byte(s))
}

// IndexDoubleEscape returns the index of the first "%25" followed by two hex digits in s,
// or -1 if there is no such sequence.
func IndexDoubleEscape[T Byteseq](s T) int {
	b := []byte(s)
	for i := 0; i+5 <= len(b); i++ {
		if b[i] != '%' {
			continue
		}
		if matchPrefix(doubleEscaped, b[i:]) {
			return i
		}
	}
	return -1
}
