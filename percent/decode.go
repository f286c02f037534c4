package percent

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlcodec/internal/grammar"
	"github.com/ghettovoice/urlcodec/internal/util"
)

// Decode reverses percent-encoding of s.
//
// With [SpacePlus] every "+" is turned into a space before the escapes are decoded.
// Every "%" must start a "% HEXDIG HEXDIG" triplet and each run of consecutive triplets
// must form valid UTF-8, otherwise Decode returns a [*DecodeError].
// In that case the returned string is the best-effort decoding described in [DecodeError.Partial]:
// every triplet is decoded in isolation and kept verbatim if it does not decode to a character alone.
func Decode(s string, sp SpacePolicy) (string, error) {
	if sp == SpacePlus {
		s = strings.ReplaceAll(s, "+", " ")
	}
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			buf = append(buf, s[i])
			i++
			continue
		}
		if !grammar.IsEscape(s, i) {
			return errtrace.Wrap2(fail(s, ErrMalformedEscape, i, s[i:min(i+3, len(s))]))
		}

		start, run := i, len(buf)
		for grammar.IsEscape(s, i) {
			buf = append(buf, grammar.Unhex(s[i+1])<<4|grammar.Unhex(s[i+2]))
			i += 3
		}
		if !utf8.Valid(buf[run:]) {
			return errtrace.Wrap2(fail(s, ErrInvalidUTF8, start, s[start:i]))
		}
	}
	return string(buf), nil
}

func fail(s string, kind Error, off int, seq string) (string, error) {
	partial := decodeTriplets(s)
	return partial, &DecodeError{
		Kind:     kind,
		Offset:   off,
		Sequence: seq,
		Partial:  partial,
	}
}

// decodeTriplets decodes each "% HEXDIG HEXDIG" triplet of s on its own.
// Only triplets of ASCII bytes form a character alone, all others stay as is.
func decodeTriplets(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if grammar.IsEscape(s, i) {
			if c := grammar.Unhex(s[i+1])<<4 | grammar.Unhex(s[i+2]); c < utf8.RuneSelf {
				sb.WriteByte(c)
				i += 3
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
