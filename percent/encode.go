package percent

import (
	"github.com/ghettovoice/urlcodec/internal/grammar"
	"github.com/ghettovoice/urlcodec/internal/util"
)

// Encode percent-encodes the UTF-8 bytes of s that are not safe under mode.
// Escapes use uppercase hex digits. A nil mode is treated as [ModeComponent].
func Encode(s string, mode Mode, sp SpacePolicy) string {
	if mode == nil {
		mode = ModeComponent
	}

	plus := mode.plusForSpace(sp)
	n := 0
	for i := 0; i < len(s); i++ {
		if mode.shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' && plus:
			sb.WriteByte('+')
		case mode.shouldEscape(c):
			hi, lo := grammar.HexByte(c)
			sb.WriteByte('%')
			sb.WriteByte(hi)
			sb.WriteByte(lo)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// EncodeComponent is a shorthand for Encode(s, ModeComponent, SpacePercent20).
func EncodeComponent(s string) string { return Encode(s, ModeComponent, SpacePercent20) }
