package percent

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/internal/grammar"
	"github.com/ghettovoice/urlcodec/internal/util"
)

// Mode selects which bytes [Encode] leaves unescaped.
//
// The set of modes is closed: the interface has unexported methods,
// so the only implementations are [ModeComponent], [ModeFullURL] and [ModeAll].
type Mode interface {
	String() string
	shouldEscape(c byte) bool
	plusForSpace(sp SpacePolicy) bool
}

type componentMode struct{}

func (componentMode) String() string { return "component" }

func (componentMode) shouldEscape(c byte) bool { return !grammar.IsCharComponentSafe(c) }

func (componentMode) plusForSpace(sp SpacePolicy) bool { return sp == SpacePlus }

type fullURLMode struct{}

func (fullURLMode) String() string { return "fullurl" }

func (fullURLMode) shouldEscape(c byte) bool {
	return !grammar.IsCharUnreserved(c) && !grammar.IsCharReserved(c)
}

func (fullURLMode) plusForSpace(sp SpacePolicy) bool { return sp == SpacePlus }

type allMode struct{}

func (allMode) String() string { return "all" }

func (allMode) shouldEscape(c byte) bool { return !grammar.IsAlphanumChar(c) }

func (allMode) plusForSpace(SpacePolicy) bool { return false }

var (
	// ModeComponent escapes everything except unreserved characters and the marks ! ' ( ) *.
	ModeComponent Mode = componentMode{}
	// ModeFullURL escapes everything except unreserved and reserved characters.
	ModeFullURL Mode = fullURLMode{}
	// ModeAll escapes every byte that is not an ASCII letter or digit.
	ModeAll Mode = allMode{}
)

// Modes returns all encoding modes.
func Modes() []Mode { return []Mode{ModeComponent, ModeFullURL, ModeAll} }

// ParseMode returns the mode with the given name (case-insensitive).
// Accepted names are "component", "fullurl" (or "full", "url") and "all".
func ParseMode(name string) (Mode, error) {
	switch util.LCase(util.TrimSP(name)) {
	case "component", "":
		return ModeComponent, nil
	case "fullurl", "full", "url", "full-url":
		return ModeFullURL, nil
	case "all":
		return ModeAll, nil
	}
	return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownMode, "%q", name))
}

// SpacePolicy governs how [Encode] renders a space and whether [Decode] treats "+" as a space.
type SpacePolicy uint8

const (
	// SpacePercent20 renders a space as "%20" and leaves "+" as is on decoding.
	SpacePercent20 SpacePolicy = iota
	// SpacePlus renders a space as "+" and decodes "+" to a space.
	SpacePlus
)

func (sp SpacePolicy) String() string {
	switch sp {
	case SpacePercent20:
		return "percent"
	case SpacePlus:
		return "plus"
	}
	return "unknown"
}

// ParseSpacePolicy returns the policy with the given name.
// Accepted names are "percent" (or "%20", "20") and "plus" (or "+").
func ParseSpacePolicy(name string) (SpacePolicy, error) {
	switch util.LCase(util.TrimSP(name)) {
	case "percent", "%20", "20", "":
		return SpacePercent20, nil
	case "plus", "+":
		return SpacePlus, nil
	}
	return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownSpacePolicy, "%q", name))
}

// MarshalText implements [encoding.TextMarshaler].
func (sp SpacePolicy) MarshalText() ([]byte, error) {
	return []byte(sp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sp *SpacePolicy) UnmarshalText(text []byte) error {
	v, err := ParseSpacePolicy(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*sp = v
	return nil
}
