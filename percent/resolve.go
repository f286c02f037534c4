package percent

import (
	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/urlcodec/internal/grammar"
)

// MaxDecodeIterations is the default cap of decode passes applied by [DecodeFully].
const MaxDecodeIterations = 10

// IsDoubleEncoded reports whether s looks like it was percent-encoded more than once,
// that is, it contains "%25" followed by two hex digits.
//
// This is a heuristic: a single-encoded literal "%25" followed by hex-looking text
// (e.g. "100%25AB" for "100%AB") is reported as double encoded as well.
func IsDoubleEncoded(s string) bool { return grammar.IndexDoubleEscape(s) >= 0 }

// DecodeOnce applies [Decode] exactly once.
func DecodeOnce(s string, sp SpacePolicy) (string, error) {
	return errtrace.Wrap2(Decode(s, sp))
}

// DecodeTwice applies [Decode] up to two times, stopping at the first failure.
// The space policy applies to the first pass only, a "+" decoded from "%2B" stays as is.
// On failure it returns the partial text and the error of the failed pass.
func DecodeTwice(s string, sp SpacePolicy) (string, error) {
	out, err := Decode(s, sp)
	if err != nil {
		return out, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Decode(out, SpacePercent20))
}

// DecodeFully applies [Decode] until the text stops changing, a pass fails,
// or [MaxDecodeIterations] passes were made. It returns the last successfully decoded text.
func DecodeFully(s string, sp SpacePolicy) string {
	return Resolve(s, sp, MaxDecodeIterations).Text
}

// DecodeFullyN is like [DecodeFully] with a custom pass cap.
// A non-positive maxIter means [MaxDecodeIterations].
func DecodeFullyN(s string, sp SpacePolicy, maxIter int) string {
	return Resolve(s, sp, maxIter).Text
}

// Stop tells why [Resolve] stopped decoding.
type Stop uint8

const (
	// StopNone is the state while decoding is still in progress.
	StopNone Stop = iota
	// StopFixedPoint means a pass returned its input unchanged.
	StopFixedPoint
	// StopFailed means a pass failed, see [Resolution.Err].
	StopFailed
	// StopLimit means the pass cap was reached.
	StopLimit
)

func (s Stop) String() string {
	switch s {
	case StopNone:
		return "decoding"
	case StopFixedPoint:
		return "fixed point"
	case StopFailed:
		return "failed"
	case StopLimit:
		return "limit reached"
	}
	return "unknown"
}

// Resolution is the outcome of [Resolve].
type Resolution struct {
	// Text is the last successfully decoded text.
	Text string
	// Passes is the number of decode passes that changed the text.
	Passes int
	// Stop is the reason decoding stopped.
	Stop Stop
	// Err is the error of the failed pass if Stop is StopFailed.
	Err error
}

type resolveTrigger uint8

const (
	triggerChanged resolveTrigger = iota
	triggerStable
	triggerFailed
	triggerExhausted
)

func newResolveFSM() *stateless.StateMachine {
	fsm := stateless.NewStateMachine(StopNone)
	fsm.Configure(StopNone).
		PermitReentry(triggerChanged).
		Permit(triggerStable, StopFixedPoint).
		Permit(triggerFailed, StopFailed).
		Permit(triggerExhausted, StopLimit)
	return fsm
}

// Resolve repeatedly decodes s, at most maxIter times (a non-positive maxIter means [MaxDecodeIterations]).
// It stops early when a pass fails or reaches a fixed point.
// The space policy applies to the first pass only, later passes use [SpacePercent20].
func Resolve(s string, sp SpacePolicy, maxIter int) Resolution {
	if maxIter <= 0 {
		maxIter = MaxDecodeIterations
	}

	res := Resolution{Text: s}
	fsm := newResolveFSM()
	for i := 0; fsm.MustState() == StopNone; i++ {
		if i == maxIter {
			fsm.Fire(triggerExhausted) //nolint:errcheck
			break
		}

		out, err := Decode(res.Text, sp)
		sp = SpacePercent20
		switch {
		case err != nil:
			res.Err = err
			fsm.Fire(triggerFailed) //nolint:errcheck
		case out == res.Text:
			fsm.Fire(triggerStable) //nolint:errcheck
		default:
			res.Text = out
			res.Passes++
			fsm.Fire(triggerChanged) //nolint:errcheck
		}
	}
	res.Stop, _ = fsm.MustState().(Stop)
	return res
}
