// Package batch applies percent-encoding or decoding to many lines at once.
//
// Every line is processed on its own: a line that fails to decode is replaced
// with an error marker and counted as failed, the rest of the batch is not affected.
// Only the first [MaxLines] lines are processed, the rest is ignored.
package batch

//go:generate go tool mockgen -typed -destination ../internal/testutil/codecmock/codec.go -package codecmock . Codec

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/internal/util"
	"github.com/ghettovoice/urlcodec/log"
	"github.com/ghettovoice/urlcodec/percent"
)

// MaxLines is the number of lines processed by [Run]. Lines beyond it are ignored.
const MaxLines = 100

// ErrorMarker prefixes the output of a failed line.
const ErrorMarker = "[ERROR] "

// Error represents a batch error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrLineFailed is matched by every [*LineError].
	ErrLineFailed Error = "line failed"
	// ErrUnknownDirection is returned by [ParseDirection] for an unknown direction name.
	ErrUnknownDirection Error = "unknown direction"
)

// Direction selects whether lines are encoded or decoded.
type Direction uint8

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	}
	return "unknown"
}

// ParseDirection returns the direction with the given name ("encode" or "decode").
func ParseDirection(name string) (Direction, error) {
	switch util.LCase(util.TrimSP(name)) {
	case "encode", "enc", "":
		return Encode, nil
	case "decode", "dec":
		return Decode, nil
	}
	return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownDirection, "%q", name))
}

// Codec transforms a single line.
type Codec interface {
	Transform(line string) (string, error)
}

// CodecFunc is an adapter to use an ordinary function as a [Codec].
type CodecFunc func(line string) (string, error)

// Transform calls fn(line).
func (fn CodecFunc) Transform(line string) (string, error) { return errtrace.Wrap2(fn(line)) }

// NewCodec returns a [Codec] that encodes or decodes lines with the [percent] package.
func NewCodec(dir Direction, mode percent.Mode, sp percent.SpacePolicy) Codec {
	if dir == Decode {
		return CodecFunc(func(line string) (string, error) {
			return errtrace.Wrap2(percent.Decode(line, sp))
		})
	}
	return CodecFunc(func(line string) (string, error) {
		return percent.Encode(line, mode, sp), nil
	})
}

// Options are the options for [Run].
type Options struct {
	// Direction selects encoding or decoding, defaults to [Encode].
	Direction Direction
	// Mode is the encoding mode, if nil [percent.ModeComponent] is used.
	Mode percent.Mode
	// Space is the space policy.
	Space percent.SpacePolicy
	// Codec overrides the codec built from Direction, Mode and Space.
	Codec Codec
	// Log is the logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *Options) codec() Codec {
	if o == nil {
		return NewCodec(Encode, percent.ModeComponent, percent.SpacePercent20)
	}
	if o.Codec != nil {
		return o.Codec
	}
	return NewCodec(o.Direction, o.Mode, o.Space)
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Line is the outcome of a single input line.
type Line struct {
	// Num is the 1-based line number.
	Num int
	// Input is the original line.
	Input string
	// Output is the transformed line, or [ErrorMarker] followed by the error message.
	Output string
	// Err is the line error, if any.
	Err error
	// Blank is true for lines consisting of white space only.
	// Blank lines have empty output and are not counted.
	Blank bool
}

// Result is the outcome of [Run].
type Result struct {
	Lines []Line
	// Total is the number of processed non-blank lines.
	Total int
	// OK is the number of lines processed successfully.
	OK int
	// Failed is the number of failed lines.
	Failed int
}

// Err returns all line errors joined, or nil if no line failed.
func (r *Result) Err() error {
	if r == nil || r.Failed == 0 {
		return nil
	}

	errs := make([]error, 0, r.Failed)
	for _, ln := range r.Lines {
		if ln.Err != nil {
			errs = append(errs, ln.Err)
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix(fmt.Sprintf("%d of %d lines failed", r.Failed, r.Total), errs...))
}

// Outputs returns the output of every line in order.
func (r *Result) Outputs() []string {
	if r == nil {
		return nil
	}
	outs := make([]string, len(r.Lines))
	for i, ln := range r.Lines {
		outs[i] = ln.Output
	}
	return outs
}

// LineError is the error of a failed line.
// It matches [ErrLineFailed] and the codec error with [errors.Is].
type LineError struct {
	Num int
	Err error
}

func (e *LineError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("line %d: %v", e.Num, e.Err)
}

func (e *LineError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrLineFailed, e.Err}
}

// Run transforms the first [MaxLines] lines independently.
// A nil opts encodes lines with [percent.ModeComponent] and [percent.SpacePercent20].
func Run(lines []string, opts *Options) *Result {
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}

	codec, logger := opts.codec(), opts.log()
	res := &Result{Lines: make([]Line, len(lines))}
	for i, in := range lines {
		ln := Line{Num: i + 1, Input: in}
		if util.IsBlank(in) {
			ln.Blank = true
			res.Lines[i] = ln
			continue
		}

		res.Total++
		out, err := codec.Transform(in)
		if err != nil {
			ln.Err = &LineError{Num: ln.Num, Err: err}
			ln.Output = ErrorMarker + err.Error()
			res.Failed++

			logger.LogAttrs(context.Background(), slog.LevelDebug, "batch line failed",
				slog.Int("line", ln.Num),
				slog.Any("input", log.StringValue(in, 80)),
				slog.Any("error", err),
			)
		} else {
			ln.Output = out
			res.OK++
		}
		res.Lines[i] = ln
	}
	return res
}

// SplitLines splits text into lines on "\n", dropping a trailing "\r" from each line.
// A final line break does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
