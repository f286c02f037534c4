package percent

import (
	"fmt"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
)

// Error represents a percent-encoding error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrMalformedEscape means a "%" not followed by two hex digits, including a truncated trailing escape.
	ErrMalformedEscape Error = "malformed escape"
	// ErrInvalidUTF8 means well-formed escapes whose bytes are not a valid UTF-8 sequence.
	ErrInvalidUTF8 Error = "invalid UTF-8 sequence"
	// ErrUnknownMode is returned by [ParseMode] for an unknown mode name.
	ErrUnknownMode Error = "unknown encoding mode"
	// ErrUnknownSpacePolicy is returned by [ParseSpacePolicy] for an unknown policy name.
	ErrUnknownSpacePolicy Error = "unknown space policy"
)

// DecodeError describes why [Decode] failed.
// It matches [ErrMalformedEscape] or [ErrInvalidUTF8] with [errors.Is].
type DecodeError struct {
	// Kind is either ErrMalformedEscape or ErrInvalidUTF8.
	Kind Error
	// Offset is the byte offset of the offending sequence in the input.
	Offset int
	// Sequence is the offending input fragment.
	Sequence string
	// Partial is the best-effort decoding of the whole input.
	Partial string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Sequence, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}
