package errorutil_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"error", []any{cause}, "sentinel: cause"},
		{"already wrapped", []any{errorutil.NewWrapperError(errSentinel, "x")}, "sentinel: x"},
		{"message", []any{"bad input"}, "sentinel: bad input"},
		{"format", []any{"bad byte %q at %d", 'x', 3}, "sentinel: bad byte 'x' at 3"},
		{"unknown arg", []any{42}, "sentinel"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("NewWrapperError(...).Error() = %q, want %q", got, c.wantMsg)
			}
			if !errors.Is(err, errSentinel) {
				t.Errorf("errors.Is(err, errSentinel) = false, want true")
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second\nline")

	if err := errorutil.JoinPrefix("failures", nil, nil); err != nil {
		t.Errorf("JoinPrefix(nil, nil) = %v, want nil", err)
	}

	one := errorutil.JoinPrefix("failures:", nil, err1)
	if got, want := one.Error(), "failures: first"; got != want {
		t.Errorf("JoinPrefix(err1).Error() = %q, want %q", got, want)
	}
	if diff := cmp.Diff(errors.Unwrap(one), err1, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("errors.Unwrap(err) diff (-got +want):\n%v", diff)
	}

	many := errorutil.JoinPrefix("failures", err1, err2)
	if got, want := many.Error(), "failures\n  - first\n  - second\n    line"; got != want {
		t.Errorf("JoinPrefix(err1, err2).Error() = %q, want %q", got, want)
	}
	if !errors.Is(many, err1) || !errors.Is(many, err2) {
		t.Errorf("errors.Is(many, ...) = false, want true for both errors")
	}
}
