package percent_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urlcodec/percent"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		sp      percent.SpacePolicy
		want    string
		wantErr *percent.DecodeError
	}{
		{"empty", "", percent.SpacePercent20, "", nil},
		{"no escapes", "hello", percent.SpacePercent20, "hello", nil},
		{"ascii", "a%20b%2Fc", percent.SpacePercent20, "a b/c", nil},
		{"lower hex", "%c3%a9", percent.SpacePercent20, "é", nil},
		{"utf-8", "%C3%A9", percent.SpacePercent20, "é", nil},
		{"emoji", "%F0%9F%98%80!", percent.SpacePercent20, "😀!", nil},
		{"mixed literal", "caf%C3%A9 ü", percent.SpacePercent20, "café ü", nil},
		{"plus kept", "a+b", percent.SpacePercent20, "a+b", nil},
		{"plus as space", "a+b%2Bc", percent.SpacePlus, "a b+c", nil},
		{"escaped percent", "100%25", percent.SpacePercent20, "100%", nil},
		{
			"not hex",
			"%zz",
			percent.SpacePercent20,
			"%zz",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 0, Sequence: "%zz", Partial: "%zz"},
		},
		{
			"truncated escape",
			"ab%4",
			percent.SpacePercent20,
			"ab%4",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 2, Sequence: "%4", Partial: "ab%4"},
		},
		{
			"trailing percent",
			"%41%",
			percent.SpacePercent20,
			"A%",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 3, Sequence: "%", Partial: "A%"},
		},
		{
			"partial keeps good triplets",
			"%41%20%zz",
			percent.SpacePercent20,
			"A %zz",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 6, Sequence: "%zz", Partial: "A %zz"},
		},
		{
			"lone lead byte",
			"x%C3",
			percent.SpacePercent20,
			"x%C3",
			&percent.DecodeError{Kind: percent.ErrInvalidUTF8, Offset: 1, Sequence: "%C3", Partial: "x%C3"},
		},
		{
			"lead byte then literal",
			"%C3A9",
			percent.SpacePercent20,
			"%C3A9",
			&percent.DecodeError{Kind: percent.ErrInvalidUTF8, Offset: 0, Sequence: "%C3", Partial: "%C3A9"},
		},
		{
			"multibyte triplets never decode alone",
			"%C3%A9%zz",
			percent.SpacePercent20,
			"%C3%A9%zz",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 6, Sequence: "%zz", Partial: "%C3%A9%zz"},
		},
		{
			"encoded surrogate",
			"%ED%A0%80",
			percent.SpacePercent20,
			"%ED%A0%80",
			&percent.DecodeError{Kind: percent.ErrInvalidUTF8, Offset: 0, Sequence: "%ED%A0%80", Partial: "%ED%A0%80"},
		},
		{
			"plus replaced before failure",
			"a+%G1",
			percent.SpacePlus,
			"a %G1",
			&percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 2, Sequence: "%G1", Partial: "a %G1"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := percent.Decode(c.in, c.sp)
			if got != c.want {
				t.Errorf("percent.Decode(%q, %v) = %q, want %q", c.in, c.sp, got, c.want)
			}

			if c.wantErr == nil {
				if err != nil {
					t.Errorf("percent.Decode(%q, %v) error = %v, want nil", c.in, c.sp, err)
				}
				return
			}

			var de *percent.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("percent.Decode(%q, %v) error = %v, want *percent.DecodeError", c.in, c.sp, err)
			}
			if diff := cmp.Diff(de, c.wantErr); diff != "" {
				t.Errorf("percent.Decode(%q, %v) error mismatch\ndiff (-got +want):\n%v", c.in, c.sp, diff)
			}
			if !errors.Is(err, c.wantErr.Kind) {
				t.Errorf("errors.Is(err, %v) = false, want true", c.wantErr.Kind)
			}
		})
	}
}

func TestDecodeError_Error(t *testing.T) {
	t.Parallel()

	err := &percent.DecodeError{Kind: percent.ErrMalformedEscape, Offset: 3, Sequence: "%zz"}
	if got, want := err.Error(), `malformed escape "%zz" at offset 3`; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
	if got, want := (*percent.DecodeError)(nil).Error(), "<nil>"; got != want {
		t.Errorf("nil err.Error() = %q, want %q", got, want)
	}
}

func FuzzDecode(f *testing.F) {
	for _, s := range []string{"", "%", "%zz", "%C3%A9", "a+b", "%F0%9F%98%80", "%25%32%35"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := percent.Decode(s, percent.SpacePlus)
		if err == nil {
			return
		}
		var de *percent.DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("percent.Decode(%q) error = %v, want *percent.DecodeError", s, err)
		}
		if got != de.Partial {
			t.Errorf("percent.Decode(%q) = %q, want partial %q", s, got, de.Partial)
		}
	})
}
