package percent_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urlcodec/percent"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    percent.Mode
		wantErr error
	}{
		{"component", percent.ModeComponent, nil},
		{"", percent.ModeComponent, nil},
		{" FullURL ", percent.ModeFullURL, nil},
		{"full", percent.ModeFullURL, nil},
		{"ALL", percent.ModeAll, nil},
		{"everything", nil, percent.ErrUnknownMode},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := percent.ParseMode(c.in)
			if got != c.want {
				t.Errorf("percent.ParseMode(%q) = %v, want %v", c.in, got, c.want)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("percent.ParseMode(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
		})
	}

	for _, m := range percent.Modes() {
		got, err := percent.ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("percent.ParseMode(%q) = %v, %v, want %v", m.String(), got, err, m)
		}
	}
}

func TestSpacePolicy_Text(t *testing.T) {
	t.Parallel()

	for _, sp := range []percent.SpacePolicy{percent.SpacePercent20, percent.SpacePlus} {
		b, err := sp.MarshalText()
		if err != nil {
			t.Fatalf("sp.MarshalText() error = %v, want nil", err)
		}

		var got percent.SpacePolicy
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("sp.UnmarshalText(%q) error = %v, want nil", b, err)
		}
		if got != sp {
			t.Errorf("sp.UnmarshalText(%q) = %v, want %v", b, got, sp)
		}
	}

	for in, want := range map[string]percent.SpacePolicy{"+": percent.SpacePlus, "%20": percent.SpacePercent20} {
		if got, err := percent.ParseSpacePolicy(in); err != nil || got != want {
			t.Errorf("percent.ParseSpacePolicy(%q) = %v, %v, want %v", in, got, err, want)
		}
	}

	var sp percent.SpacePolicy
	if err := sp.UnmarshalText([]byte("tab")); !errors.Is(err, percent.ErrUnknownSpacePolicy) {
		t.Errorf("sp.UnmarshalText(\"tab\") error = %v, want %v", err, percent.ErrUnknownSpacePolicy)
	}
	if got := percent.SpacePolicy(7).String(); got != "unknown" {
		t.Errorf("SpacePolicy(7).String() = %q, want %q", got, "unknown")
	}
}
