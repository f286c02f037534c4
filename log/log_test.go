package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/log"
	"github.com/ghettovoice/urlcodec/percent"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format, level string
		wantErr       error
	}{
		{"console", "info", nil},
		{"", "debug", nil},
		{"DEV", "warn", nil},
		{"json", "error", nil},
		{"none", "info", nil},
		{"xml", "info", log.ErrUnknownFormat},
		{"json", "loud", errorutil.ErrInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.format+"/"+c.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l, err := log.New(&buf, c.format, c.level)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("log.New(%q, %q) error = %v, want %v", c.format, c.level, err, c.wantErr)
			}
			if c.wantErr == nil && l == nil {
				t.Errorf("log.New(%q, %q) = nil, want logger", c.format, c.level)
			}
		})
	}
}

func TestNewJSON_DecodeError(t *testing.T) {
	t.Parallel()

	_, err := percent.Decode("a%zz", percent.SpacePercent20)
	var decErr *percent.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("percent.Decode() error = %v, want *percent.DecodeError", err)
	}

	var buf bytes.Buffer
	log.NewJSON(&buf, slog.LevelInfo).Info("decode failed", slog.Any("cause", decErr))

	out := buf.String()
	for _, want := range []string{`"kind":"malformed escape"`, `"offset":1`, `"sequence":"%zz"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want to contain %q", out, want)
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Errorf("log.Noop.Enabled() = true, want false")
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"https://example.com", 0, "https://example.com"},
		{"short", 10, "short"},
	}
	for _, c := range cases {
		if got := log.StringValue(c.in, c.maxLen).LogValue().String(); got != c.want {
			t.Errorf("log.StringValue(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}

	long := strings.Repeat("x", 50)
	if got, want := log.StringValue(long, 10).LogValue().String(), strings.Repeat("x", 10)+"..."; got != want {
		t.Errorf("log.StringValue(%q, 10) = %q, want %q", long, got, want)
	}
}
