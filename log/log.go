// Package log provides logging utilities built on [log/slog].
package log

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/internal/util"
	"github.com/ghettovoice/urlcodec/percent"
	"github.com/ghettovoice/urlcodec/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *url.URL) slog.Value {
		return slog.StringValue(u.Redacted())
	}),
	slogformatter.FormatByType(func(u *uri.URL) slog.Value {
		return slog.StringValue(u.String())
	}),
	slogformatter.FormatByType(func(e *percent.DecodeError) slog.Value {
		return slog.GroupValue(
			slog.String("kind", string(e.Kind)),
			slog.Int("offset", e.Offset),
			slog.String("sequence", e.Sequence),
		)
	}),
)

// NewConsole returns a logger writing human-friendly colored lines to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  lvl.Level() <= slog.LevelDebug,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger with pretty-printed attributes.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewJSON returns a logger writing JSON records to w.
func NewJSON(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}),
	))
}

// ErrUnknownFormat is returned by [New] for an unknown log format.
const ErrUnknownFormat errorutil.Error = "unknown log format"

// New returns a logger with the given format ("console", "dev", "json" or "none") and level name.
func New(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}

	switch util.LCase(format) {
	case "console", "":
		return NewConsole(w, lvl), nil
	case "dev":
		return NewDev(w, lvl), nil
	case "json":
		return NewJSON(w, lvl), nil
	case "none", "noop":
		return Noop, nil
	}
	return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownFormat, "%q", format))
}

var def atomic.Pointer[slog.Logger]

func init() {
	def.Store(NewConsole(os.Stderr, slog.LevelInfo))
}

// Default returns the default logger.
// Unless replaced with [SetDefault], it is a console logger writing to stderr at info level.
func Default() *slog.Logger { return def.Load() }

// SetDefault replaces the default logger. Nil resets it to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	def.Store(l)
}

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue struct {
	v      string
	maxLen int
}

func (v stringValue) LogValue() slog.Value {
	if v.maxLen > 0 {
		return slog.StringValue(util.Ellipsis(v.v, v.maxLen))
	}
	return slog.StringValue(v.v)
}

// StringValue returns a value logger for user input, truncated to maxLen runes if maxLen > 0.
func StringValue(v string, maxLen int) slog.LogValuer { return stringValue{v, maxLen} }
