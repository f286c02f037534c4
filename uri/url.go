package uri

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"io"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/internal/grammar"
	"github.com/ghettovoice/urlcodec/internal/ioutil"
	"github.com/ghettovoice/urlcodec/internal/util"
)

// Error represents a URL error.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrUnparsableURL is returned when the input is not a valid URL even after scheme normalization.
const ErrUnparsableURL Error = "unparsable URL"

func newUnparsableErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnparsableURL, args...) //errtrace:skip
}

const defaultScheme = "https"

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
}

// DefaultPort returns the default port of the scheme or an empty string if it is unknown.
func DefaultPort(scheme string) string { return defaultPorts[util.LCase(scheme)] }

// URL holds the structural components of a URL.
type URL struct {
	// Scheme is the lower-cased scheme without "://".
	Scheme string `json:"scheme"`
	// Host is the host name or IP address, IPv6 addresses are enclosed in brackets.
	Host string `json:"host"`
	// Port is the port number, empty means the scheme default.
	Port string `json:"port,omitempty"`
	// Path is the escaped path.
	Path string `json:"path"`
	// Params are the decoded query parameters in order of appearance.
	Params Params `json:"params,omitempty"`
	// Fragment is the escaped fragment without "#".
	Fragment string `json:"fragment,omitempty"`
}

// Parse parses the input s into URL components.
//
// Blank input returns a nil URL and a nil error.
// Input without a "scheme://" prefix is parsed as an https URL.
// Invalid input returns an error matching [ErrUnparsableURL].
func Parse(s string) (*URL, error) {
	s = util.TrimSP(s)
	if s == "" {
		return nil, nil
	}
	if !grammar.HasSchemePrefix(s) {
		s = defaultScheme + "://" + s
	}

	u, err := url.Parse(escapeStrayPercents(s))
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, errtrace.Wrap(newUnparsableErr(err))
	}

	host, err := normHost(u.Hostname())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if host == "" && u.Scheme != "file" {
		return nil, errtrace.Wrap(newUnparsableErr("missing host in %q", s))
	}

	port := u.Port()
	if port == DefaultPort(u.Scheme) {
		port = ""
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	return &URL{
		Scheme:   u.Scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Params:   ParseQuery(u.RawQuery),
		Fragment: u.EscapedFragment(),
	}, nil
}

// escapeStrayPercents escapes every "%" after the authority that does not start
// a "% HEXDIG HEXDIG" triplet, so "/100%" is kept as the path "/100%25".
func escapeStrayPercents(s string) string {
	start := strings.Index(s, "://") + len("://")
	i := strings.IndexAny(s[start:], "/?#")
	if i < 0 {
		return s
	}
	start += i

	n := 0
	for j := start; j < len(s); j++ {
		if s[j] == '%' && !grammar.IsEscape(s, j) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2*n)
	sb.WriteString(s[:start])
	for j := start; j < len(s); j++ {
		if s[j] == '%' && !grammar.IsEscape(s, j) {
			sb.WriteString("%25")
			continue
		}
		sb.WriteByte(s[j])
	}
	return sb.String()
}

func normHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}

	if strings.IndexByte(host, ':') >= 0 {
		// IPv6 literal, the zone separator must stay escaped
		return "[" + strings.Replace(util.LCase(host), "%", "%25", 1) + "]", nil
	}

	if !isASCII(host) {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", errtrace.Wrap(newUnparsableErr("invalid host %q: %v", host, err))
		}
		host = ascii
	}
	return util.LCase(host), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Rebuild renders the canonical URL string of u.
// It returns an empty string if u is nil.
func Rebuild(u *URL) string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the canonical URL string to w.
func (u *URL) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Print(u.Scheme, "://", u.Host)
	if u.Port != "" && u.Port != DefaultPort(u.Scheme) {
		cw.Print(":", u.Port)
	}
	cw.Print(orRoot(u.Path))
	if len(u.Params) > 0 {
		cw.Print("?", u.Params.Encode())
	}
	if u.Fragment != "" {
		cw.Print("#", u.Fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the canonical URL string, see [Rebuild].
func (u *URL) String() string { return Rebuild(u) }

// Format implements [fmt.Formatter] for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Params = u.Params.Clone()
	return &u2
}

// Equal compares this URL with another for equality.
// Scheme and host are compared case-insensitively, default and empty ports are equal,
// parameters must match in order.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.LCase(u.Scheme) == util.LCase(other.Scheme) &&
		util.LCase(u.Host) == util.LCase(other.Host) &&
		u.effectivePort() == other.effectivePort() &&
		orRoot(u.Path) == orRoot(other.Path) &&
		u.Fragment == other.Fragment &&
		slicesEqual(u.Params, other.Params)
}

func (u *URL) effectivePort() string {
	if u.Port == "" {
		return DefaultPort(u.Scheme)
	}
	return u.Port
}

func orRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func slicesEqual(a, b Params) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsValid checks whether the URL has a scheme and a host (or is a file URL).
func (u *URL) IsValid() bool {
	return u != nil &&
		util.TrimSP(u.Scheme) != "" &&
		(util.TrimSP(u.Host) != "" || util.LCase(u.Scheme) == "file")
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	if u1 == nil {
		*u = URL{}
		return nil
	}
	*u = *u1
	return nil
}

// HostKind classifies a URL host.
type HostKind uint8

const (
	HostNone HostKind = iota
	HostIPv4
	HostIPv6
	HostDomain
	HostOther
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "none"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostDomain:
		return "domain"
	case HostOther:
		return "other"
	}
	return "unknown"
}

// HostKind reports whether the host is an IP address, a syntactically valid domain name or something else.
func (u *URL) HostKind() HostKind {
	if u == nil || u.Host == "" {
		return HostNone
	}

	h := strings.TrimSuffix(strings.TrimPrefix(u.Host, "["), "]")
	if addr, err := netip.ParseAddr(strings.Replace(h, "%25", "%", 1)); err == nil {
		if addr.Is4() {
			return HostIPv4
		}
		return HostIPv6
	}
	if _, ok := dns.IsDomainName(h); ok {
		return HostDomain
	}
	return HostOther
}
