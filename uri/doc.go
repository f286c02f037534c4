// Package uri splits URLs into their components and rebuilds canonical URLs from them.
//
// # Parsing
//
// [Parse] accepts well-formed as well as loosely-formed input. Surrounding white space is trimmed,
// and input without a "scheme://" prefix is parsed as if it started with "https://",
// so bare host names and paths are accepted:
//
//	u, err := uri.Parse("api.example.com:8080/v1/users?name=John%20Doe&role=admin#results")
//	// u.Scheme == "https", u.Host == "api.example.com", u.Port == "8080",
//	// u.Path == "/v1/users", u.Fragment == "results",
//	// u.Params == uri.Params{{"name", "John Doe"}, {"role", "admin"}}
//
// Query parameters are kept in order as a list of key/value pairs, duplicate keys included.
// Keys and values are decoded with "+" treated as a space; undecodable escapes are kept verbatim.
// The scheme and host are lower-cased, internationalized host names are converted to their
// ASCII (punycode) form, and a port equal to the scheme default (80 for http, 443 for https,
// 21 for ftp) is dropped. Path and fragment stay in their escaped form.
// A "%" in the path, query or fragment that does not start a valid escape is taken
// literally and escaped as "%25", so "example.com/100%" has the path "/100%25".
//
// Blank input is not an error: Parse returns a nil [*URL] and a nil error,
// meaning there is nothing to show. Input that cannot be parsed returns an error
// matching [ErrUnparsableURL].
//
// # Rebuilding
//
// [Rebuild] (or [URL.String]) renders
//
//	scheme://host[:port]path[?key=value&...][#fragment]
//
// The port is omitted when it is empty or the scheme default, an empty path becomes "/",
// and every parameter key and value is re-encoded in component mode with spaces as "%20",
// regardless of how the original URL was encoded.
// For any URL returned by Parse, parsing its rebuilt form yields an equal URL.
package uri
