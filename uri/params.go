package uri

import (
	"slices"
	"strings"

	"github.com/ghettovoice/urlcodec/internal/util"
	"github.com/ghettovoice/urlcodec/percent"
)

// Param is a single query parameter.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Params is an ordered list of query parameters.
// Duplicate keys are allowed, keys are case-sensitive.
type Params []Param

// Get returns the first value associated with the given key.
func (ps Params) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns all values associated with the given key in order.
func (ps Params) GetAll(key string) []string {
	var vals []string
	for _, p := range ps {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Has checks whether a given key is in the list.
func (ps Params) Has(key string) bool {
	return slices.ContainsFunc(ps, func(p Param) bool { return p.Key == key })
}

// Add appends a key/value pair.
func (ps Params) Add(key, value string) Params {
	return append(ps, Param{Key: key, Value: value})
}

// Del deletes all pairs with the given key.
func (ps Params) Del(key string) Params {
	return slices.DeleteFunc(ps, func(p Param) bool { return p.Key == key })
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	return slices.Clone(ps)
}

// Encode renders the list as a query string without the leading "?".
// Keys and values are escaped with [percent.ModeComponent].
func (ps Params) Encode() string {
	if len(ps) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, p := range ps {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(percent.EncodeComponent(p.Key))
		sb.WriteByte('=')
		sb.WriteString(percent.EncodeComponent(p.Value))
	}
	return sb.String()
}

// ParseQuery parses a raw query string (with or without the leading "?") into an ordered list.
// Empty segments are skipped, a segment without "=" yields an empty value.
func ParseQuery(raw string) Params {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}

	var ps Params
	for seg := range strings.SplitSeq(raw, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		ps = append(ps, Param{Key: decodeQueryPart(k), Value: decodeQueryPart(v)})
	}
	return ps
}

func decodeQueryPart(s string) string {
	// on error the partial text keeps undecodable escapes verbatim
	out, _ := percent.Decode(s, percent.SpacePlus)
	return out
}
