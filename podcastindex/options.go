package podcastindex

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Options maps query parameter names to their values. Supported value
// types are bool, string, int, int64, float64 and []string; nil and
// false entries are omitted from the encoded output entirely.
type Options map[string]any

// encodeOptions renders opts as a query string fragment without a
// leading "?". Encoding rules:
//
//   - nil or false: the entry is omitted
//   - true: the bare key is emitted with no "=" (e.g. "fulltext")
//   - []string: emitted as key[]=v1,v2,... with each element escaped
//     individually, so commas inside an element become %2C and the
//     literal commas are unambiguous separators
//   - scalars: key=<escaped value>
//
// Keys are emitted in sorted order so output is deterministic. An empty
// or all-omitted map encodes to "".
func encodeOptions(opts Options) (string, error) {
	if len(opts) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := opts[k].(type) {
		case nil:
			// omitted
		case bool:
			if v {
				parts = append(parts, url.QueryEscape(k))
			}
		case string:
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
		case int:
			parts = append(parts, url.QueryEscape(k)+"="+strconv.Itoa(v))
		case int64:
			parts = append(parts, url.QueryEscape(k)+"="+strconv.FormatInt(v, 10))
		case float64:
			parts = append(parts, url.QueryEscape(k)+"="+strconv.FormatFloat(v, 'f', -1, 64))
		case []string:
			if len(v) == 0 {
				continue
			}
			escaped := make([]string, len(v))
			for i, e := range v {
				escaped[i] = url.QueryEscape(e)
			}
			parts = append(parts, url.QueryEscape(k)+"[]="+strings.Join(escaped, ","))
		default:
			return "", &EncodingError{Key: k, Value: opts[k]}
		}
	}

	return strings.Join(parts, "&"), nil
}

// NormalizeStrings maps an absent, single, or multi-valued input to an
// ordered string slice, for building list-valued options from caller
// input that may be one value or many. It accepts nil, string and
// []string; anything else yields nil.
func NormalizeStrings(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	}
	return nil
}
