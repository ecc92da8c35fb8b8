package ledgerly

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// ExpandURI expands a path template such as "customers/{id}" against a
// parameter map. Matched placeholders are substituted and their keys
// consumed; substituted values are percent-encoded, so an ID containing a
// reserved character ("/", "?") cannot change the shape of the resulting
// path. An unmatched placeholder is left literally in place (a caller
// bug, not a runtime error). Any remaining parameters are appended to the
// query string, percent-encoded in key order. Expansion is idempotent: the
// same template and params always yield the same URI string.
//
// When uri is already a built URI (absolute, no placeholders) and params is
// non-empty, the params replace its query string.
func ExpandURI(uri string, params map[string]interface{}) string {
	remaining := make(map[string]interface{}, len(params))
	for key, value := range params {
		remaining[key] = value
	}

	hadPlaceholders := false

	expanded := placeholderPattern.ReplaceAllStringFunc(uri, func(token string) string {
		hadPlaceholders = true
		name := token[1 : len(token)-1]

		value, ok := remaining[name]
		if !ok {
			return token
		}

		delete(remaining, name)

		return url.PathEscape(stringify(value))
	})

	if len(remaining) == 0 {
		return expanded
	}

	query := make(url.Values, len(remaining))
	for key, value := range remaining {
		query.Set(key, stringify(value))
	}

	if !hadPlaceholders && strings.Contains(expanded, "://") {
		// Already-built URI: the params become its query string, replacing
		// any previous one.
		base, _, _ := strings.Cut(expanded, "?")

		return base + "?" + query.Encode()
	}

	separator := "?"
	if strings.Contains(expanded, "?") {
		separator = "&"
	}

	return expanded + separator + query.Encode()
}

func stringify(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
