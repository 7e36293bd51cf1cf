package params

import (
	"net/url"
	"strings"
)

// splitURL into everything before the query, the query and the fragment
// (including its leading #).
func splitURL(rawURL string) (base, query string, hasQuery bool, fragment string) {
	if idx := strings.IndexByte(rawURL, '#'); idx >= 0 {
		rawURL, fragment = rawURL[:idx], rawURL[idx:]
	}
	if idx := strings.IndexByte(rawURL, '?'); idx >= 0 {
		return rawURL[:idx], rawURL[idx+1:], true, fragment
	}
	return rawURL, "", false, fragment
}

func splitPair(token string) (string, string) {
	if idx := strings.IndexByte(token, '='); idx >= 0 {
		return token[:idx], token[idx+1:]
	}
	return token, ""
}

func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return s
}

// SetURLParam sets the query parameter name to value in rawURL. An existing
// parameter of the same name is replaced in place, otherwise the parameter is
// appended. Characters that would break the query string are escaped, values
// that are already escaped are left as is.
func SetURLParam(name, value, rawURL string) string {
	base, query, hasQuery, fragment := splitURL(rawURL)
	pair := escape(name) + "=" + escape(value)

	if !hasQuery || query == "" {
		return base + "?" + pair + fragment
	}

	tokens := strings.Split(query, "&")
	replaced := false
	for i, token := range tokens {
		key, _ := splitPair(token)
		if unescape(key) == name {
			tokens[i] = pair
			replaced = true
			break
		}
	}
	if !replaced {
		tokens = append(tokens, pair)
	}
	return base + "?" + strings.Join(tokens, "&") + fragment
}

// ParseQuery returns every parameter in the query string of rawURL. Valueless
// parameters map to "", when a name is repeated the last value wins.
func ParseQuery(rawURL string) map[string]string {
	values := make(map[string]string)
	_, query, _, _ := splitURL(rawURL)
	for _, token := range strings.Split(query, "&") {
		if token == "" {
			continue
		}
		key, value := splitPair(token)
		values[unescape(key)] = unescape(value)
	}
	return values
}
