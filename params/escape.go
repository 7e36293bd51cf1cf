package params

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// shouldEscape reports if c would break the structure of a query string.
// Characters such as / ? : and , are legal inside a query value and are kept.
func shouldEscape(c byte) bool {
	switch c {
	case '&', '=', '#', '+', ' ', '%':
		return true
	}
	return c < 0x20 || c >= 0x7f
}

// escape value for use in a query string. Existing %XX escapes are kept so an
// already escaped value is not escaped twice.
func escape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '%' && i+2 < len(value) && isHex(value[i+1]) && isHex(value[i+2]) {
			b.WriteString(value[i : i+3])
			i += 2
			continue
		}
		if !shouldEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}
