package browser

import (
	"strings"
)

// Attributes as returned by DOM.getAttributes, a flat name, value list

// HasAttribute checks if attr is in attributes
func HasAttribute(attributes []string, attr string) bool {
	return attributeIndex(attributes, attr) != -1
}

// GetAttribute value of attr or "" if it does not exist
func GetAttribute(attributes []string, attr string) string {
	idx := attributeIndex(attributes, attr)
	if idx == -1 {
		return ""
	}
	return attributes[idx+1]
}

func attributeIndex(attributes []string, attr string) int {
	attr = strings.ToLower(attr)
	for i := 0; i+1 < len(attributes); i += 2 {
		if strings.ToLower(attributes[i]) == attr {
			return i
		}
	}
	return -1
}
