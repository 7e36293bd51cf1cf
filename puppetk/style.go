package puppetk

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// Style is an ordered set of inline style declarations
type Style struct {
	decls []*css.Declaration
}

const important = "!important"

// ParseStyle parses the contents of a style attribute.
func ParseStyle(attr string) (*Style, error) {
	s := &Style{}
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return s, nil
	}
	// the parser only keeps a value once it sees the terminating ;
	if !strings.HasSuffix(attr, ";") {
		attr += ";"
	}
	decls, err := parser.ParseDeclarations(attr)
	if err != nil {
		return s, errors.Wrap(err, "parsing style")
	}
	s.decls = decls
	return s, nil
}

// SplitImportant removes a trailing !important from value
func SplitImportant(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(important) || !strings.EqualFold(value[len(value)-len(important):], important) {
		return value, false
	}
	return strings.TrimSpace(value[:len(value)-len(important)]), true
}

func (s *Style) find(property string) *css.Declaration {
	property = strings.ToLower(property)
	// later declarations win
	for i := len(s.decls) - 1; i >= 0; i-- {
		if strings.ToLower(s.decls[i].Property) == property {
			return s.decls[i]
		}
	}
	return nil
}

// Get the value of property or "", without its priority.
func (s *Style) Get(property string) string {
	if d := s.find(property); d != nil {
		return d.Value
	}
	return ""
}

// Declared value of property as written, e.g. "red !important".
func (s *Style) Declared(property string) string {
	d := s.find(property)
	if d == nil {
		return ""
	}
	if d.Important {
		return d.Value + " " + important
	}
	return d.Value
}

// Set property to value, an empty value removes the property. A trailing
// !important in value sets the declaration's priority.
func (s *Style) Set(property, value string) {
	property = strings.ToLower(property)
	value, isImportant := SplitImportant(value)
	kept := s.decls[:0]
	replaced := false
	for _, d := range s.decls {
		if strings.ToLower(d.Property) != property {
			kept = append(kept, d)
			continue
		}
		if value != "" && !replaced {
			d.Value = value
			d.Important = isImportant
			kept = append(kept, d)
			replaced = true
		}
	}
	s.decls = kept
	if value != "" && !replaced {
		s.decls = append(s.decls, &css.Declaration{Property: property, Value: value, Important: isImportant})
	}
}

// Len number of declarations
func (s *Style) Len() int {
	return len(s.decls)
}

// String renders the declarations back into a style attribute value
func (s *Style) String() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		p := d.Property + ": " + d.Value
		if d.Important {
			p += " !important"
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
