package dom

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.com/puppetk/puppetk"
	"golang.org/x/net/html"
)

// Element is a node of a parsed Document
type Element struct {
	doc  *Document
	node *html.Node
}

// TagName lower cased
func (e *Element) TagName() string {
	return strings.ToLower(e.node.Data)
}

// Attribute value of name
func (e *Element) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute name to value, adding it if it doesn't exist
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute name if it exists
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

func (e *Element) style() *puppetk.Style {
	attr, _ := e.Attribute("style")
	s, err := puppetk.ParseStyle(attr)
	if err != nil {
		log.Warn().Err(err).Str("element", e.String()).Msg("invalid inline style")
	}
	return s
}

// Style returns the inline style property as declared
func (e *Element) Style(property string) string {
	return e.style().Declared(property)
}

// SetStyle sets an inline style property, an empty value removes it.
func (e *Element) SetStyle(property, value string) {
	s := e.style()
	s.Set(property, value)
	if s.Len() == 0 {
		e.RemoveAttribute("style")
		return
	}
	e.SetAttribute("style", s.String())
}

// OuterHTML of the element
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

// String is a short description, e.g. <div id="flash" class="a b">
func (e *Element) String() string {
	if e.node.Type != html.ElementNode {
		return "#" + e.node.Data
	}
	var b strings.Builder
	b.WriteString("<" + e.TagName())
	for _, key := range []string{"id", "name", "class"} {
		if v, ok := e.Attribute(key); ok {
			b.WriteString(" " + key + "=\"" + v + "\"")
		}
	}
	b.WriteString(">")
	return b.String()
}

var _ puppetk.Element = (*Element)(nil)
var _ puppetk.Window = (*Document)(nil)
