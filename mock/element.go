package mock

import "gitlab.com/puppetk/puppetk"

// Element is an in memory element with an inline style
type Element struct {
	Name       string
	Styles     map[string]string
	Attributes map[string]string
}

// NewElement with no styles or attributes
func NewElement(name string) *Element {
	return &Element{
		Name:       name,
		Styles:     make(map[string]string),
		Attributes: make(map[string]string),
	}
}

func (e *Element) Style(property string) string {
	return e.Styles[property]
}

func (e *Element) SetStyle(property, value string) {
	if value == "" {
		delete(e.Styles, property)
		return
	}
	e.Styles[property] = value
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

func (e *Element) SetAttribute(name, value string) {
	e.Attributes[name] = value
}

func (e *Element) RemoveAttribute(name string) {
	delete(e.Attributes, name)
}

func (e *Element) String() string {
	return e.Name
}

// Window with a fixed URL
type Window struct {
	URL string
}

// CurrentURL returns URL
func (w *Window) CurrentURL() string {
	return w.URL
}

var _ puppetk.Element = (*Element)(nil)
var _ puppetk.Window = (*Window)(nil)
