package puppetk

import (
	"fmt"
)

// Locator identifies zero or more elements. The set of implementations is
// closed: Literal, Elements, *Func and XPath.
type Locator interface {
	fmt.Stringer
	locator()
}

// Literal is an already resolved element.
type Literal struct {
	Element Element
}

// Elements is an already resolved list of elements.
type Elements []Element

// Func locates elements by calling Fn. Use NewFunc, a *Func is compared by
// reference.
type Func struct {
	Name string
	Fn   func() []Element
}

// XPath expression evaluated against the window
type XPath string

// Elem wraps an element as a locator
func Elem(e Element) Literal {
	return Literal{Element: e}
}

// NewFunc for locating elements with fn, name is used in logs and errors.
func NewFunc(name string, fn func() []Element) *Func {
	return &Func{Name: name, Fn: fn}
}

func (Literal) locator()  {}
func (Elements) locator() {}
func (*Func) locator()    {}
func (XPath) locator()    {}

func (l Literal) String() string {
	if s, ok := l.Element.(fmt.Stringer); ok {
		return s.String()
	}
	return "element"
}

func (e Elements) String() string {
	return fmt.Sprintf("elements[%d]", len(e))
}

func (f *Func) String() string {
	if f == nil || f.Name == "" {
		return "func()"
	}
	return f.Name + "()"
}

func (x XPath) String() string {
	return string(x)
}

// Result of a resolution. All is set when it was produced by a GetAll call.
type Result struct {
	Elements []Element
	All      bool
}

// Element returns the single resolved element or nil.
func (r Result) Element() Element {
	if len(r.Elements) == 0 {
		return nil
	}
	return r.Elements[0]
}
