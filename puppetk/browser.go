package puppetk

// Element is a handle to a DOM node. Two handles refer to the same node only
// if they are the same value, implementations must hand out one handle per node.
type Element interface {
	// Style returns an inline style property as declared, including a
	// trailing !important, or "" if unset.
	Style(property string) string
	// SetStyle sets an inline style property, an empty value removes it. A
	// trailing !important is kept as the property's priority.
	SetStyle(property, value string)
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// Window is the browsing context locators are resolved against
type Window interface {
	CurrentURL() string
}

// NodeIterator produces the nodes matched by an XPath expression one at a time.
// Next returns false once exhausted.
type NodeIterator interface {
	Next() (Element, bool)
}

// Evaluator resolves XPath expressions against a Window.
type Evaluator interface {
	ResolveXPath(xpath string, win Window) (NodeIterator, error)
}

// Reporter receives human readable descriptions of resolution failures.
type Reporter interface {
	Error(message string)
}
