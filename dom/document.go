package dom

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ElementNotFoundErr when we are unable to find an element
type ElementNotFoundErr struct {
	Message string
}

func (e *ElementNotFoundErr) Error() string {
	return "Unable to find element " + e.Message
}

// Document is a parsed HTML document that acts as a puppetk.Window
type Document struct {
	root     *html.Node
	url      string
	elements map[*html.Node]*Element
}

// Parse an HTML document read from r, url is reported by CurrentURL.
func Parse(r io.Reader, url string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}
	return &Document{
		root:     root,
		url:      url,
		elements: make(map[*html.Node]*Element),
	}, nil
}

// ParseFile parses the HTML document at path, its URL is a file:// URL.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return Parse(f, "file://"+filepath.ToSlash(abs))
}

// CurrentURL of the document
func (d *Document) CurrentURL() string {
	return d.url
}

// SetURL changes the URL reported by CurrentURL
func (d *Document) SetURL(url string) {
	d.url = url
}

// Element returns the handle for n, the same handle is returned for the same node.
func (d *Document) Element(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if ele, ok := d.elements[n]; ok {
		return ele
	}
	ele := &Element{doc: d, node: n}
	d.elements[n] = ele
	return ele
}

// ElementByID returns the first element with the id attribute
func (d *Document) ElementByID(id string) (*Element, error) {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)

	if found == nil {
		return nil, &ElementNotFoundErr{Message: "#" + id}
	}
	return d.Element(found), nil
}

// Render the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, errors render as an empty string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
