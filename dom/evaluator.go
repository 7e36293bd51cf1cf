package dom

import (
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"gitlab.com/puppetk/puppetk"
	"golang.org/x/net/html"
)

// ErrNotDocument when the window is not a *Document
var ErrNotDocument = errors.New("window is not a parsed document")

// Evaluator resolves XPath expressions against a *Document. Compiled
// expressions are kept for reuse.
type Evaluator struct {
	compiled map[string]*xpath.Expr
}

// NewEvaluator for parsed documents
func NewEvaluator() *Evaluator {
	return &Evaluator{compiled: make(map[string]*xpath.Expr)}
}

// ResolveXPath returns an iterator over the elements matching expr in win.
// Only element nodes are produced, text and attribute matches yield their
// owning element.
func (e *Evaluator) ResolveXPath(expr string, win puppetk.Window) (puppetk.NodeIterator, error) {
	doc, ok := win.(*Document)
	if !ok {
		return nil, errors.Wrapf(ErrNotDocument, "%T", win)
	}

	compiled, err := e.compile(expr)
	if err != nil {
		return nil, err
	}
	it := compiled.Select(htmlquery.CreateXPathNavigator(doc.root))
	return &nodeIterator{doc: doc, it: it}, nil
}

func (e *Evaluator) compile(expr string) (*xpath.Expr, error) {
	if compiled, ok := e.compiled[expr]; ok {
		return compiled, nil
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling %q", expr)
	}
	e.compiled[expr] = compiled
	return compiled, nil
}

type nodeIterator struct {
	doc  *Document
	it   *xpath.NodeIterator
	seen map[*html.Node]struct{}
}

func (n *nodeIterator) Next() (puppetk.Element, bool) {
	if n.seen == nil {
		n.seen = make(map[*html.Node]struct{})
	}
	for n.it.MoveNext() {
		nav, ok := n.it.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		node := nav.Current()
		for node != nil && node.Type != html.ElementNode {
			node = node.Parent
		}
		if node == nil {
			continue
		}
		if _, dup := n.seen[node]; dup {
			continue
		}
		n.seen[node] = struct{}{}
		return n.doc.Element(node), true
	}
	return nil, false
}
