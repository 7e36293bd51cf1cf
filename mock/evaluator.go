package mock

import "gitlab.com/puppetk/puppetk"

// Evaluator records ResolveXPath calls
type Evaluator struct {
	ResolveXPathFn    func(xpath string, win puppetk.Window) (puppetk.NodeIterator, error)
	ResolveXPathCalls int
}

// ResolveXPath calls ResolveXPathFn
func (e *Evaluator) ResolveXPath(xpath string, win puppetk.Window) (puppetk.NodeIterator, error) {
	e.ResolveXPathCalls++
	return e.ResolveXPathFn(xpath, win)
}

// NodeIterator hands out Nodes in order
type NodeIterator struct {
	Nodes     []puppetk.Element
	NextCalls int
}

// Next node or false once all were handed out
func (n *NodeIterator) Next() (puppetk.Element, bool) {
	n.NextCalls++
	if len(n.Nodes) == 0 {
		return nil, false
	}
	ele := n.Nodes[0]
	n.Nodes = n.Nodes[1:]
	return ele, true
}

// MakeMockEvaluator that returns an iterator over nodes for every expression
func MakeMockEvaluator(nodes ...puppetk.Element) (*Evaluator, *NodeIterator) {
	it := &NodeIterator{Nodes: nodes}
	e := &Evaluator{}
	e.ResolveXPathFn = func(xpath string, win puppetk.Window) (puppetk.NodeIterator, error) {
		return it, nil
	}
	return e, it
}
