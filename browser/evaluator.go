package browser

import (
	"github.com/pkg/errors"
	"gitlab.com/puppetk/puppetk"
)

// Evaluator resolves XPath expressions in a *Tab with the page's document.evaluate
type Evaluator struct{}

// ResolveXPath returns an iterator over the nodes matching expr in win
func (e *Evaluator) ResolveXPath(expr string, win puppetk.Window) (puppetk.NodeIterator, error) {
	tab, ok := win.(*Tab)
	if !ok {
		return nil, errors.Wrapf(ErrNotTab, "%T", win)
	}
	nodeIDs, err := tab.EvaluateXPath(expr)
	if err != nil {
		return nil, err
	}
	return &nodeIterator{tab: tab, nodeIDs: nodeIDs}, nil
}

type nodeIterator struct {
	tab     *Tab
	nodeIDs []int
}

func (n *nodeIterator) Next() (puppetk.Element, bool) {
	if len(n.nodeIDs) == 0 {
		return nil, false
	}
	id := n.nodeIDs[0]
	n.nodeIDs = n.nodeIDs[1:]
	return n.tab.Node(id), true
}
