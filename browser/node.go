package browser

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gitlab.com/puppetk/puppetk"
)

// Node is an element in a live tab. Failed DOM calls are logged, a node that
// no longer exists has no attributes.
type Node struct {
	tab *Tab
	ID  int
}

func (n *Node) attributes() []string {
	attrs, err := n.tab.t.DOM.GetAttributes(n.ID)
	if err != nil {
		log.Warn().Err(err).Int("node_id", n.ID).Msg("failed to get attributes")
		return nil
	}
	return attrs
}

// Attribute value of name
func (n *Node) Attribute(name string) (string, bool) {
	attrs := n.attributes()
	if !HasAttribute(attrs, name) {
		return "", false
	}
	return GetAttribute(attrs, name), true
}

// SetAttribute name to value
func (n *Node) SetAttribute(name, value string) {
	if _, err := n.tab.t.DOM.SetAttributeValue(n.ID, name, value); err != nil {
		log.Warn().Err(err).Int("node_id", n.ID).Str("attribute", name).Msg("failed to set attribute")
	}
}

// RemoveAttribute name
func (n *Node) RemoveAttribute(name string) {
	if _, err := n.tab.t.DOM.RemoveAttribute(n.ID, name); err != nil {
		log.Warn().Err(err).Int("node_id", n.ID).Str("attribute", name).Msg("failed to remove attribute")
	}
}

func (n *Node) style() *puppetk.Style {
	attr, _ := n.Attribute("style")
	s, err := puppetk.ParseStyle(attr)
	if err != nil {
		log.Warn().Err(err).Int("node_id", n.ID).Msg("invalid inline style")
	}
	return s
}

// Style returns the inline style property as declared
func (n *Node) Style(property string) string {
	return n.style().Declared(property)
}

// SetStyle sets an inline style property, an empty value removes it.
func (n *Node) SetStyle(property, value string) {
	s := n.style()
	s.Set(property, value)
	if s.Len() == 0 {
		n.RemoveAttribute("style")
		return
	}
	n.SetAttribute("style", s.String())
}

func (n *Node) String() string {
	return fmt.Sprintf("node(%d)", n.ID)
}

var _ puppetk.Element = (*Node)(nil)
