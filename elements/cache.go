package elements

import "gitlab.com/puppetk/puppetk"

type cacheKey struct {
	state *puppetk.State
	xpath puppetk.XPath
}

// Cache of resolved xpath locators, scoped per session state. Entries never
// expire, call Clear between independent runs.
type Cache struct {
	entries map[cacheKey][]puppetk.Element
}

// NewCache that is empty
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]puppetk.Element)}
}

// Get the elements previously stored for xpath in state
func (c *Cache) Get(state *puppetk.State, xpath puppetk.XPath) ([]puppetk.Element, bool) {
	if state == nil {
		return nil, false
	}
	found, ok := c.entries[cacheKey{state: state, xpath: xpath}]
	return found, ok
}

// Put elements for xpath in state, a nil state is not cached.
func (c *Cache) Put(state *puppetk.State, xpath puppetk.XPath, found []puppetk.Element) {
	if state == nil {
		return
	}
	c.entries[cacheKey{state: state, xpath: xpath}] = found
}

// Clear all entries for all sessions
func (c *Cache) Clear() {
	c.entries = make(map[cacheKey][]puppetk.Element)
}

// Len number of cached locators
func (c *Cache) Len() int {
	return len(c.entries)
}
