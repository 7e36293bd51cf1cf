package puppetk

import "github.com/rs/zerolog/log"

// Listener is notified of every resolution with the result and the locator
// that was passed in.
type Listener func(result Result, loc Locator)

// Context shared between the resolver, highlighter and callers
type Context struct {
	Evaluator Evaluator
	Reporter  Reporter

	listeners []Listener
}

// NewContext with the evaluator and reporter to use, a nil reporter logs errors.
func NewContext(evaluator Evaluator, reporter Reporter) *Context {
	if reporter == nil {
		reporter = &LogReporter{}
	}
	return &Context{Evaluator: evaluator, Reporter: reporter}
}

// AddListener adds new listeners, they are called in the order they were added.
func (c *Context) AddListener(l ...Listener) {
	if c.listeners == nil {
		c.listeners = make([]Listener, 0)
	}
	c.listeners = append(c.listeners, l...)
}

// Notify calls every listener
func (c *Context) Notify(result Result, loc Locator) {
	for _, l := range c.listeners {
		l(result, loc)
	}
}

// Error forwards message to the reporter
func (c *Context) Error(message string) {
	if c.Reporter == nil {
		log.Error().Msg(message)
		return
	}
	c.Reporter.Error(message)
}

// LogReporter writes reports to the global logger
type LogReporter struct{}

// Error logs message at error level
func (r *LogReporter) Error(message string) {
	log.Error().Str("component", "resolver").Msg(message)
}
