package elements

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/puppetk/puppetk"
)

// revive:exported
var (
	ErrNilLocator  = errors.New("locator is nil")
	ErrNilFunc     = errors.New("locator function is nil")
	ErrNoEvaluator = errors.New("no xpath evaluator configured")
	ErrUnsupported = errors.New("unsupported locator")
)

// Resolver turns locators into elements. It is not safe for concurrent use.
type Resolver struct {
	ctx   *puppetk.Context
	cache *Cache
}

// New resolver using the evaluator, reporter and listeners of ctx
func New(ctx *puppetk.Context) *Resolver {
	return &Resolver{ctx: ctx, cache: NewCache()}
}

// AddListener to be notified of every resolution
func (r *Resolver) AddListener(l ...puppetk.Listener) {
	r.ctx.AddListener(l...)
}

// ClearCache for all sessions
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

// Cache used by this resolver
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Get the single element loc resolves to in win. Returns nil when nothing
// matched. Matching more than one element is reported to the context's
// Reporter, listeners see an empty result and nil is returned. XPath resolutions are cached per state, a
// cached element is returned without notifying listeners.
func (r *Resolver) Get(loc puppetk.Locator, win puppetk.Window, state *puppetk.State) puppetk.Element {
	xpath, isXPath := loc.(puppetk.XPath)
	if isXPath {
		if cached, ok := r.cache.Get(state, xpath); ok && len(cached) == 1 {
			log.Debug().Str("xpath", string(xpath)).Msg("resolved from cache")
			return cached[0]
		}
	}

	found, err := r.resolve(loc, win)
	if err != nil {
		r.ctx.Error(fmt.Sprintf("unable to resolve %s: %s", describe(loc), err))
		return nil
	}

	switch len(found) {
	case 0:
		r.ctx.Notify(puppetk.Result{}, loc)
		return nil
	case 1:
		if isXPath {
			r.cache.Put(state, xpath, found)
		}
		r.ctx.Notify(puppetk.Result{Elements: found}, loc)
		return found[0]
	}

	r.ctx.Error(fmt.Sprintf("locator %s matched %d elements, expected exactly one", describe(loc), len(found)))
	r.ctx.Notify(puppetk.Result{}, loc)
	return nil
}

// GetAll elements loc resolves to in win, never nil. Element lists are
// returned as is and nothing is cached.
func (r *Resolver) GetAll(loc puppetk.Locator, win puppetk.Window) []puppetk.Element {
	found, err := r.resolve(loc, win)
	if err != nil {
		r.ctx.Error(fmt.Sprintf("unable to resolve %s: %s", describe(loc), err))
		return make([]puppetk.Element, 0)
	}
	if found == nil {
		found = make([]puppetk.Element, 0)
	}
	r.ctx.Notify(puppetk.Result{Elements: found, All: true}, loc)
	return found
}

func (r *Resolver) resolve(loc puppetk.Locator, win puppetk.Window) ([]puppetk.Element, error) {
	switch l := loc.(type) {
	case nil:
		return nil, ErrNilLocator
	case puppetk.Literal:
		if l.Element == nil {
			return nil, nil
		}
		return []puppetk.Element{l.Element}, nil
	case puppetk.Elements:
		return l, nil
	case *puppetk.Func:
		if l == nil || l.Fn == nil {
			return nil, ErrNilFunc
		}
		return l.Fn(), nil
	case puppetk.XPath:
		return r.evaluate(l, win)
	}
	return nil, errors.Wrapf(ErrUnsupported, "%T", loc)
}

// evaluate drains the evaluator's iterator
func (r *Resolver) evaluate(xpath puppetk.XPath, win puppetk.Window) ([]puppetk.Element, error) {
	if r.ctx.Evaluator == nil {
		return nil, ErrNoEvaluator
	}

	it, err := r.ctx.Evaluator.ResolveXPath(string(xpath), win)
	if err != nil {
		return nil, errors.Wrap(err, "evaluating xpath")
	}

	found := make([]puppetk.Element, 0)
	if it == nil {
		return found, nil
	}

	for {
		ele, ok := it.Next()
		if !ok {
			break
		}
		found = append(found, ele)
	}
	log.Debug().Str("xpath", string(xpath)).Int("matches", len(found)).Msg("evaluated")
	return found, nil
}

func describe(loc puppetk.Locator) string {
	if loc == nil {
		return "<nil>"
	}
	return loc.String()
}
