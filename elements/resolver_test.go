package elements_test

import (
	"testing"

	"github.com/pkg/errors"
	"gitlab.com/puppetk/elements"
	"gitlab.com/puppetk/mock"
	"gitlab.com/puppetk/puppetk"
)

type recorder struct {
	results  []puppetk.Result
	locators []puppetk.Locator
}

func (r *recorder) listen(result puppetk.Result, loc puppetk.Locator) {
	r.results = append(r.results, result)
	r.locators = append(r.locators, loc)
}

type fixture struct {
	resolver  *elements.Resolver
	evaluator *mock.Evaluator
	reporter  *mock.Reporter
	recorded  *recorder
	window    *mock.Window
	state     *puppetk.State
	elem      *mock.Element
	body      *mock.Element
}

func newFixture(nodes ...string) *fixture {
	f := &fixture{
		reporter: &mock.Reporter{},
		recorded: &recorder{},
		window:   &mock.Window{URL: "http://example.com/"},
		state:    puppetk.NewState(false),
		elem:     mock.NewElement("flash"),
		body:     mock.NewElement("body"),
	}

	byName := map[string]puppetk.Element{"elem": f.elem, "body": f.body}
	found := make([]puppetk.Element, 0)
	for _, n := range nodes {
		found = append(found, byName[n])
	}
	f.evaluator, _ = mock.MakeMockEvaluator(found...)

	ctx := puppetk.NewContext(f.evaluator, f.reporter)
	f.resolver = elements.New(ctx)
	f.resolver.AddListener(f.recorded.listen)
	return f
}

func TestGetIsIdentityWhenLocatorIsElement(t *testing.T) {
	f := newFixture()
	loc := puppetk.Elem(f.elem)
	result := f.resolver.Get(loc, f.window, f.state)
	if result != f.elem {
		t.Fatalf("expected element to be returned as is")
	}
	if f.recorded.results[0].Element() != f.elem {
		t.Fatalf("expected listener to receive element")
	}
	if f.recorded.locators[0] != puppetk.Locator(loc) {
		t.Fatalf("expected listener to receive the element locator")
	}
	if f.evaluator.ResolveXPathCalls != 0 {
		t.Fatalf("evaluator should not be called for literal elements")
	}
}

func TestGetWhenLocatorIsFuncReturningElement(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcElem", func() []puppetk.Element { return []puppetk.Element{f.elem} })
	result := f.resolver.Get(fn, f.window, f.state)
	if result != f.elem {
		t.Fatalf("expected elem got %v\n", result)
	}
	if f.recorded.results[0].Element() != f.elem {
		t.Fatalf("expected listener to receive element")
	}
	if f.recorded.locators[0] != puppetk.Locator(fn) {
		t.Fatalf("expected listener to receive the func locator")
	}
}

func TestGetFuncIsNotCached(t *testing.T) {
	f := newFixture()
	calls := 0
	fn := puppetk.NewFunc("counted", func() []puppetk.Element {
		calls++
		return []puppetk.Element{f.elem}
	})
	f.resolver.Get(fn, f.window, f.state)
	f.resolver.Get(fn, f.window, f.state)
	if calls != 2 {
		t.Fatalf("expected func to be called twice, got %d\n", calls)
	}
}

func TestGetReturnsNilWhenXPathResolvesToNoElements(t *testing.T) {
	f := newFixture()
	result := f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	if result != nil {
		t.Fatalf("expected nil result")
	}
	if len(f.recorded.results) != 1 {
		t.Fatalf("expected listener to be notified once, got %d\n", len(f.recorded.results))
	}
	if f.recorded.results[0].Element() != nil {
		t.Fatalf("expected listener to receive a nil element")
	}
	if f.recorded.locators[0] != puppetk.Locator(puppetk.XPath("xpath")) {
		t.Fatalf("expected listener to receive xpath locator")
	}
	if f.resolver.Cache().Len() != 0 {
		t.Fatalf("empty results should not be cached")
	}
}

func TestGetWhenFuncResolvesToNoElements(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcNoElem", func() []puppetk.Element { return []puppetk.Element{} })
	if result := f.resolver.Get(fn, f.window, f.state); result != nil {
		t.Fatalf("expected nil result")
	}
}

func TestGetReturnsElementWhenXPathResolvesToSingleElement(t *testing.T) {
	f := newFixture("elem")
	result := f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	if result != f.elem {
		t.Fatalf("expected elem got %v\n", result)
	}
	if f.recorded.results[0].Element() != f.elem {
		t.Fatalf("expected listener to receive element")
	}
	if f.recorded.locators[0] != puppetk.Locator(puppetk.XPath("xpath")) {
		t.Fatalf("expected listener to receive xpath locator")
	}
}

func TestGetReturnsElementFromCacheWhenXPathAlreadyResolved(t *testing.T) {
	f := newFixture("elem")
	f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)

	f.evaluator.ResolveXPathFn = func(xpath string, win puppetk.Window) (puppetk.NodeIterator, error) {
		t.Fatalf("evaluator should not be called for a cached xpath")
		return nil, nil
	}

	result := f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	if result != f.elem {
		t.Fatalf("expected cached elem got %v\n", result)
	}
	if f.evaluator.ResolveXPathCalls != 1 {
		t.Fatalf("expected a single evaluation, got %d\n", f.evaluator.ResolveXPathCalls)
	}
	if len(f.recorded.results) != 1 {
		t.Fatalf("cache hits should not notify listeners")
	}
}

func TestCacheIsScopedToState(t *testing.T) {
	f := newFixture("elem")
	f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)

	other, _ := mock.MakeMockEvaluator(f.body)
	f.evaluator.ResolveXPathFn = other.ResolveXPathFn

	if result := f.resolver.Get(puppetk.XPath("xpath"), f.window, puppetk.NewState(false)); result != f.body {
		t.Fatalf("expected a new session to re-evaluate")
	}

	if result := f.resolver.Get(puppetk.XPath("xpath"), f.window, nil); result != nil {
		t.Fatalf("expected an exhausted iterator to resolve nothing")
	}
}

func TestClearCache(t *testing.T) {
	f := newFixture("elem")
	f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	f.resolver.ClearCache()
	f.resolver.ClearCache()

	if f.resolver.Cache().Len() != 0 {
		t.Fatalf("expected cache to be empty")
	}
	f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	if f.evaluator.ResolveXPathCalls != 2 {
		t.Fatalf("expected evaluation after clear, got %d calls\n", f.evaluator.ResolveXPathCalls)
	}
}

func TestGetReportsErrorWhenXPathResolvesToMultipleElements(t *testing.T) {
	f := newFixture("elem", "body")
	result := f.resolver.Get(puppetk.XPath("xpath"), f.window, f.state)
	if result != nil {
		t.Fatalf("expected nil result for ambiguous xpath")
	}
	if len(f.reporter.Messages) != 1 {
		t.Fatalf("expected exactly one error, got %d\n", len(f.reporter.Messages))
	}
	if f.resolver.Cache().Len() != 0 {
		t.Fatalf("ambiguous results should not be cached")
	}
	if len(f.recorded.results) != 1 || len(f.recorded.results[0].Elements) != 0 {
		t.Fatalf("expected one empty notification, got %v\n", f.recorded.results)
	}
	if f.recorded.locators[0] != puppetk.XPath("xpath") {
		t.Fatalf("expected the xpath locator to be passed to listeners")
	}
}

func TestGetReportsErrorWhenFuncResolvesToMultipleElements(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcReturnsArray", func() []puppetk.Element { return []puppetk.Element{f.elem, f.body} })
	f.resolver.Get(fn, f.window, f.state)
	if len(f.reporter.Messages) != 1 {
		t.Fatalf("expected exactly one error, got %d\n", len(f.reporter.Messages))
	}
	if len(f.recorded.results) != 1 || f.recorded.results[0].Element() != nil {
		t.Fatalf("expected one empty notification, got %v\n", f.recorded.results)
	}
}

func TestGetReportsEvaluatorErrors(t *testing.T) {
	f := newFixture()
	f.evaluator.ResolveXPathFn = func(xpath string, win puppetk.Window) (puppetk.NodeIterator, error) {
		return nil, errors.New("bad expression")
	}
	if result := f.resolver.Get(puppetk.XPath("]["), f.window, f.state); result != nil {
		t.Fatalf("expected nil result")
	}
	if len(f.reporter.Messages) != 1 {
		t.Fatalf("expected evaluator error to be reported")
	}
	if all := f.resolver.GetAll(puppetk.XPath("]["), f.window); all == nil || len(all) != 0 {
		t.Fatalf("expected empty slice from GetAll")
	}
	if len(f.reporter.Messages) != 2 {
		t.Fatalf("expected evaluator error to be reported by GetAll")
	}
}

func TestGetReportsNilLocator(t *testing.T) {
	f := newFixture()
	var fn *puppetk.Func
	f.resolver.Get(nil, f.window, f.state)
	f.resolver.Get(fn, f.window, f.state)
	if len(f.reporter.Messages) != 2 {
		t.Fatalf("expected 2 errors got %d\n", len(f.reporter.Messages))
	}
}

func assertElements(t *testing.T, expected, got []puppetk.Element) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected non nil slice")
	}
	if len(expected) != len(got) {
		t.Fatalf("expected %d elements got %d\n", len(expected), len(got))
	}
	for i := range expected {
		if expected[i] != got[i] {
			t.Fatalf("element %d differs\n", i)
		}
	}
}

func TestGetAllIsIdentityWhenLocatorIsElements(t *testing.T) {
	f := newFixture()
	loc := puppetk.Elements{f.elem, f.body}
	result := f.resolver.GetAll(loc, f.window)
	assertElements(t, loc, result)
}

func TestGetAllWhenFuncReturnsArray(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcReturnsArray", func() []puppetk.Element { return []puppetk.Element{f.elem, f.body} })
	assertElements(t, []puppetk.Element{f.elem, f.body}, f.resolver.GetAll(fn, f.window))
	if len(f.reporter.Messages) != 0 {
		t.Fatalf("GetAll should never report multiple matches")
	}
}

func TestGetAllReturnsEmptyWhenXPathResolvesToNoElements(t *testing.T) {
	f := newFixture()
	assertElements(t, []puppetk.Element{}, f.resolver.GetAll(puppetk.XPath("xpath"), f.window))
}

func TestGetAllReturnsEmptyWhenFuncResolvesToNoElements(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcNoElem", func() []puppetk.Element { return nil })
	assertElements(t, []puppetk.Element{}, f.resolver.GetAll(fn, f.window))
}

func TestGetAllReturnsSingletonWhenXPathResolvesToOneElement(t *testing.T) {
	f := newFixture("elem")
	assertElements(t, []puppetk.Element{f.elem}, f.resolver.GetAll(puppetk.XPath("xpath"), f.window))
}

func TestGetAllReturnsSingletonWhenFuncResolvesToOneElement(t *testing.T) {
	f := newFixture()
	fn := puppetk.NewFunc("funcElem", func() []puppetk.Element { return []puppetk.Element{f.elem} })
	assertElements(t, []puppetk.Element{f.elem}, f.resolver.GetAll(fn, f.window))
}

func TestGetAllReturnsAllWhenXPathResolvesToMultipleElements(t *testing.T) {
	f := newFixture("elem", "body")
	result := f.resolver.GetAll(puppetk.XPath("xpath"), f.window)
	assertElements(t, []puppetk.Element{f.elem, f.body}, result)

	recorded := f.recorded.results[0]
	if !recorded.All {
		t.Fatalf("expected result to be flagged as GetAll")
	}
	assertElements(t, []puppetk.Element{f.elem, f.body}, recorded.Elements)
	if f.recorded.locators[0] != puppetk.Locator(puppetk.XPath("xpath")) {
		t.Fatalf("expected listener to receive xpath locator")
	}
}

func TestGetAllDoesNotCache(t *testing.T) {
	f := newFixture("elem")
	f.resolver.GetAll(puppetk.XPath("xpath"), f.window)
	f.resolver.GetAll(puppetk.XPath("xpath"), f.window)
	if f.evaluator.ResolveXPathCalls != 2 {
		t.Fatalf("expected GetAll to evaluate every call, got %d\n", f.evaluator.ResolveXPathCalls)
	}
	if f.resolver.Cache().Len() != 0 {
		t.Fatalf("GetAll should not populate the cache")
	}
}

func TestGetNilLiteralResolvesToNothing(t *testing.T) {
	f := newFixture()
	if result := f.resolver.Get(puppetk.Elem(nil), f.window, f.state); result != nil {
		t.Fatalf("expected nil got %v\n", result)
	}
	if len(f.reporter.Messages) != 0 {
		t.Fatalf("expected no errors got %v\n", f.reporter.Messages)
	}
	if len(f.recorded.results) != 1 || len(f.recorded.results[0].Elements) != 0 {
		t.Fatalf("expected one empty notification got %v\n", f.recorded.results)
	}
}
