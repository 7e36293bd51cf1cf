package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/wirepair/gcd"
	"github.com/wirepair/gcd/gcdapi"
	"gitlab.com/puppetk/puppetk"
)

// Tab is a chromium browser tab elements are located in
type Tab struct {
	t                 *gcd.ChromeTarget
	id                int64
	nodeMutex         sync.RWMutex  // locks our nodes when added/removed.
	nodes             map[int]*Node // one handle per nodeID
	haveDocument      bool          // DOM.getDocument was called for the current document
	navigationCh      chan struct{} // for receiving load event fired
	crashedCh         chan string   // the chrome tab crashed with a reason
	exitCh            chan struct{} // for when we close the tab, kill go routines
	navigationTimeout time.Duration // amount of time to wait before failing navigation
}

// NewTab to use
func NewTab(ctx context.Context, target *gcd.ChromeTarget) *Tab {
	t := &Tab{
		t:                 target,
		id:                puppetk.GetSessionID(),
		nodes:             make(map[int]*Node),
		navigationCh:      make(chan struct{}, 1),
		crashedCh:         make(chan string),
		exitCh:            make(chan struct{}),
		navigationTimeout: 30 * time.Second,
	}
	t.subscribeBrowserEvents(ctx)
	return t
}

// SetNavigationTimeout to wait for navigations before giving up, default is 30 seconds
func (t *Tab) SetNavigationTimeout(timeout time.Duration) {
	if timeout > 0 {
		t.navigationTimeout = timeout
	}
}

// Close the exit channel
func (t *Tab) Close() {
	close(t.exitCh)
}

// Navigate to url and wait for the load event
func (t *Tab) Navigate(ctx context.Context, url string) error {
	t.resetNodes()
	t.drainLoadEvents()

	navParams := &gcdapi.PageNavigateParams{Url: url, TransitionType: "typed"}
	_, _, errText, err := t.t.Page.NavigateWithParams(navParams)
	if err != nil {
		return err
	}

	if errText != "" {
		return errors.Wrap(ErrNavigating, errText)
	}

	timer := time.NewTimer(t.navigationTimeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		return ErrNavigationTimedOut
	case <-ctx.Done():
		return ctx.Err()
	case <-t.exitCh:
		return ErrTabClosing
	case reason := <-t.crashedCh:
		return errors.Wrap(ErrTabCrashed, reason)
	case <-t.navigationCh:
	}
	log.Ctx(ctx).Info().Str("url", url).Msg("navigation complete")
	return nil
}

// a load event from a previous document must not end the next navigation
func (t *Tab) drainLoadEvents() {
	for {
		select {
		case <-t.navigationCh:
		default:
			return
		}
	}
}

// CurrentURL by looking at the navigation history
func (t *Tab) CurrentURL() string {
	idx, entries, err := t.t.Page.GetNavigationHistory()
	if err != nil || len(entries) == 0 {
		return ""
	}
	if idx >= 0 && idx < len(entries) {
		return entries[idx].Url
	}
	return entries[len(entries)-1].Url
}

// Node returns the handle for nodeID, the same handle is returned for the
// same nodeID until the document changes.
func (t *Tab) Node(nodeID int) *Node {
	t.nodeMutex.RLock()
	n, ok := t.nodes[nodeID]
	t.nodeMutex.RUnlock()
	if ok {
		return n
	}

	t.nodeMutex.Lock()
	defer t.nodeMutex.Unlock()
	if n, ok = t.nodes[nodeID]; ok {
		return n
	}
	n = &Node{tab: t, ID: nodeID}
	t.nodes[nodeID] = n
	return n
}

func (t *Tab) resetNodes() {
	t.nodeMutex.Lock()
	t.nodes = make(map[int]*Node)
	t.haveDocument = false
	t.nodeMutex.Unlock()
}

// Gets the top document, DOM.getDocument must be called before searching but
// calling it again creates new nodeIDs so only do it once per document.
func (t *Tab) ensureDocument() error {
	t.nodeMutex.RLock()
	have := t.haveDocument
	t.nodeMutex.RUnlock()
	if have {
		return nil
	}

	if _, err := t.t.DOM.GetDocument(-1, true); err != nil {
		return errors.Wrap(err, "getting document")
	}
	t.nodeMutex.Lock()
	t.haveDocument = true
	t.nodeMutex.Unlock()
	return nil
}

// EvaluateXPath returns the nodeIDs of the elements matching expr, in
// document order. Matched text and attribute nodes are replaced by the
// element that owns them.
func (t *Tab) EvaluateXPath(expr string) ([]int, error) {
	if err := t.ensureDocument(); err != nil {
		return nil, err
	}

	script, err := xpathScript(expr)
	if err != nil {
		return nil, err
	}

	defer func() {
		if _, err := t.t.Runtime.ReleaseObjectGroup(objectGroup); err != nil {
			log.Debug().Err(err).Msg("failed to release xpath results")
		}
	}()

	r, exp, err := t.t.Runtime.EvaluateWithParams(&gcdapi.RuntimeEvaluateParams{
		Expression:  script,
		ObjectGroup: objectGroup,
		Silent:      true,
		Timeout:     1000,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating %q", expr)
	}
	if exp != nil {
		return nil, errors.Wrapf(ErrInvalidXPath, "%s: %s", expr, exceptionText(exp))
	}
	if r == nil || r.ObjectId == "" {
		return make([]int, 0), nil
	}

	props, _, _, exp, err := t.t.Runtime.GetPropertiesWithParams(&gcdapi.RuntimeGetPropertiesParams{
		ObjectId:      r.ObjectId,
		OwnProperties: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "reading results of %q", expr)
	}
	if exp != nil {
		return nil, errors.Errorf("reading results of %q: %s", expr, exceptionText(exp))
	}

	objectIDs := resultObjectIDs(props)
	nodeIDs := make([]int, 0, len(objectIDs))
	for _, objectID := range objectIDs {
		nodeID, err := t.t.DOM.RequestNode(objectID)
		if err != nil {
			return nil, errors.Wrap(err, "requesting node")
		}
		nodeIDs = append(nodeIDs, nodeID)
	}
	return nodeIDs, nil
}

func (t *Tab) String() string {
	return fmt.Sprintf("tab(%d)", t.id)
}

func (t *Tab) subscribeBrowserEvents(ctx context.Context) {
	t.t.DOM.Enable()
	t.t.Page.Enable()
	t.t.Inspector.Enable()

	t.t.Subscribe("Inspector.targetCrashed", func(target *gcd.ChromeTarget, payload []byte) {
		log.Ctx(ctx).Warn().Str("tab", target.Target.Id).Msgf("tab crashed: %s", string(payload))
		select {
		case t.crashedCh <- "crashed":
		case <-t.exitCh:
		default:
		}
	})

	t.t.Subscribe("Page.loadEventFired", func(target *gcd.ChromeTarget, payload []byte) {
		select {
		case t.navigationCh <- struct{}{}:
		case <-t.exitCh:
		default:
		}
	})

	// nodeIDs are no longer valid
	t.t.Subscribe("DOM.documentUpdated", func(target *gcd.ChromeTarget, payload []byte) {
		log.Ctx(ctx).Debug().Msg("document updated")
		t.resetNodes()
	})
}

var _ puppetk.Window = (*Tab)(nil)
