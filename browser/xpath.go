package browser

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/wirepair/gcd/gcdapi"
)

// objectGroup the xpath results are held in until released
const objectGroup = "puppetk"

// evaluated in the page with the quoted xpath expression, returns an array of
// unique elements in document order
const xpathFunction = `(function(expr) {
	var snapshot = document.evaluate(expr, document, null, XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);
	var found = [];
	for (var i = 0; i < snapshot.snapshotLength; i++) {
		var n = snapshot.snapshotItem(i);
		if (n.nodeType !== Node.ELEMENT_NODE) {
			n = n.ownerElement || n.parentElement;
		}
		if (n && found.indexOf(n) === -1) {
			found.push(n);
		}
	}
	return found;
})(%s)`

func xpathScript(expr string) (string, error) {
	quoted, err := json.Marshal(expr)
	if err != nil {
		return "", errors.Wrap(err, "quoting xpath")
	}
	return fmt.Sprintf(xpathFunction, quoted), nil
}

// resultObjectIDs of the array elements in props, ordered by index
func resultObjectIDs(props []*gcdapi.RuntimePropertyDescriptor) []string {
	type indexed struct {
		idx      int
		objectID string
	}
	found := make([]indexed, 0, len(props))
	for _, p := range props {
		if p == nil || p.Value == nil || p.Value.ObjectId == "" {
			continue
		}
		idx, err := strconv.Atoi(p.Name)
		if err != nil {
			// length, __proto__
			continue
		}
		found = append(found, indexed{idx: idx, objectID: p.Value.ObjectId})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].idx < found[j].idx })

	objectIDs := make([]string, len(found))
	for i, f := range found {
		objectIDs[i] = f.objectID
	}
	return objectIDs
}

func exceptionText(exp *gcdapi.RuntimeExceptionDetails) string {
	if exp.Exception != nil && exp.Exception.Description != "" {
		return exp.Exception.Description
	}
	return exp.Text
}
