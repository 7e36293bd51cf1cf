package puppetk

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// ResolutionEvent is a record of a single resolution, as kept by the journal
type ResolutionEvent struct {
	ID        []byte    `msgpack:"id"`
	SessionID int64     `msgpack:"session"`
	Locator   string    `msgpack:"locator"`
	Matches   int       `msgpack:"matches"`
	All       bool      `msgpack:"all"`
	Time      time.Time `msgpack:"time"`
}

// NewResolutionEvent from a listener notification
func NewResolutionEvent(sessionID int64, result Result, loc Locator) *ResolutionEvent {
	id := uuid.NewV4()
	evt := &ResolutionEvent{
		ID:        id.Bytes(),
		SessionID: sessionID,
		Matches:   len(result.Elements),
		All:       result.All,
		Time:      time.Now(),
	}
	if loc != nil {
		evt.Locator = loc.String()
	}
	return evt
}
