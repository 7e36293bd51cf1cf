package browser

import (
	"github.com/pkg/errors"
)

// revive:exported
var (
	ErrNavigationTimedOut = errors.New("navigation timed out")
	ErrTabCrashed         = errors.New("tab crashed")
	ErrTabClosing         = errors.New("closing")
	ErrNavigating         = errors.New("error in navigation")
	ErrNotTab             = errors.New("window is not a browser tab")
	ErrInvalidXPath       = errors.New("invalid xpath")
)

// InvalidTabErr when we are unable to access a tab
type InvalidTabErr struct {
	Message string
}

func (e *InvalidTabErr) Error() string {
	return "Unable to access tab: " + e.Message
}
