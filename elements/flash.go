package elements

import (
	"strings"

	"gitlab.com/puppetk/puppetk"
)

// DefaultFlashColor used by Flash
const DefaultFlashColor = "yellow"

const (
	backgroundColor = "background-color"
	// holds the color applied while the element is flashing
	flashingAttr = "data-puppetk-flash"
	// holds the background color from before the flash, with its priority
	priorColorAttr = "data-puppetk-prior-color"
	// used when the element is already the flash color
	alternateColor = "orange"
)

var defaultFlasher = &Flasher{Color: DefaultFlashColor}

// Flash turns highlighting of e on or off with the default color.
func Flash(e puppetk.Element, on bool) {
	defaultFlasher.Flash(e, on)
}

// IsFlashing reports if e is currently highlighted
func IsFlashing(e puppetk.Element) bool {
	if e == nil {
		return false
	}
	_, ok := e.Attribute(flashingAttr)
	return ok
}

// Flasher highlights elements by changing their background color. The on/off
// state is kept on the element itself.
type Flasher struct {
	Color string
}

// Flash turns highlighting of e on or off. Turning on an element that is
// already on, or off an element that is already off, does nothing. Turning
// off restores the color the element had when it was turned on, unless the
// background was changed by someone else in the meantime in which case it is
// left alone.
func (f *Flasher) Flash(e puppetk.Element, on bool) {
	if e == nil {
		return
	}

	applied, flashing := e.Attribute(flashingAttr)
	switch {
	case on && !flashing:
		prior := e.Style(backgroundColor)
		color := f.colorFor(prior)
		e.SetAttribute(priorColorAttr, prior)
		e.SetAttribute(flashingAttr, color)
		e.SetStyle(backgroundColor, color)
	case !on && flashing:
		prior, _ := e.Attribute(priorColorAttr)
		e.RemoveAttribute(flashingAttr)
		e.RemoveAttribute(priorColorAttr)
		if e.Style(backgroundColor) == applied {
			e.SetStyle(backgroundColor, prior)
		}
	}
}

func (f *Flasher) colorFor(prior string) string {
	color := f.Color
	if color == "" {
		color = DefaultFlashColor
	}
	prior, _ = puppetk.SplitImportant(prior)
	if strings.EqualFold(color, prior) {
		if strings.EqualFold(prior, alternateColor) {
			return DefaultFlashColor
		}
		return alternateColor
	}
	return color
}
