// Package nav implements the navigation bar's scroll-driven visibility
// rules. The controller is fed one sample per scroll event (vertical
// offset plus viewport width) and derives direction, the condensed-style
// flag and whether the bar should be shown. Overlay rendering and the
// actual scrolling stay with the host.
package nav

import (
	"sync"
	"time"
)

const (
	// TopThreshold is the offset under which the bar is always shown and
	// above which the condensed style applies.
	TopThreshold = 50
	// HideOffset is how far down a narrow viewport must be before a
	// downward scroll hides the bar.
	HideOffset = 100
	// WideMinWidth is the viewport width at and above which the bar never
	// hides.
	WideMinWidth = 1024
	// IdleRestoreDelay re-shows a hidden bar once scrolling has stopped,
	// so it cannot stay lost at the bottom of a long page.
	IdleRestoreDelay = 1500 * time.Millisecond
)

// Direction classifies one scroll sample against the previous one.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Visibility tracks the bar state across scroll samples.
//
// Rules, applied per sample:
//   - offset greater than the previous sample is a downward scroll,
//     anything else is upward
//   - wide viewports are always visible
//   - on narrow viewports, scrolling down past HideOffset hides the bar,
//     scrolling up re-shows it, and under TopThreshold it is always shown
//   - each sample reschedules a single-shot idle timer; if it fires while
//     the last movement was a hiding one, the bar is restored
//
// Stop must be called on teardown or a pending idle timer leaks.
type Visibility struct {
	mu        sync.Mutex
	idleDelay time.Duration

	lastOffset float64
	lastWidth  int
	lastDir    Direction
	visible    bool
	condensed  bool
	idle       *time.Timer
}

// NewVisibility builds a controller in its initial state: visible, at the
// top, direction down. delay <= 0 selects IdleRestoreDelay.
func NewVisibility(delay time.Duration) *Visibility {
	if delay <= 0 {
		delay = IdleRestoreDelay
	}
	return &Visibility{
		idleDelay: delay,
		lastDir:   DirDown,
		visible:   true,
	}
}

// OnScroll processes one scroll sample.
func (v *Visibility) OnScroll(offset float64, viewportWidth int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dir := DirUp
	if offset > v.lastOffset {
		dir = DirDown
	}
	v.condensed = offset > TopThreshold

	if viewportWidth < WideMinWidth {
		if dir == DirDown && offset > HideOffset {
			v.visible = false
		} else if dir == DirUp {
			v.visible = true
		}
		if offset < TopThreshold {
			v.visible = true
		}
	} else {
		v.visible = true
	}

	v.lastOffset = offset
	v.lastWidth = viewportWidth
	v.lastDir = dir

	if v.idle != nil {
		v.idle.Stop()
	}
	v.idle = time.AfterFunc(v.idleDelay, v.idleRestore)
}

// idleRestore fires once scrolling has been quiet for the idle delay. Only
// the hiding combination (narrow viewport, last movement down, past the
// hide offset) needs restoring; everything else is already visible.
func (v *Visibility) idleRestore() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.lastWidth < WideMinWidth && v.lastDir == DirDown && v.lastOffset > HideOffset {
		v.visible = true
	}
}

// Stop cancels any pending idle timer. Safe to call repeatedly.
func (v *Visibility) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.idle != nil {
		v.idle.Stop()
		v.idle = nil
	}
}

// Visible reports whether the bar should currently be shown.
func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Condensed reports whether the bar should render its scrolled style.
func (v *Visibility) Condensed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.condensed
}

// LastDirection returns the direction of the most recent sample.
func (v *Visibility) LastDirection() Direction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastDir
}
