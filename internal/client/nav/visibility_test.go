package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	narrow = 390
	wide   = 1440

	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

func TestDirectionClassification(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	v.OnScroll(120, narrow)
	assert.Equal(t, DirDown, v.LastDirection())

	v.OnScroll(80, narrow)
	assert.Equal(t, DirUp, v.LastDirection())

	v.OnScroll(80, narrow)
	assert.Equal(t, DirUp, v.LastDirection(), "no movement counts as up")
}

func TestNarrowViewportHideAndShow(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	assert.True(t, v.Visible(), "starts visible")

	v.OnScroll(300, narrow)
	assert.False(t, v.Visible(), "downward past the hide offset hides")

	v.OnScroll(250, narrow)
	assert.True(t, v.Visible(), "any upward scroll re-shows")

	v.OnScroll(600, narrow)
	assert.False(t, v.Visible())
}

func TestDownwardAboveHideOffsetKeepsBar(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	v.OnScroll(90, narrow)
	assert.True(t, v.Visible(), "downward under the hide offset does not hide")
}

func TestTopThresholdForcesVisible(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	v.OnScroll(300, narrow)
	assert.False(t, v.Visible())

	// Jumping back under the threshold shows the bar even though the
	// sample classifies as upward anyway; force the downward case with an
	// anchor jump from above.
	v.OnScroll(400, narrow)
	v.OnScroll(30, narrow)
	assert.True(t, v.Visible(), "under the top threshold the bar is always shown")
}

func TestWideViewportAlwaysVisible(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	v.OnScroll(300, wide)
	assert.True(t, v.Visible())
	v.OnScroll(1200, wide)
	assert.True(t, v.Visible(), "wide viewports never hide the bar")

	// Resizing down mid-scroll picks up the narrow rules.
	v.OnScroll(1400, narrow)
	assert.False(t, v.Visible())
}

func TestCondensedStyleFlag(t *testing.T) {
	v := NewVisibility(time.Hour)
	defer v.Stop()

	v.OnScroll(30, wide)
	assert.False(t, v.Condensed())

	v.OnScroll(80, wide)
	assert.True(t, v.Condensed(), "past the top threshold the condensed style applies")

	v.OnScroll(10, wide)
	assert.False(t, v.Condensed())
}

func TestIdleRestoreAfterDownwardScroll(t *testing.T) {
	v := NewVisibility(10 * time.Millisecond)
	defer v.Stop()

	v.OnScroll(300, narrow)
	assert.False(t, v.Visible())

	assert.Eventually(t, v.Visible, testWait, testTick,
		"idle timer restores a bar hidden by a downward scroll")
}

func TestIdleTimerReschedulesOnEveryScroll(t *testing.T) {
	v := NewVisibility(80 * time.Millisecond)
	defer v.Stop()

	v.OnScroll(300, narrow)
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		v.OnScroll(300+float64(i+1)*10, narrow)
	}
	assert.False(t, v.Visible(), "continuous scrolling keeps deferring the restore")

	assert.Eventually(t, v.Visible, testWait, testTick)
}

func TestIdleTimerNoOpWhenVisible(t *testing.T) {
	v := NewVisibility(10 * time.Millisecond)
	defer v.Stop()

	v.OnScroll(300, wide)
	assert.True(t, v.Visible())
	time.Sleep(50 * time.Millisecond)
	assert.True(t, v.Visible())
}

func TestStopCancelsPendingRestore(t *testing.T) {
	v := NewVisibility(20 * time.Millisecond)

	v.OnScroll(300, narrow)
	assert.False(t, v.Visible())
	v.Stop()
	v.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, v.Visible(), "no restore fires after Stop")
}
