package portfolio

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

func TestCarouselMapWrapsBothWays(t *testing.T) {
	m := NewCarouselMap()

	assert.Equal(t, 0, m.Index(7), "unknown items start at 0")

	assert.Equal(t, 1, m.Next(7, 3))
	assert.Equal(t, 2, m.Next(7, 3))
	assert.Equal(t, 0, m.Next(7, 3), "next wraps to the first image")

	assert.Equal(t, 2, m.Prev(7, 3), "prev from 0 wraps to the last image")
	assert.Equal(t, 1, m.Prev(7, 3))

	// Per-item independence.
	assert.Equal(t, 0, m.Index(8))
	m.Next(8, 2)
	assert.Equal(t, 1, m.Index(8))
	assert.Equal(t, 1, m.Index(7))

	m.Reset(7)
	assert.Equal(t, 0, m.Index(7))
}

func TestCarouselMapEmptyItem(t *testing.T) {
	m := NewCarouselMap()
	assert.Equal(t, 0, m.Next(1, 0))
	assert.Equal(t, 0, m.Prev(1, 0))
	assert.Equal(t, 0, m.Next(1, -3))
}

func TestAutoAdvancerStepsUntilStopped(t *testing.T) {
	var steps atomic.Int64
	a := StartAutoAdvance(time.Millisecond, func() { steps.Add(1) })

	assert.Eventually(t, func() bool { return steps.Load() >= 3 }, testWait, testTick)

	a.Stop()
	a.Stop() // idempotent

	settled := steps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, steps.Load(), settled+1, "no steps after stop beyond one already in flight")
}

func TestSwipeStep(t *testing.T) {
	assert.Equal(t, 1, SwipeStep(-150), "left swipe advances")
	assert.Equal(t, 1, SwipeStep(-100), "threshold counts")
	assert.Equal(t, -1, SwipeStep(150), "right swipe goes back")
	assert.Equal(t, -1, SwipeStep(100))
	assert.Equal(t, 0, SwipeStep(-99))
	assert.Equal(t, 0, SwipeStep(42))
	assert.Equal(t, 0, SwipeStep(0))
}
