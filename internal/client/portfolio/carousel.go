package portfolio

import (
	"sync"
	"time"
)

// CarouselMap tracks the active image index per item id across a grid.
// Indices are created lazily at 0 and wrap by modulo, so next from the
// last image lands on the first and previous from 0 lands on the last.
type CarouselMap struct {
	mu  sync.Mutex
	idx map[uint64]int
}

func NewCarouselMap() *CarouselMap {
	return &CarouselMap{idx: make(map[uint64]int)}
}

// Index returns the active index for an item, defaulting to 0.
func (m *CarouselMap) Index(id uint64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idx[id]
}

// Next advances the item's index within [0, count) and returns it.
// count <= 0 pins the index at 0 (no images yet).
func (m *CarouselMap) Next(id uint64, count int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if count <= 0 {
		m.idx[id] = 0
		return 0
	}
	m.idx[id] = (m.idx[id] + 1) % count
	return m.idx[id]
}

// Prev steps the item's index backwards with wrap-around.
func (m *CarouselMap) Prev(id uint64, count int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if count <= 0 {
		m.idx[id] = 0
		return 0
	}
	m.idx[id] = (m.idx[id] - 1 + count) % count
	return m.idx[id]
}

// Reset forgets an item's index, e.g. when its detail view closes.
func (m *CarouselMap) Reset(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idx, id)
}

// AutoAdvanceInterval is how often an open detail view steps its carousel.
const AutoAdvanceInterval = 3 * time.Second

// AutoAdvancer runs a fixed-interval carousel step while a detail view is
// open. Stop is idempotent and must be called on close or teardown, or
// the ticker goroutine leaks.
type AutoAdvancer struct {
	stop chan struct{}
	once sync.Once
}

// StartAutoAdvance invokes step every interval until Stop.
func StartAutoAdvance(interval time.Duration, step func()) *AutoAdvancer {
	if interval <= 0 {
		interval = AutoAdvanceInterval
	}
	a := &AutoAdvancer{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				step()
			case <-a.stop:
				return
			}
		}
	}()
	return a
}

func (a *AutoAdvancer) Stop() {
	a.once.Do(func() { close(a.stop) })
}

// SwipeThreshold is the horizontal drag distance, in pixels, that counts
// as a swipe on the detail view.
const SwipeThreshold = 100

// SwipeStep classifies a completed horizontal drag. Dragging left past
// the threshold advances (+1), dragging right goes back (-1), anything
// shorter is a no-op (0).
func SwipeStep(deltaX float64) int {
	switch {
	case deltaX <= -SwipeThreshold:
		return 1
	case deltaX >= SwipeThreshold:
		return -1
	default:
		return 0
	}
}
