// Package portfolio implements the list state machine behind every
// portfolio grid: the public design and dev grids and both dashboard
// listings. One controller instance owns one grid's category filter,
// page cursor and accumulated items.
package portfolio

import (
	"context"
	"sync"
)

// State is the controller's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// Page is one fetched page: the items plus the total number of pages
// available for the active filter.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// FetchFunc loads one page for a category from the backend. Controllers
// never interpret the category beyond passing it through; "All" reaches
// the server like any other value.
type FetchFunc[T any] func(ctx context.Context, page int, category string) (Page[T], error)

// DefaultCategory is the filter every grid starts on.
const DefaultCategory = "All"

// ListController accumulates paged, category-filtered items.
//
// Rules it enforces:
//   - a category change resets the cursor to page 1 and replaces the
//     accumulated list on success, never appends
//   - load-more is allowed only below the last page and outside Loading,
//     and appends in response order without dedup
//   - a failed fetch keeps the previously committed list and records the
//     error message; Retry reissues the identical page/category
//   - every fetch carries a generation number; a completion whose
//     generation is no longer current is discarded, so rapid category
//     switches converge on the last issued request rather than the last
//     resolved one
type ListController[T any] struct {
	mu    sync.Mutex
	fetch FetchFunc[T]

	state      State
	errMsg     string
	items      []T
	category   string
	page       int // last committed page
	totalPages int

	// pending request bookkeeping
	gen        uint64
	nextPage   int
	nextCat    string
	appendMode bool
}

// NewListController builds an idle controller on the default category.
// Call Load to populate it.
func NewListController[T any](fetch FetchFunc[T]) *ListController[T] {
	return &ListController[T]{
		fetch:      fetch,
		category:   DefaultCategory,
		page:       1,
		totalPages: 1,
	}
}

// Load fetches page 1 of the active category, replacing the list. Grids
// call it once on mount.
func (l *ListController[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	cat := l.category
	g := l.begin(1, cat, false)
	l.mu.Unlock()
	return l.run(ctx, g, 1, cat, false)
}

// SetCategory switches the filter: cursor back to page 1, list replaced
// on success. Selecting the active category is still a refetch, matching
// how the grids re-request on every filter click.
func (l *ListController[T]) SetCategory(ctx context.Context, category string) error {
	l.mu.Lock()
	g := l.begin(1, category, false)
	l.mu.Unlock()
	return l.run(ctx, g, 1, category, false)
}

// LoadMore fetches the next page and appends it. It is a no-op while
// loading or on the last page.
func (l *ListController[T]) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.state == StateLoading || l.page >= l.totalPages {
		l.mu.Unlock()
		return nil
	}
	page, cat := l.page+1, l.category
	g := l.begin(page, cat, true)
	l.mu.Unlock()
	return l.run(ctx, g, page, cat, true)
}

// Retry reissues the most recent request with identical parameters.
func (l *ListController[T]) Retry(ctx context.Context) error {
	l.mu.Lock()
	if l.nextPage == 0 { // nothing attempted yet
		l.mu.Unlock()
		return l.Load(ctx)
	}
	page, cat, app := l.nextPage, l.nextCat, l.appendMode
	g := l.begin(page, cat, app)
	l.mu.Unlock()
	return l.run(ctx, g, page, cat, app)
}

// begin records the target request under the lock and returns its
// generation.
func (l *ListController[T]) begin(page int, category string, appendMode bool) uint64 {
	l.gen++
	l.state = StateLoading
	l.errMsg = ""
	l.nextPage = page
	l.nextCat = category
	l.appendMode = appendMode
	return l.gen
}

// run performs the fetch outside the lock and commits the result if the
// generation is still current.
func (l *ListController[T]) run(ctx context.Context, g uint64, targetPage int, targetCat string, appendMode bool) error {
	page, err := l.fetch(ctx, targetPage, targetCat)

	l.mu.Lock()
	defer l.mu.Unlock()
	if g != l.gen {
		// A newer request was issued while this one was in flight.
		return nil
	}
	if err != nil {
		l.state = StateError
		l.errMsg = err.Error()
		return err
	}
	if appendMode {
		l.items = append(l.items, page.Items...)
	} else {
		l.items = append([]T(nil), page.Items...)
	}
	l.page = targetPage
	l.category = targetCat
	l.totalPages = page.TotalPages
	if l.totalPages < 1 {
		l.totalPages = 1
	}
	l.state = StateLoaded
	return nil
}

// ----- accessors -----

func (l *ListController[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the retained failure message, empty outside StateError.
func (l *ListController[T]) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

// Items returns a copy of the accumulated list in arrival order.
func (l *ListController[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

func (l *ListController[T]) Category() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.category
}

func (l *ListController[T]) CurrentPage() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *ListController[T]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPages
}

// CanLoadMore reports whether the load-more affordance should be enabled.
func (l *ListController[T]) CanLoadMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state != StateLoading && l.page < l.totalPages
}
