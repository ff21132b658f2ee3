package nav

import (
	"sync"
	"time"

	"github.com/waraq/waraq/geometry"
)

// Source identifies which input is trying to drive the page index.
type Source int

const (
	// SourceScroll is a user scroll event observed on the host view.
	SourceScroll Source = iota
	// SourceCursor is a caret move inside the content surface.
	SourceCursor
	// SourceNav is an explicit navigation request.
	SourceNav
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceScroll:
		return "scroll"
	case SourceCursor:
		return "cursor"
	default:
		return "nav"
	}
}

// Event is a tagged page-index proposal from one of the input sources.
type Event struct {
	Source Source
	Page   int
}

// Config holds the tunable parameters of a Synchronizer.
type Config struct {
	// ScrollThreshold is how far past a page's top edge the viewport
	// must scroll before the current page advances, in pixels.
	ScrollThreshold float64

	// SettleTimeout bounds how long the programmatic-scroll guard can
	// stay armed when no explicit scroll-ended signal arrives.
	SettleTimeout time.Duration

	// Now supplies the clock used for the guard deadline. Tests inject
	// a fake; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the synchronizer defaults: a 150px scroll
// threshold and a one second settle timeout.
func DefaultConfig() Config {
	return Config{
		ScrollThreshold: 150,
		SettleTimeout:   time.Second,
	}
}

// Synchronizer owns the authoritative current-page index and the guard
// state that keeps the three input sources from fighting each other.
//
// It carries its own lock: the engine's debounced pagination passes
// update the page count from a timer goroutine while the host event
// loop feeds scroll and caret events. The page-change callback runs
// without the lock held, so it may call back into the Synchronizer;
// the guards decide what such re-entrant calls are allowed to do.
type Synchronizer struct {
	cfg Config
	now func() time.Time

	mu sync.Mutex

	pageCount   int
	currentPage int

	// scrollGuardUntil is the deadline of the programmatic-scroll
	// guard; the zero value means the guard is down.
	scrollGuardUntil time.Time

	// caretBusy rejects re-entrant caret detection.
	caretBusy bool

	lastSource Source
	onChange   func(page int, src Source)
}

// New creates a Synchronizer with default configuration.
func New() *Synchronizer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Synchronizer with the given configuration.
// Zero fields fall back to their defaults.
func NewWithConfig(cfg Config) *Synchronizer {
	def := DefaultConfig()
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = def.ScrollThreshold
	}
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = def.SettleTimeout
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Synchronizer{cfg: cfg, now: now, pageCount: 1}
}

// OnPageChange registers a callback invoked whenever the authoritative
// page index changes, with the source that drove the change.
func (s *Synchronizer) OnPageChange(fn func(page int, src Source)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetPageCount updates the page count after a pagination pass and
// clamps the current index into the new range.
func (s *Synchronizer) SetPageCount(n int) {
	if n < 1 {
		n = 1
	}

	s.mu.Lock()
	s.pageCount = n
	changed := s.currentPage > n-1
	var fn func(page int, src Source)
	var src Source
	if changed {
		s.currentPage = n - 1
		fn = s.onChange
		src = s.lastSource
	}
	page := s.currentPage
	s.mu.Unlock()

	if changed && fn != nil {
		fn(page, src)
	}
}

// CurrentPage returns the authoritative page index.
func (s *Synchronizer) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// PageCount returns the page count from the last SetPageCount call.
func (s *Synchronizer) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageCount
}

// ScrollGuardActive reports whether scroll-driven detection is
// currently suppressed.
func (s *Synchronizer) ScrollGuardActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guardActiveLocked()
}

func (s *Synchronizer) guardActiveLocked() bool {
	if s.scrollGuardUntil.IsZero() {
		return false
	}
	if s.now().After(s.scrollGuardUntil) {
		s.scrollGuardUntil = time.Time{}
		return false
	}
	return true
}

// ScrollEnded is the explicit settle signal from the host view; it
// drops the programmatic-scroll guard immediately.
func (s *Synchronizer) ScrollEnded() {
	s.mu.Lock()
	s.scrollGuardUntil = time.Time{}
	s.mu.Unlock()
}

// HandleScroll runs scroll-driven page detection for a user scroll
// event. It returns the resulting page index and whether the event was
// accepted; events arriving while the programmatic-scroll guard is
// armed are suppressed.
func (s *Synchronizer) HandleScroll(scrollTop float64, positions []float64, viewportHeight, totalHeight float64) (int, bool) {
	s.mu.Lock()
	if s.pageCount <= 1 {
		s.mu.Unlock()
		return 0, false
	}
	if s.guardActiveLocked() {
		cur := s.currentPage
		s.mu.Unlock()
		return cur, false
	}
	threshold := s.cfg.ScrollThreshold
	s.mu.Unlock()

	page := DetectByScroll(scrollTop, positions, viewportHeight, totalHeight, threshold)
	return s.apply(Event{Source: SourceScroll, Page: page}), true
}

// HandleCursor runs caret-driven page detection. A pass already in
// flight rejects re-entrant calls, breaking the caret/scroll
// oscillation loop.
func (s *Synchronizer) HandleCursor(caret geometry.Rect, positions []float64, availableHeight, marginTop float64) (int, bool) {
	s.mu.Lock()
	if s.pageCount <= 1 {
		s.mu.Unlock()
		return 0, false
	}
	if s.caretBusy {
		cur := s.currentPage
		s.mu.Unlock()
		return cur, false
	}
	s.caretBusy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.caretBusy = false
		s.mu.Unlock()
	}()

	page := DetectByCursor(caret, positions, availableHeight, marginTop)
	return s.apply(Event{Source: SourceCursor, Page: page}), true
}

// ScrollToPage services an explicit navigation request: it arms the
// programmatic-scroll guard, adopts the (clamped) index, and returns
// the scroll offset the host view should move to.
func (s *Synchronizer) ScrollToPage(index int, positions []float64, availableHeight, marginTop, viewportHeight float64) float64 {
	s.mu.Lock()
	index = ValidatePageIndex(index, s.pageCount)
	s.scrollGuardUntil = s.now().Add(s.cfg.SettleTimeout)
	s.mu.Unlock()

	s.apply(Event{Source: SourceNav, Page: index})

	return ScrollOffsetFor(index, positions, availableHeight, marginTop)
}

// apply is the single arbitration point: last writer wins, with the
// guards above having already filtered writers reacting to themselves.
// The change callback fires after the lock is released.
func (s *Synchronizer) apply(ev Event) int {
	s.mu.Lock()
	page := ValidatePageIndex(ev.Page, s.pageCount)
	s.lastSource = ev.Source
	changed := page != s.currentPage
	if changed {
		s.currentPage = page
	}
	fn := s.onChange
	s.mu.Unlock()

	if changed && fn != nil {
		fn(page, ev.Source)
	}
	return page
}

// DetectByScroll maps a scroll offset to a page index. The reference
// point sits threshold pixels below the viewport top, so a page counts
// as current once its top edge scrolls that far up. A viewport resting
// at the bottom of the document always reads as the last page.
func DetectByScroll(scrollTop float64, positions []float64, viewportHeight, totalHeight, threshold float64) int {
	if len(positions) == 0 {
		return 0
	}
	if totalHeight > 0 && viewportHeight > 0 && scrollTop+viewportHeight >= totalHeight-1 {
		return len(positions)
	}
	ref := scrollTop + threshold
	page := 0
	for _, p := range positions {
		if ref < p {
			break
		}
		page++
	}
	return page
}

// DetectByCursor maps a caret rectangle to a page index using the
// caret's vertical center. Break positions and caret rectangles share
// the same flow coordinates (offsets from the top of the content, top
// margin included), so the center compares against positions directly;
// only the uniform fallback, used when no explicit positions exist,
// strips the top margin before dividing by the page height.
func DetectByCursor(caret geometry.Rect, positions []float64, availableHeight, marginTop float64) int {
	if len(positions) > 0 {
		y := caret.CenterY()
		page := 0
		for _, p := range positions {
			if y < p {
				break
			}
			page++
		}
		return page
	}

	y := caret.CenterY() - marginTop
	if y < 0 {
		y = 0
	}
	if availableHeight <= 0 {
		return 0
	}
	return int(y / availableHeight)
}

// ScrollOffsetFor returns the scroll offset that brings the given
// page's top edge to the viewport top. Break positions already carry
// the top-margin offset, so they are returned as-is; the uniform
// fallback reconstructs the same naive boundary the overflow math
// would produce.
func ScrollOffsetFor(index int, positions []float64, availableHeight, marginTop float64) float64 {
	if index <= 0 {
		return 0
	}
	if index-1 < len(positions) {
		return positions[index-1]
	}
	offset := float64(index)*availableHeight + marginTop
	if offset < 0 {
		return 0
	}
	return offset
}

// ValidatePageIndex clamps an index into [0, pageCount-1].
func ValidatePageIndex(i, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if i < 0 {
		return 0
	}
	if i > pageCount-1 {
		return pageCount - 1
	}
	return i
}
