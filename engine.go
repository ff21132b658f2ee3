package waraq

import (
	"fmt"
	"io"
	"sync"

	"github.com/waraq/waraq/breaks"
	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/measure"
	"github.com/waraq/waraq/model"
	"github.com/waraq/waraq/nav"
	"github.com/waraq/waraq/paginate"
	"github.com/waraq/waraq/printout"
	"github.com/waraq/waraq/ruler"
	"github.com/waraq/waraq/schedule"

	"github.com/google/uuid"
)

// Engine is the pagination engine for one editor session. It owns the
// page layout, the derived overflow state, and the components that keep
// navigation and the margin ruler in sync with the document.
//
// The engine serializes its own work behind one mutex: callers may
// invoke it from the debounce timer goroutine and the host event loop
// without coordination. Overflow callbacks fire with the engine lock
// held and must not call back into the engine. The navigation
// synchronizer carries its own lock, so a pagination pass can update
// its page count while the host loop feeds it scroll and caret events.
type Engine struct {
	mu sync.Mutex

	doc      *model.Document
	layout   geometry.PageLayout
	zoom     float64
	measurer measure.Measurer
	snap     paginate.SnapConfig
	export   printout.ExportConfig

	breaks   *breaks.Model
	sync     *nav.Synchronizer
	ruler    *ruler.Controller
	debounce *schedule.Debouncer

	content  geometry.ContentDimensions
	overflow paginate.OverflowInfo
	blocks   []measure.Block

	warnings []Warning
	closed   bool

	onOverflow func(paginate.OverflowInfo)
}

// New creates an engine for the document with default configuration.
func New(doc *model.Document) *Engine {
	return NewWithConfig(doc, DefaultConfig())
}

// NewWithConfig creates an engine with the given configuration. Zero
// config fields fall back to their defaults.
func NewWithConfig(doc *model.Document, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Layout == (geometry.PageLayout{}) {
		cfg.Layout = def.Layout
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = def.Zoom
	}
	if cfg.Snap == (paginate.SnapConfig{}) {
		cfg.Snap = def.Snap
	}
	measurer := cfg.Measurer
	if measurer == nil {
		if cfg.Measure == (measure.Config{}) {
			measurer = measure.NewBlockMeasurer()
		} else {
			measurer = measure.NewBlockMeasurerWithConfig(cfg.Measure)
		}
	}

	e := &Engine{
		doc:      doc,
		layout:   cfg.Layout,
		zoom:     cfg.Zoom,
		measurer: measurer,
		snap:     cfg.Snap,
		export:   cfg.Export,
		breaks:   breaks.NewModel(),
		sync:     nav.NewWithConfig(cfg.Sync),
		debounce: schedule.NewDebouncer(cfg.Debounce),
	}

	rulerCfg := ruler.DefaultConfig()
	rulerCfg.Zoom = cfg.Zoom
	rulerCfg.RTL = doc != nil && doc.IsRTL()
	e.ruler = ruler.NewWithConfig(rulerCfg)
	e.ruler.OnMarginsChange(e.SetMargins)

	return e
}

// SetDocument replaces the engine's document and repaginates.
func (e *Engine) SetDocument(doc *model.Document) {
	e.mu.Lock()
	e.doc = doc
	e.ruler.SetRTL(doc != nil && doc.IsRTL())
	e.repaginateLocked()
	e.mu.Unlock()
}

// Document returns the engine's document.
func (e *Engine) Document() *model.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// OnOverflowChange registers a callback invoked with each freshly
// computed OverflowInfo. The callback runs with the engine locked.
func (e *Engine) OnOverflowChange(fn func(paginate.OverflowInfo)) {
	e.mu.Lock()
	e.onOverflow = fn
	e.mu.Unlock()
}

// OnPageChange registers a callback for authoritative page-index
// changes; see [nav.Synchronizer.OnPageChange]. When a pagination pass
// shrinks the page count and clamps the index, the callback fires with
// the engine lock held and must not call back into the engine.
func (e *Engine) OnPageChange(fn func(page int, src nav.Source)) {
	e.sync.OnPageChange(fn)
}

// ContentChanged notifies the engine of a content mutation. Bursts of
// notifications coalesce into one debounced repagination, which always
// measures the state of the document at fire time, never a stale
// snapshot.
func (e *Engine) ContentChanged() {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return
	}
	e.debounce.Trigger(e.Repaginate)
}

// SetZoom updates the display zoom and repaginates immediately.
// Non-positive values are ignored.
func (e *Engine) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	e.mu.Lock()
	e.zoom = zoom
	e.ruler.SetZoom(zoom)
	e.repaginateLocked()
	e.mu.Unlock()
}

// SetLayout replaces the page layout and repaginates immediately.
func (e *Engine) SetLayout(layout geometry.PageLayout) {
	e.mu.Lock()
	e.layout = layout
	e.layout.Margins = layout.Margins.Clamp()
	e.repaginateLocked()
	e.mu.Unlock()
}

// SetMargins updates only the margins and repaginates immediately.
// This is the persistence hook the ruler controller drives.
func (e *Engine) SetMargins(m geometry.Margins) {
	e.mu.Lock()
	e.layout.Margins = m.Clamp()
	e.repaginateLocked()
	e.mu.Unlock()
}

// Layout returns the current page layout.
func (e *Engine) Layout() geometry.PageLayout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layout
}

// Zoom returns the current zoom factor.
func (e *Engine) Zoom() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zoom
}

// Repaginate runs a full synchronous pagination pass: geometry
// resolution, measurement, overflow computation, break-position
// snapping, and break-model reconciliation, in that order.
func (e *Engine) Repaginate() {
	e.mu.Lock()
	e.repaginateLocked()
	e.mu.Unlock()
}

func (e *Engine) repaginateLocked() {
	if e.closed {
		return
	}

	pd := geometry.ResolvePageDimensions(e.layout)
	e.content = geometry.ResolveContentDimensions(pd, e.layout.Margins, e.zoom)

	if e.doc == nil {
		e.overflow = paginate.Compute(0, e.content)
		e.blocks = nil
		e.publishLocked()
		return
	}

	m, err := e.measurer.Measure(e.doc, e.content)
	if err != nil {
		// The content surface was not measurable; keep the previous
		// geometry and retry on the next triggering event.
		e.warn(WarnMeasurement, fmt.Sprintf("pagination pass skipped: %v", err))
		return
	}
	e.blocks = m.Blocks

	info := paginate.Compute(m.Height, e.content)
	info = paginate.Refine(info, m.Blocks, e.snap)

	e.breaks.Update(e.doc, info, m.Blocks)
	for _, id := range e.breaks.LastPruned() {
		e.warn(WarnOrphanedBreak, fmt.Sprintf("manual break %s no longer resolves and was pruned", id))
	}

	// The break model's reconciled positions are authoritative; they
	// include manual markers the raw overflow math knows nothing about.
	info.BreakPositions = e.breaks.Positions()
	info.PageCount = e.breaks.PageCount()
	info.IsOverflowing = info.PageCount > 1
	e.overflow = info

	e.publishLocked()
}

func (e *Engine) publishLocked() {
	e.sync.SetPageCount(e.overflow.PageCount)
	if e.onOverflow != nil {
		e.onOverflow(e.overflow)
	}
}

// Overflow returns the overflow state from the last pagination pass.
func (e *Engine) Overflow() paginate.OverflowInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.overflow
}

// ContentDims returns the resolved content dimensions from the last
// pagination pass.
func (e *Engine) ContentDims() geometry.ContentDimensions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

// PageCount returns the page count from the last pagination pass.
func (e *Engine) PageCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.breaks.PageCount()
}

// State returns the pagination state machine's current state.
func (e *Engine) State() breaks.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.breaks.State()
}

// CurrentPage returns the authoritative page index.
func (e *Engine) CurrentPage() int {
	return e.sync.CurrentPage()
}

// Synchronizer exposes the scroll/cursor synchronizer for wiring host
// view events.
func (e *Engine) Synchronizer() *nav.Synchronizer { return e.sync }

// Ruler exposes the margin ruler controller for wiring pointer events.
// Margin values it produces persist into the engine's layout
// automatically.
func (e *Engine) Ruler() *ruler.Controller { return e.ruler }

// InsertPageBreak inserts a manual page break before node index at and
// repaginates immediately.
func (e *Engine) InsertPageBreak(at int) (*model.PageBreak, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pb, err := e.breaks.InsertBreak(e.doc, at)
	if err != nil {
		return nil, err
	}
	e.repaginateLocked()
	return pb, nil
}

// RemovePageBreak removes a manual page break by marker ID and
// repaginates immediately. It reports whether the marker existed.
func (e *Engine) RemovePageBreak(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.breaks.RemoveBreak(e.doc, id)
	if removed {
		e.repaginateLocked()
	}
	return removed
}

// Pages splits the document into logical pages at the reconciled break
// positions.
func (e *Engine) Pages() []breaks.Page {
	e.mu.Lock()
	defer e.mu.Unlock()
	return breaks.SplitIntoPages(e.doc, e.blocks, e.overflow.BreakPositions, e.overflow.ContentHeight)
}

// PrintPages returns the print compositor's vertical slices for the
// current pagination.
func (e *Engine) PrintPages() []printout.PrintPage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return printout.SlicePages(e.overflow.BreakPositions, e.overflow.ContentHeight)
}

// ExportPDF writes the document to w as PDF using the current layout.
func (e *Engine) ExportPDF(w io.Writer) error {
	e.mu.Lock()
	doc := e.doc
	layout := e.layout
	cfg := e.export
	e.mu.Unlock()

	return printout.NewExporterWithConfig(cfg).Export(doc, layout, w)
}

// Warnings returns and clears the accumulated warnings.
func (e *Engine) Warnings() []Warning {
	e.mu.Lock()
	defer e.mu.Unlock()
	w := e.warnings
	e.warnings = nil
	return w
}

// Close cancels pending debounced work. The engine stays readable but
// schedules no further passes.
func (e *Engine) Close() error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.debounce.Cancel()
	return nil
}

func (e *Engine) warn(code WarningCode, msg string) {
	e.warnings = append(e.warnings, Warning{Code: code, Message: msg})
}
