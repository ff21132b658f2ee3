package breaks

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/waraq/waraq/measure"
	"github.com/waraq/waraq/model"
	"github.com/waraq/waraq/paginate"
)

// State is the pagination state of a document.
type State int

const (
	// Unpaginated means no pagination pass has run yet.
	Unpaginated State = iota
	// SinglePage means all content fits one page and no manual breaks exist.
	SinglePage
	// MultiPage means manual breaks exist or content overflows one page.
	MultiPage
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case SinglePage:
		return "SinglePage"
	case MultiPage:
		return "MultiPage"
	default:
		return "Unpaginated"
	}
}

// Model reconciles manual break markers with derived automatic positions.
type Model struct {
	state State

	// known tracks every manual marker the model has seen, so markers
	// that vanish from the tree can be detected and pruned.
	known map[uuid.UUID]bool

	// positions is the reconciled ascending break list from the last
	// Update call.
	positions []float64

	pageCount int
	pruned    []uuid.UUID
}

// NewModel creates an unpaginated break model.
func NewModel() *Model {
	return &Model{
		state: Unpaginated,
		known: make(map[uuid.UUID]bool),
	}
}

// State returns the current pagination state.
func (m *Model) State() State { return m.state }

// Positions returns the reconciled break positions from the last update.
func (m *Model) Positions() []float64 { return m.positions }

// PageCount returns the page count from the last update, at least 1 once a
// pass has run.
func (m *Model) PageCount() int {
	if m.pageCount < 1 {
		return 1
	}
	return m.pageCount
}

// LastPruned returns the IDs of markers dropped by the most recent update.
func (m *Model) LastPruned() []uuid.UUID { return m.pruned }

// InsertBreak inserts a manual page-break marker before node index at and
// registers it with the model.
func (m *Model) InsertBreak(doc *model.Document, at int) (*model.PageBreak, error) {
	if doc == nil {
		return nil, fmt.Errorf("breaks: nil document")
	}
	pb := model.NewPageBreak()
	doc.InsertAt(at, pb)
	m.known[pb.ID] = true
	return pb, nil
}

// RemoveBreak removes a manual marker from the document and the model.
// It reports whether the marker existed.
func (m *Model) RemoveBreak(doc *model.Document, id uuid.UUID) bool {
	delete(m.known, id)
	if doc == nil {
		return false
	}
	return doc.RemoveBreak(id)
}

// Update runs a reconciliation pass: manual marker positions are resolved
// against the current measurement, orphaned markers are pruned, and manual
// and automatic boundaries merge into one ascending list. The resulting page
// count and state replace the previous pass's values.
func (m *Model) Update(doc *model.Document, info paginate.OverflowInfo, blocks []measure.Block) {
	m.pruned = m.pruned[:0]

	manualPx, live := m.resolveManual(doc, blocks)

	// Prune markers that no longer resolve inside the document.
	for id := range m.known {
		if !live[id] {
			delete(m.known, id)
			m.pruned = append(m.pruned, id)
		}
	}

	tolerance := halfLine(blocks)
	m.positions = reconcile(manualPx, info.BreakPositions, tolerance, info.ContentHeight)
	m.pageCount = len(m.positions) + 1

	m.renumber(doc)

	switch {
	case len(manualPx) > 0 || info.PageCount > 1 || len(m.positions) > 0:
		m.state = MultiPage
	default:
		m.state = SinglePage
	}
}

// resolveManual converts each registered manual marker still present in the
// tree to the pixel offset of its position in the flow. Markers found in the
// tree but never registered (a document loaded with embedded breaks) are
// adopted rather than dropped.
func (m *Model) resolveManual(doc *model.Document, blocks []measure.Block) ([]float64, map[uuid.UUID]bool) {
	live := make(map[uuid.UUID]bool)
	if doc == nil {
		return nil, live
	}

	var positions []float64
	for _, ref := range doc.ManualBreaks() {
		live[ref.Break.ID] = true
		m.known[ref.Break.ID] = true

		if px, ok := breakOffset(ref.Index, blocks); ok {
			positions = append(positions, px)
		}
	}
	sort.Float64s(positions)
	return positions, live
}

// breakOffset maps a break node's index to a pixel offset: the top of the
// marker's own measured block, which sits at the bottom edge of the content
// preceding it.
func breakOffset(index int, blocks []measure.Block) (float64, bool) {
	for _, b := range blocks {
		if b.Index == index {
			return b.Top, true
		}
	}
	return 0, false
}

// renumber stamps each manual marker with the 1-indexed page it ends.
func (m *Model) renumber(doc *model.Document) {
	if doc == nil {
		return
	}
	page := 1
	for _, n := range doc.Nodes {
		if pb, ok := n.(*model.PageBreak); ok && pb.Manual {
			pb.PageNumber = page
			page++
		}
	}
}

// reconcile merges manual and automatic positions into one strictly
// ascending list, dropping automatic boundaries that duplicate a manual one
// within tolerance and discarding positions outside the content extent.
func reconcile(manual, auto []float64, tolerance, contentHeight float64) []float64 {
	var merged []float64

	for _, p := range manual {
		if p > 0 && (contentHeight <= 0 || p < contentHeight) {
			merged = append(merged, p)
		}
	}

	for _, p := range auto {
		if p <= 0 || (contentHeight > 0 && p >= contentHeight) {
			continue
		}
		dup := false
		for _, q := range merged {
			if abs(p-q) <= tolerance {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, p)
		}
	}

	sort.Float64s(merged)

	// Collapse near-coincident survivors.
	out := merged[:0]
	for _, p := range merged {
		if len(out) > 0 && p-out[len(out)-1] <= tolerance {
			continue
		}
		out = append(out, p)
	}
	return out
}

// halfLine derives the duplicate tolerance from the measurement: half the
// smallest positive line height, or a small constant when no text exists.
func halfLine(blocks []measure.Block) float64 {
	min := 0.0
	for _, b := range blocks {
		if b.LineHeight > 0 && (min == 0 || b.LineHeight < min) {
			min = b.LineHeight
		}
	}
	if min == 0 {
		return 4.0
	}
	return min / 2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
