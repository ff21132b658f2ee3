package breaks

import (
	"github.com/google/uuid"

	"github.com/waraq/waraq/measure"
	"github.com/waraq/waraq/model"
)

// Page is one logical page produced by splitting the document at break
// positions: the node subtrees whose measured extent falls on that page.
type Page struct {
	ID    uuid.UUID
	Index int
	Nodes []model.Node

	// Start and End are the content-relative pixel extents of the page.
	Start float64
	End   float64
}

// SplitIntoPages assigns each measured block to a page by its top edge.
// A block straddling a boundary belongs to the page it starts on; the print
// compositor clips the overhang. Break positions must be ascending, as
// produced by [Model.Update]. Zero-height marker blocks attach to the page
// they end.
func SplitIntoPages(doc *model.Document, blocks []measure.Block, positions []float64, contentHeight float64) []Page {
	count := len(positions) + 1
	pages := make([]Page, count)

	for i := range pages {
		pages[i] = Page{
			ID:    uuid.New(),
			Index: i,
			Start: pageStart(i, positions),
			End:   pageEnd(i, positions, contentHeight),
		}
	}

	if doc == nil {
		return pages
	}

	for _, b := range blocks {
		if b.Index < 0 || b.Index >= len(doc.Nodes) {
			continue
		}
		p := pageFor(b, positions)
		pages[p].Nodes = append(pages[p].Nodes, doc.Nodes[b.Index])
	}

	return pages
}

// pageFor returns the page index a block starts on.
func pageFor(b measure.Block, positions []float64) int {
	page := 0
	for _, pos := range positions {
		ref := b.Top
		if b.Height == 0 {
			// A zero-height marker exactly on a boundary ends the
			// page before it.
			if ref <= pos {
				break
			}
		} else if ref < pos {
			break
		}
		page++
	}
	return page
}

func pageStart(i int, positions []float64) float64 {
	if i == 0 {
		return 0
	}
	return positions[i-1]
}

func pageEnd(i int, positions []float64, contentHeight float64) float64 {
	if i < len(positions) {
		return positions[i]
	}
	return contentHeight
}
