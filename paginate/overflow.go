package paginate

import (
	"math"

	"github.com/waraq/waraq/geometry"
)

// OverflowInfo describes the pagination state of flowed content against the
// current page geometry. It is recomputed on every pagination pass and owned
// by the engine; consumers read it and never mutate it.
type OverflowInfo struct {
	// IsOverflowing reports whether the content exceeds one page.
	IsOverflowing bool

	// OverflowAmount is how many pixels of content exceed the first page.
	OverflowAmount float64

	// PageCount is the number of pages, always >= 1.
	PageCount int

	// ContentHeight is the measured flowed content height in pixels.
	ContentHeight float64

	// AvailableHeight is the per-page flow area in pixels.
	AvailableHeight float64

	// BreakPositions holds PageCount-1 strictly ascending pixel offsets
	// from the top of the flowed content.
	BreakPositions []float64
}

// Compute derives pagination state from a measured content height and the
// resolved content dimensions. It is pure and never fails: degenerate input
// (negative height, non-positive available area, non-finite values) collapses
// to a single non-overflowing page.
func Compute(contentHeight float64, cd geometry.ContentDimensions) OverflowInfo {
	avail := cd.AvailableHeight()

	if !finite(contentHeight) || contentHeight < 0 {
		contentHeight = 0
	}

	if !finite(avail) || avail <= 0 {
		return OverflowInfo{
			PageCount:       1,
			ContentHeight:   contentHeight,
			AvailableHeight: 0,
		}
	}

	pageCount := int(math.Ceil(contentHeight / avail))
	if pageCount < 1 {
		pageCount = 1
	}

	info := OverflowInfo{
		IsOverflowing:   contentHeight > avail,
		OverflowAmount:  math.Max(0, contentHeight-avail),
		PageCount:       pageCount,
		ContentHeight:   contentHeight,
		AvailableHeight: avail,
	}

	if pageCount > 1 {
		info.BreakPositions = make([]float64, 0, pageCount-1)
		for i := 1; i < pageCount; i++ {
			info.BreakPositions = append(info.BreakPositions, float64(i)*avail+cd.MarginTop)
		}
	}

	return info
}

// PageStart returns the content-relative pixel offset where page i begins.
// Page 0 starts at the top of the flow.
func (o OverflowInfo) PageStart(i int) float64 {
	if i <= 0 || len(o.BreakPositions) == 0 {
		return 0
	}
	if i > len(o.BreakPositions) {
		i = len(o.BreakPositions)
	}
	return o.BreakPositions[i-1]
}

// PageEnd returns the content-relative pixel offset where page i ends.
func (o OverflowInfo) PageEnd(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(o.BreakPositions) {
		return o.ContentHeight
	}
	return o.BreakPositions[i]
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
