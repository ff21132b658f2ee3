package printout

import "github.com/google/uuid"

// PrintPage describes one vertical slice of the content surface. The
// renderer clones the content once per page, shifts the clone up by
// TranslateY, and clips it to Height, so each clone shows exactly its
// page's band.
type PrintPage struct {
	ID    uuid.UUID
	Index int

	// TranslateY is the vertical shift to apply to the cloned
	// content, always zero or negative.
	TranslateY float64

	// Height is the visible height of the slice.
	Height float64
}

// SlicePages converts break positions into print slices covering the
// full content height. Positions must be ascending and inside
// (0, contentHeight), as the break model produces them; a document
// with no breaks yields a single full-height slice.
func SlicePages(positions []float64, contentHeight float64) []PrintPage {
	if contentHeight < 0 {
		contentHeight = 0
	}
	pages := make([]PrintPage, len(positions)+1)

	start := 0.0
	for i := range pages {
		end := contentHeight
		if i < len(positions) {
			end = positions[i]
		}
		pages[i] = PrintPage{
			ID:         uuid.New(),
			Index:      i,
			TranslateY: -start,
			Height:     end - start,
		}
		start = end
	}
	return pages
}
