package paginate

import (
	"math"

	"github.com/waraq/waraq/measure"
)

// SnapConfig controls break-position refinement.
type SnapConfig struct {
	// WindowFraction bounds how far back (as a fraction of the available
	// height) a break may move from its naive position before the snap is
	// abandoned.
	WindowFraction float64

	// MinLines is the orphan/widow minimum: a break inside a text block
	// must leave at least this many lines on each side.
	MinLines int
}

// DefaultSnapConfig returns the policy used by the engine: a 25% search
// window and a 2-line orphan/widow minimum.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		WindowFraction: 0.25,
		MinLines:       2,
	}
}

// Refine snaps each naive break position to an acceptable block or line
// boundary per the package's orphan/widow policy. Positions that cannot be
// improved within the search window keep their naive value, and the result
// always stays strictly ascending with the same page count.
func Refine(info OverflowInfo, blocks []measure.Block, cfg SnapConfig) OverflowInfo {
	if len(info.BreakPositions) == 0 || len(blocks) == 0 {
		return info
	}

	window := cfg.WindowFraction * info.AvailableHeight
	if window <= 0 {
		return info
	}

	refined := make([]float64, len(info.BreakPositions))
	prev := 0.0

	for i, naive := range info.BreakPositions {
		pos := snapPosition(naive, blocks, window, cfg.MinLines)
		if pos <= prev {
			pos = naive
		}
		if pos <= prev {
			// Degenerate measurement; keep monotonicity at all costs.
			pos = math.Nextafter(prev, math.Inf(1))
		}
		refined[i] = pos
		prev = pos
	}

	out := info
	out.BreakPositions = refined
	return out
}

// snapPosition finds the best boundary at or before the naive position.
func snapPosition(naive float64, blocks []measure.Block, window float64, minLines int) float64 {
	b, ok := blockAt(naive, blocks)
	if !ok {
		return naive
	}

	// A break landing exactly on the block's top edge is already a boundary.
	if naive == b.Top {
		return naive
	}

	var candidate float64
	switch {
	case b.Atomic && b.LineHeight <= 0:
		// Unsplittable block (image): break before it.
		candidate = b.Top

	case b.Lines > 0 && b.LineHeight > 0:
		candidate = lineBoundary(naive, b, minLines)

	default:
		// Zero-height markers and unknown blocks snap to their edge.
		candidate = b.Top
	}

	if naive-candidate > window {
		return naive
	}
	return candidate
}

// lineBoundary picks the nearest preceding line (or table-row) boundary that
// satisfies the orphan/widow minimum, falling back to the block's top edge
// when the block cannot be split acceptably.
func lineBoundary(naive float64, b measure.Block, minLines int) float64 {
	linesBefore := int(math.Floor((naive - b.Top) / b.LineHeight))

	// Too few lines would carry to the next page; pull the break earlier
	// so at least minLines travel together.
	if b.Lines-linesBefore < minLines {
		linesBefore = b.Lines - minLines
	}

	// Too few lines would stay behind; the block cannot be split.
	if linesBefore < minLines {
		return b.Top
	}

	return b.Top + float64(linesBefore)*b.LineHeight
}

// blockAt returns the block whose vertical extent contains pos.
func blockAt(pos float64, blocks []measure.Block) (measure.Block, bool) {
	for _, b := range blocks {
		if b.Height <= 0 {
			continue
		}
		if pos >= b.Top && pos < b.Bottom() {
			return b, true
		}
	}
	return measure.Block{}, false
}
