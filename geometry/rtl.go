package geometry

// Padding is the visual padding applied to the rendered content box, in the
// same unit as the margins it was derived from. Unlike Margins, Left and
// Right here are visual (screen) values.
type Padding struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Padding maps semantic margins to visual padding. Under RTL the text anchors
// to the right page edge, so the visual left padding comes from the semantic
// right margin and vice versa. Top and bottom are axis-symmetric.
func (m Margins) Padding(rtl bool) Padding {
	p := Padding{
		Top:    m.Top,
		Bottom: m.Bottom,
		Left:   m.Left,
		Right:  m.Right,
	}
	if rtl {
		p.Left, p.Right = m.Right, m.Left
	}
	return p
}

// HandlePositions holds the visual X positions of the left and right margin
// ruler handles, in pixels from the visual left edge of the page.
type HandlePositions struct {
	VisualLeft  float64
	VisualRight float64
}

// RulerHandlePositions computes where the horizontal ruler handles sit on
// screen. It applies the same semantic-to-visual inversion as
// [Margins.Padding]: under RTL the left handle tracks the semantic right
// margin and the right handle tracks the semantic left margin. Ruler handles
// and rendered text padding therefore always move together.
func RulerHandlePositions(pageWidthPx, leftMarginPx, rightMarginPx float64, rtl bool) HandlePositions {
	if rtl {
		return HandlePositions{
			VisualLeft:  rightMarginPx,
			VisualRight: pageWidthPx - leftMarginPx,
		}
	}
	return HandlePositions{
		VisualLeft:  leftMarginPx,
		VisualRight: pageWidthPx - rightMarginPx,
	}
}

// MarginsFromHandles is the inverse of [RulerHandlePositions]: it recovers
// semantic left/right margin pixel values from visual handle positions.
// Round-tripping through both functions returns the original margins.
func MarginsFromHandles(h HandlePositions, pageWidthPx float64, rtl bool) (leftMarginPx, rightMarginPx float64) {
	if rtl {
		return pageWidthPx - h.VisualRight, h.VisualLeft
	}
	return h.VisualLeft, pageWidthPx - h.VisualRight
}
