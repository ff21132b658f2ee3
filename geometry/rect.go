package geometry

// Rect is an axis-aligned rectangle in screen space (Y grows downward).
// It is the shape the content surface reports for a resolved document offset,
// used for caret-driven page detection.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical center, the reference point for mapping a
// caret rectangle to a page.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// IsValid reports whether the rectangle has non-negative dimensions.
func (r Rect) IsValid() bool {
	return r.Width >= 0 && r.Height >= 0 && isFinite(r.X) && isFinite(r.Y) &&
		isFinite(r.Width) && isFinite(r.Height)
}
