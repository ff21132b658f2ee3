package geometry

// Physical page sizes in millimeters.
const (
	a4WidthMm      = 210.0
	a4HeightMm     = 297.0
	letterWidthMm  = 215.9
	letterHeightMm = 279.4
)

// PageSize identifies a physical page format.
type PageSize int

const (
	SizeA4 PageSize = iota
	SizeLetter
	SizeCustom
)

// String returns the page size name.
func (s PageSize) String() string {
	switch s {
	case SizeA4:
		return "A4"
	case SizeLetter:
		return "Letter"
	case SizeCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Orientation is the page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns "portrait" or "landscape".
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Margins holds the four page margins in millimeters. Left and Right are
// semantic values: in an RTL document the Right margin is the one the text
// anchors against.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Clamp returns a copy with every margin clamped to the allowed range.
func (m Margins) Clamp() Margins {
	return Margins{
		Top:    ClampMargin(m.Top),
		Bottom: ClampMargin(m.Bottom),
		Left:   ClampMargin(m.Left),
		Right:  ClampMargin(m.Right),
	}
}

// PageLayout is the page configuration owned by the hosting editor session.
// It is mutated only through the ruler controller or explicit page-setup
// edits; everything else derives from it.
type PageLayout struct {
	Size PageSize

	// CustomWidth and CustomHeight are used only when Size is SizeCustom.
	CustomWidth  float64
	CustomHeight float64

	Orientation Orientation
	Margins     Margins

	ShowMarginGuides bool
}

// DefaultPageLayout returns an A4 portrait layout with 20mm margins and
// visible margin guides.
func DefaultPageLayout() PageLayout {
	return PageLayout{
		Size:        SizeA4,
		Orientation: Portrait,
		Margins: Margins{
			Top:    20,
			Bottom: 20,
			Left:   20,
			Right:  20,
		},
		ShowMarginGuides: true,
	}
}

// PageDimensions is the derived pixel-space page size at 1:1 scale.
// It is recomputed whenever the layout changes and never persisted.
type PageDimensions struct {
	Width  float64
	Height float64
}

// ContentDimensions carries the zoomed page dimensions together with the
// margins converted to pixels at the same zoom. The flowable area is the page
// minus the opposing margins; see AvailableWidth and AvailableHeight.
type ContentDimensions struct {
	Width  float64
	Height float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// AvailableWidth is the horizontal space left for flowed content.
func (c ContentDimensions) AvailableWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}

// AvailableHeight is the vertical space one page offers to flowed content.
func (c ContentDimensions) AvailableHeight() float64 {
	return c.Height - c.MarginTop - c.MarginBottom
}

// SizeMm returns the physical page dimensions in millimeters with the
// orientation applied. Invalid custom dimensions fall back to A4; the result
// never contains NaN or infinities.
func (l PageLayout) SizeMm() (widthMm, heightMm float64) {
	switch l.Size {
	case SizeLetter:
		widthMm, heightMm = letterWidthMm, letterHeightMm
	case SizeCustom:
		widthMm = ClampCustomSize(l.CustomWidth)
		heightMm = ClampCustomSize(l.CustomHeight)
		if l.CustomWidth <= 0 || l.CustomHeight <= 0 ||
			!isFinite(l.CustomWidth) || !isFinite(l.CustomHeight) {
			widthMm, heightMm = a4WidthMm, a4HeightMm
		}
	default:
		widthMm, heightMm = a4WidthMm, a4HeightMm
	}

	if l.Orientation == Landscape {
		widthMm, heightMm = heightMm, widthMm
	}
	return widthMm, heightMm
}

// ResolvePageDimensions converts a page layout to pixel dimensions at 1:1
// scale.
func ResolvePageDimensions(layout PageLayout) PageDimensions {
	widthMm, heightMm := layout.SizeMm()
	return PageDimensions{
		Width:  widthMm * PxPerMm,
		Height: heightMm * PxPerMm,
	}
}

// ResolveContentDimensions applies zoom to the page dimensions and converts
// the margins to pixels at the same zoom. Margins are clamped before
// conversion so an out-of-range stored value cannot produce a negative
// flowable area larger than the page itself.
func ResolveContentDimensions(pd PageDimensions, margins Margins, zoom float64) ContentDimensions {
	z := sanitizeZoom(zoom)
	m := margins.Clamp()

	return ContentDimensions{
		Width:        pd.Width * z,
		Height:       pd.Height * z,
		MarginTop:    MmToPx(m.Top, z),
		MarginBottom: MmToPx(m.Bottom, z),
		MarginLeft:   MmToPx(m.Left, z),
		MarginRight:  MmToPx(m.Right, z),
	}
}
