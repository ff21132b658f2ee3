package measure

import (
	"fmt"
	"math"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/model"
)

// Block describes one measured block of flowed content. Top is the pixel
// offset of the block from the top of the flow (margin included), matching
// the coordinate space of break positions.
type Block struct {
	Index  int
	Type   model.NodeType
	Top    float64
	Height float64

	// Lines is the number of rendered lines the block occupies. Zero for
	// non-text blocks.
	Lines int

	// LineHeight is the per-line advance for text blocks, zero otherwise.
	LineHeight float64

	// Atomic marks blocks that must not be split across a page boundary
	// (images, tables treated row-wise by the snapper).
	Atomic bool
}

// Bottom returns the pixel offset just past the block.
func (b Block) Bottom() float64 { return b.Top + b.Height }

// Measurement is the result of measuring a document against content geometry.
type Measurement struct {
	// Height is the total flowed content height in pixels, margin-top
	// inclusive at the origin (the first block starts at MarginTop).
	Height float64

	Blocks []Block

	// LineCount is the total estimated number of text lines.
	LineCount int
}

// Measurer is the contract the pagination engine consumes from the content
// surface: a measurable rendered height for the flowed content and a way to
// resolve a node position to a pixel rectangle for caret-based detection.
// A live editor adapts its rendering surface to this interface; the headless
// [BlockMeasurer] implements it from the content tree alone.
type Measurer interface {
	Measure(doc *model.Document, cd geometry.ContentDimensions) (Measurement, error)
	NodeRect(doc *model.Document, index int, cd geometry.ContentDimensions) (geometry.Rect, error)
}

// Config holds the typographic constants the reference measurer estimates
// with. All values are pixels at zoom 1; the measurer scales them by the
// effective zoom derived from the content dimensions.
type Config struct {
	// FontSize is the body text size.
	FontSize float64

	// LineHeightFactor multiplies the font size to get the line advance.
	LineHeightFactor float64

	// CharWidthFactor multiplies the font size to approximate the average
	// character advance for wrapping estimates.
	CharWidthFactor float64

	// ParagraphSpacing is the vertical gap after a paragraph.
	ParagraphSpacing float64

	// HeadingScale maps heading level (1-6) to a font-size multiplier.
	HeadingScale [6]float64

	// TableRowHeight is the height of one table row.
	TableRowHeight float64

	// ListItemIndent narrows the wrap width per nesting level.
	ListItemIndent float64

	// ImageFallbackHeight is used when an image cannot be sized.
	ImageFallbackHeight float64

	// MaxImageHeight caps a scaled image at a fraction of the available
	// page height so a single image cannot exceed one page.
	MaxImageHeightFraction float64
}

// DefaultConfig returns measurement constants matching a 16px body font with
// 1.5 line height.
func DefaultConfig() Config {
	return Config{
		FontSize:               16,
		LineHeightFactor:       1.5,
		CharWidthFactor:        0.5,
		ParagraphSpacing:       8,
		HeadingScale:           [6]float64{2.0, 1.5, 1.25, 1.1, 1.0, 0.9},
		TableRowHeight:         32,
		ListItemIndent:         24,
		ImageFallbackHeight:    150,
		MaxImageHeightFraction: 1.0,
	}
}

// BlockMeasurer is the headless reference implementation of [Measurer].
type BlockMeasurer struct {
	config Config
}

// NewBlockMeasurer creates a measurer with default typographic constants.
func NewBlockMeasurer() *BlockMeasurer {
	return &BlockMeasurer{config: DefaultConfig()}
}

// NewBlockMeasurerWithConfig creates a measurer with custom constants.
func NewBlockMeasurerWithConfig(config Config) *BlockMeasurer {
	return &BlockMeasurer{config: config}
}

// Measure walks the document and accumulates block geometry. The first block
// starts at the top margin; the returned height spans from the flow origin to
// the bottom of the last block.
func (m *BlockMeasurer) Measure(doc *model.Document, cd geometry.ContentDimensions) (Measurement, error) {
	if doc == nil {
		return Measurement{}, fmt.Errorf("measure: nil document")
	}

	availWidth := cd.AvailableWidth()
	if availWidth <= 0 || !finite(availWidth) {
		return Measurement{}, fmt.Errorf("measure: non-positive available width %.2f", availWidth)
	}

	zoom := m.zoomFrom(cd)
	result := Measurement{Blocks: make([]Block, 0, len(doc.Nodes))}
	y := cd.MarginTop

	for i, n := range doc.Nodes {
		b := m.measureNode(n, availWidth, cd, zoom)
		b.Index = i
		b.Top = y
		result.Blocks = append(result.Blocks, b)
		result.LineCount += b.Lines
		y += b.Height
	}

	result.Height = y
	return result, nil
}

// NodeRect resolves a node index to the pixel rectangle of its first line,
// the caret reference the synchronizer consumes.
func (m *BlockMeasurer) NodeRect(doc *model.Document, index int, cd geometry.ContentDimensions) (geometry.Rect, error) {
	result, err := m.Measure(doc, cd)
	if err != nil {
		return geometry.Rect{}, err
	}
	if index < 0 || index >= len(result.Blocks) {
		return geometry.Rect{}, fmt.Errorf("measure: node index %d out of range [0, %d)", index, len(result.Blocks))
	}

	b := result.Blocks[index]
	h := b.LineHeight
	if h == 0 {
		h = b.Height
	}
	return geometry.Rect{
		X:      cd.MarginLeft,
		Y:      b.Top,
		Width:  cd.AvailableWidth(),
		Height: h,
	}, nil
}

// zoomFrom derives the effective zoom from the content dimensions by
// comparing against the unscaled A4-class width range. The measurer's
// constants are zoom-1 pixels, so text grows with the page.
func (m *BlockMeasurer) zoomFrom(cd geometry.ContentDimensions) float64 {
	// Margins scale linearly with zoom; the page width does too. Without
	// the original layout we normalize on a 210mm page at 96 DPI, which is
	// exact for A4 and close enough for Letter-class pages.
	z := cd.Width / (210 * geometry.PxPerMm)
	if !finite(z) || z <= 0 {
		return 1.0
	}
	return z
}

func (m *BlockMeasurer) measureNode(n model.Node, availWidth float64, cd geometry.ContentDimensions, zoom float64) Block {
	cfg := m.config

	switch node := n.(type) {
	case *model.Paragraph:
		lineHeight := cfg.FontSize * cfg.LineHeightFactor * zoom
		lines := m.estimateLines(node.Text, availWidth, zoom)
		return Block{
			Type:       model.NodeParagraph,
			Height:     float64(lines)*lineHeight + cfg.ParagraphSpacing*zoom,
			Lines:      lines,
			LineHeight: lineHeight,
		}

	case *model.Heading:
		scale := 1.0
		if node.Level >= 1 && node.Level <= 6 {
			scale = cfg.HeadingScale[node.Level-1]
		}
		lineHeight := cfg.FontSize * scale * cfg.LineHeightFactor * zoom
		lines := m.estimateLinesAt(node.Text, availWidth, cfg.FontSize*scale, zoom)
		return Block{
			Type:       model.NodeHeading,
			Height:     float64(lines)*lineHeight + cfg.ParagraphSpacing*zoom,
			Lines:      lines,
			LineHeight: lineHeight,
		}

	case *model.List:
		lineHeight := cfg.FontSize * cfg.LineHeightFactor * zoom
		lines := 0
		for _, item := range node.Items {
			w := availWidth - float64(item.Level+1)*cfg.ListItemIndent*zoom
			if w < cfg.FontSize*zoom {
				w = cfg.FontSize * zoom
			}
			lines += m.estimateLines(item.Text, w, zoom)
		}
		return Block{
			Type:       model.NodeList,
			Height:     float64(lines)*lineHeight + cfg.ParagraphSpacing*zoom,
			Lines:      lines,
			LineHeight: lineHeight,
		}

	case *model.Table:
		rows := node.RowCount()
		return Block{
			Type:   model.NodeTable,
			Height: float64(rows)*cfg.TableRowHeight*zoom + cfg.ParagraphSpacing*zoom,
			Lines:  rows,
			// Row-level breaking is handled by the snapper; the block as
			// a whole still resists arbitrary splits.
			LineHeight: cfg.TableRowHeight * zoom,
			Atomic:     true,
		}

	case *model.Image:
		h := m.imageHeight(node, availWidth, cd, zoom)
		return Block{
			Type:   model.NodeImage,
			Height: h + cfg.ParagraphSpacing*zoom,
			Atomic: true,
		}

	case *model.PageBreak:
		// The marker itself occupies no flow height; the breaks package
		// turns it into a boundary.
		return Block{Type: model.NodePageBreak}

	default:
		return Block{Type: model.NodeUnknown}
	}
}

// estimateLines approximates wrapped line count for body text.
func (m *BlockMeasurer) estimateLines(text string, availWidth, zoom float64) int {
	return m.estimateLinesAt(text, availWidth, m.config.FontSize, zoom)
}

// estimateLinesAt approximates wrapped line count at a given font size using
// an average character advance. Explicit newlines always wrap.
func (m *BlockMeasurer) estimateLinesAt(text string, availWidth, fontSize, zoom float64) int {
	charWidth := fontSize * m.config.CharWidthFactor * zoom
	perLine := int(availWidth / charWidth)
	if perLine < 1 {
		perLine = 1
	}

	lines := 0
	runs := splitLines(text)
	for _, run := range runs {
		n := len([]rune(run))
		if n == 0 {
			lines++
			continue
		}
		lines += int(math.Ceil(float64(n) / float64(perLine)))
	}
	if lines < 1 {
		lines = 1
	}
	return lines
}

func splitLines(s string) []string {
	var runs []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			runs = append(runs, s[start:i])
			start = i + 1
		}
	}
	runs = append(runs, s[start:])
	return runs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
