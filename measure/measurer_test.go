package measure

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/model"
)

func testContentDimensions() geometry.ContentDimensions {
	layout := geometry.DefaultPageLayout()
	pd := geometry.ResolvePageDimensions(layout)
	return geometry.ResolveContentDimensions(pd, layout.Margins, 1.0)
}

// TestMeasureEmptyDocument tests that an empty document measures to the top margin
func TestMeasureEmptyDocument(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	result, err := m.Measure(model.NewDocument(), cd)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if result.Height != cd.MarginTop {
		t.Errorf("empty document height = %v, want margin top %v", result.Height, cd.MarginTop)
	}
	if len(result.Blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(result.Blocks))
	}
}

// TestMeasureNilDocument tests the nil guard
func TestMeasureNilDocument(t *testing.T) {
	m := NewBlockMeasurer()
	if _, err := m.Measure(nil, testContentDimensions()); err == nil {
		t.Error("expected error for nil document")
	}
}

// TestMeasureParagraphLines tests wrapped line estimation
func TestMeasureParagraphLines(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "short"})
	doc.Append(&model.Paragraph{Text: strings.Repeat("كلمة طويلة جدا ", 40)})

	result, err := m.Measure(doc, cd)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	short, long := result.Blocks[0], result.Blocks[1]
	if short.Lines != 1 {
		t.Errorf("short paragraph lines = %d, want 1", short.Lines)
	}
	if long.Lines < 2 {
		t.Errorf("long paragraph lines = %d, want >= 2", long.Lines)
	}
	if long.Top != short.Bottom() {
		t.Errorf("blocks not contiguous: second top %v, first bottom %v", long.Top, short.Bottom())
	}
	if short.Top != cd.MarginTop {
		t.Errorf("first block top = %v, want margin top %v", short.Top, cd.MarginTop)
	}
}

// TestMeasureExplicitNewlines tests that newlines force line breaks
func TestMeasureExplicitNewlines(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "a\nb\nc"})

	result, _ := m.Measure(doc, cd)
	if result.Blocks[0].Lines != 3 {
		t.Errorf("3-line paragraph measured %d lines", result.Blocks[0].Lines)
	}
}

// TestMeasureHeadingTallerThanParagraph tests heading scaling
func TestMeasureHeadingTallerThanParagraph(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Heading{Text: "عنوان", Level: 1})
	doc.Append(&model.Paragraph{Text: "نص"})

	result, _ := m.Measure(doc, cd)
	if result.Blocks[0].LineHeight <= result.Blocks[1].LineHeight {
		t.Errorf("h1 line height %v not taller than paragraph %v",
			result.Blocks[0].LineHeight, result.Blocks[1].LineHeight)
	}
}

// TestMeasureTableAtomic tests table measurement
func TestMeasureTableAtomic(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Table{Rows: [][]string{{"a"}, {"b"}, {"c"}}})

	result, _ := m.Measure(doc, cd)
	b := result.Blocks[0]
	if !b.Atomic {
		t.Error("table block should be atomic")
	}
	if b.Lines != 3 {
		t.Errorf("table lines = %d, want 3 rows", b.Lines)
	}
	wantMin := 3 * DefaultConfig().TableRowHeight
	if b.Height < wantMin {
		t.Errorf("table height %v below row total %v", b.Height, wantMin)
	}
}

// TestMeasurePageBreakZeroHeight tests that markers take no flow space
func TestMeasurePageBreakZeroHeight(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "a"})
	doc.Append(model.NewPageBreak())
	doc.Append(&model.Paragraph{Text: "b"})

	result, _ := m.Measure(doc, cd)
	if result.Blocks[1].Height != 0 {
		t.Errorf("page break height = %v, want 0", result.Blocks[1].Height)
	}
}

// TestMeasureImageIntrinsicSize tests image sizing from decoded data
func TestMeasureImageIntrinsicSize(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Image{Data: buf.Bytes()})

	result, _ := m.Measure(doc, cd)
	b := result.Blocks[0]
	spacing := DefaultConfig().ParagraphSpacing
	if b.Height != 50+spacing {
		t.Errorf("100x50 image height = %v, want %v", b.Height, 50+spacing)
	}
	if !b.Atomic {
		t.Error("image block should be atomic")
	}
}

// TestMeasureImageFallback tests undecodable image data
func TestMeasureImageFallback(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Image{Data: []byte("not an image")})

	result, _ := m.Measure(doc, cd)
	want := DefaultConfig().ImageFallbackHeight + DefaultConfig().ParagraphSpacing
	if result.Blocks[0].Height != want {
		t.Errorf("fallback image height = %v, want %v", result.Blocks[0].Height, want)
	}
}

// TestMeasureWideImageScalesDown tests width-constrained scaling
func TestMeasureWideImageScalesDown(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Image{Width: cd.AvailableWidth() * 2, Height: 100})

	result, _ := m.Measure(doc, cd)
	spacing := DefaultConfig().ParagraphSpacing
	got := result.Blocks[0].Height - spacing
	if got >= 100 {
		t.Errorf("over-wide image not scaled down: height %v", got)
	}
	if got < 45 || got > 55 {
		t.Errorf("expected roughly half height, got %v", got)
	}
}

// TestMeasureZoomScalesText tests that doubling zoom doubles text height
func TestMeasureZoomScalesText(t *testing.T) {
	layout := geometry.DefaultPageLayout()
	pd := geometry.ResolvePageDimensions(layout)
	cd1 := geometry.ResolveContentDimensions(pd, layout.Margins, 1.0)
	cd2 := geometry.ResolveContentDimensions(pd, layout.Margins, 2.0)

	m := NewBlockMeasurer()
	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "ثابت"})

	r1, _ := m.Measure(doc, cd1)
	r2, _ := m.Measure(doc, cd2)

	if r2.Blocks[0].LineHeight != 2*r1.Blocks[0].LineHeight {
		t.Errorf("zoom 2 line height %v != 2x zoom 1 %v",
			r2.Blocks[0].LineHeight, r1.Blocks[0].LineHeight)
	}
}

// TestNodeRect tests caret rect resolution
func TestNodeRect(t *testing.T) {
	m := NewBlockMeasurer()
	cd := testContentDimensions()

	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "first"})
	doc.Append(&model.Paragraph{Text: "second"})

	rect, err := m.NodeRect(doc, 1, cd)
	if err != nil {
		t.Fatalf("NodeRect failed: %v", err)
	}

	result, _ := m.Measure(doc, cd)
	if rect.Y != result.Blocks[1].Top {
		t.Errorf("rect Y = %v, want block top %v", rect.Y, result.Blocks[1].Top)
	}
	if rect.Height != result.Blocks[1].LineHeight {
		t.Errorf("rect height = %v, want line height %v", rect.Height, result.Blocks[1].LineHeight)
	}

	if _, err := m.NodeRect(doc, 5, cd); err == nil {
		t.Error("expected error for out-of-range index")
	}
}
