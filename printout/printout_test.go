package printout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/model"
)

// TestSlicePages tests translate/height derivation from break positions
func TestSlicePages(t *testing.T) {
	pages := SlicePages([]float64{971.8, 1943.6}, 2000)
	if len(pages) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(pages))
	}

	tests := []struct {
		index      int
		translateY float64
		height     float64
	}{
		{0, 0, 971.8},
		{1, -971.8, 971.8},
		{2, -1943.6, 56.4},
	}

	for _, tt := range tests {
		p := pages[tt.index]
		if p.Index != tt.index {
			t.Errorf("slice %d has index %d", tt.index, p.Index)
		}
		if !approx(p.TranslateY, tt.translateY) {
			t.Errorf("slice %d translateY = %v, want %v", tt.index, p.TranslateY, tt.translateY)
		}
		if !approx(p.Height, tt.height) {
			t.Errorf("slice %d height = %v, want %v", tt.index, p.Height, tt.height)
		}
	}

	if pages[0].ID == pages[1].ID {
		t.Error("slices share an ID")
	}
}

// TestSlicePagesSinglePage tests a document with no breaks
func TestSlicePagesSinglePage(t *testing.T) {
	pages := SlicePages(nil, 500)
	if len(pages) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(pages))
	}
	if pages[0].TranslateY != 0 || pages[0].Height != 500 {
		t.Errorf("slice = {%v, %v}, want {0, 500}", pages[0].TranslateY, pages[0].Height)
	}
}

// TestSlicePagesCoverage tests the slices tiling the full content height
func TestSlicePagesCoverage(t *testing.T) {
	positions := []float64{300, 800, 1500}
	pages := SlicePages(positions, 1800)

	var total float64
	for _, p := range pages {
		if p.Height <= 0 {
			t.Errorf("slice %d has non-positive height %v", p.Index, p.Height)
		}
		if p.TranslateY > 0 {
			t.Errorf("slice %d has positive translateY %v", p.Index, p.TranslateY)
		}
		total += p.Height
	}
	if !approx(total, 1800) {
		t.Errorf("slice heights sum to %v, want 1800", total)
	}
}

// TestExportPDF tests a full export producing a well-formed PDF
func TestExportPDF(t *testing.T) {
	doc := model.NewDocument()
	doc.Title = "تقرير"
	doc.Append(&model.Heading{Text: "العنوان", Level: 1})
	doc.Append(&model.Paragraph{Text: "فقرة أولى من النص العربي."})
	doc.Append(&model.List{Items: []model.ListItem{{Text: "بند"}, {Text: "بند آخر"}}})
	doc.Append(&model.Table{Rows: [][]string{{"خلية", "خلية"}, {"أ", "ب"}}})
	doc.Append(model.NewPageBreak())
	doc.Append(&model.Paragraph{Text: "صفحة ثانية."})

	var buf bytes.Buffer
	err := NewExporter().Export(doc, geometry.DefaultPageLayout(), &buf)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

// TestExportNilDocument tests the nil guard
func TestExportNilDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().Export(nil, geometry.DefaultPageLayout(), &buf); err == nil {
		t.Error("expected error for nil document")
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
