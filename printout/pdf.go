package printout

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/model"
)

// ExportConfig holds the PDF rendering parameters.
type ExportConfig struct {
	// FontFamily is a core PDF font family name.
	FontFamily string

	// FontSize is the body size in points; headings scale from it.
	FontSize float64

	// LineHeight is the body line height in millimetres.
	LineHeight float64

	// TableRowHeight is the table row height in millimetres.
	TableRowHeight float64
}

// DefaultExportConfig returns the standard export settings.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		FontFamily:     "Helvetica",
		FontSize:       11,
		LineHeight:     6,
		TableRowHeight: 8,
	}
}

// Exporter writes paginated documents to PDF.
type Exporter struct {
	cfg ExportConfig
}

// NewExporter creates an Exporter with default settings.
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultExportConfig())
}

// NewExporterWithConfig creates an Exporter with the given settings.
// Zero fields fall back to their defaults.
func NewExporterWithConfig(cfg ExportConfig) *Exporter {
	def := DefaultExportConfig()
	if cfg.FontFamily == "" {
		cfg.FontFamily = def.FontFamily
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = def.LineHeight
	}
	if cfg.TableRowHeight <= 0 {
		cfg.TableRowHeight = def.TableRowHeight
	}
	return &Exporter{cfg: cfg}
}

// Export renders the document to PDF using the layout's page geometry
// and direction, writing the result to w. Manual page-break markers
// force a new page; everything else flows with automatic page breaks
// at the bottom margin.
func (e *Exporter) Export(doc *model.Document, layout geometry.PageLayout, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("printout: nil document")
	}

	wMm, hMm := layout.SizeMm()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: wMm, Ht: hMm},
	})

	m := layout.Margins.Clamp()
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom)

	rtl := doc.IsRTL()
	if rtl {
		pdf.RTL()
	}
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}

	pdf.SetFont(e.cfg.FontFamily, "", e.cfg.FontSize)
	pdf.AddPage()

	for _, node := range doc.Nodes {
		e.renderNode(pdf, node, rtl)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("printout: render failed: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("printout: write failed: %w", err)
	}
	return nil
}

func (e *Exporter) renderNode(pdf *fpdf.Fpdf, node model.Node, rtl bool) {
	align := "L"
	if rtl {
		align = "R"
	}

	switch n := node.(type) {
	case *model.Paragraph:
		style := ""
		if n.Style.Bold {
			style += "B"
		}
		if n.Style.Italic {
			style += "I"
		}
		pdf.SetFont(e.cfg.FontFamily, style, e.cfg.FontSize)
		pdf.MultiCell(0, e.cfg.LineHeight, n.Text, "", align, false)
		pdf.Ln(e.cfg.LineHeight / 2)

	case *model.Heading:
		size := e.cfg.FontSize * headingScale(n.Level)
		pdf.SetFont(e.cfg.FontFamily, "B", size)
		pdf.MultiCell(0, e.cfg.LineHeight*1.4, n.Text, "", align, false)
		pdf.Ln(e.cfg.LineHeight / 2)
		pdf.SetFont(e.cfg.FontFamily, "", e.cfg.FontSize)

	case *model.List:
		pdf.SetFont(e.cfg.FontFamily, "", e.cfg.FontSize)
		for i, item := range n.Items {
			marker := "-"
			if n.Ordered {
				marker = fmt.Sprintf("%d.", i+1)
			}
			pdf.MultiCell(0, e.cfg.LineHeight, marker+" "+item.Text, "", align, false)
		}
		pdf.Ln(e.cfg.LineHeight / 2)

	case *model.Table:
		e.renderTable(pdf, n, rtl)

	case *model.Image:
		e.renderImage(pdf, n)

	case *model.PageBreak:
		if n.Manual {
			pdf.AddPage()
		}
	}
}

func (e *Exporter) renderTable(pdf *fpdf.Fpdf, table *model.Table, rtl bool) {
	cols := table.ColumnCount()
	if cols == 0 {
		return
	}
	align := "L"
	if rtl {
		align = "R"
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	cellW := (pageW - left - right) / float64(cols)

	pdf.SetFont(e.cfg.FontFamily, "", e.cfg.FontSize)
	for _, row := range table.Rows {
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			pdf.CellFormat(cellW, e.cfg.TableRowHeight, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(e.cfg.TableRowHeight)
	}
	pdf.Ln(e.cfg.LineHeight / 2)
}

// renderImage embeds the image scaled to the content width, skipping
// formats the PDF writer cannot carry.
func (e *Exporter) renderImage(pdf *fpdf.Fpdf, img *model.Image) {
	if len(img.Data) == 0 {
		return
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return
	}
	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return
	}

	name := fmt.Sprintf("img-%p", img)
	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageW - left - right

	pdf.ImageOptions(name, left, pdf.GetY(), width, 0, true, opts, 0, "")
	pdf.Ln(e.cfg.LineHeight / 2)
}

func headingScale(level int) float64 {
	switch level {
	case 1:
		return 1.8
	case 2:
		return 1.5
	case 3:
		return 1.3
	case 4:
		return 1.15
	default:
		return 1.05
	}
}
