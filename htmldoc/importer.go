package htmldoc

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/waraq/waraq/model"
	"github.com/waraq/waraq/text"
)

// pageBreakClass marks a div as a manual page-break element.
const pageBreakClass = "page-break"

// Open imports an HTML file as a pagination document.
func Open(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse imports HTML from an io.Reader as a pagination document.
func Parse(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	imp := &importer{doc: model.NewDocument()}
	imp.doc.Title = titleOf(root)

	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	imp.walk(body)
	imp.flushList()

	switch explicitDirection(root) {
	case "rtl":
		imp.doc.Direction = text.RTL
	case "ltr":
		imp.doc.Direction = text.LTR
	default:
		imp.doc.DetectDirection()
	}

	return imp.doc, nil
}

// importer accumulates block nodes while walking the DOM. List items
// collect across sibling ul/ol nesting and flush as one List node when
// a non-list block appears.
type importer struct {
	doc *model.Document

	listItems   []model.ListItem
	listOrdered bool
	listLevel   int
	inList      bool
}

func (p *importer) walk(n *html.Node) {
	if n.Type != html.ElementNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c)
		}
		return
	}
	if skipElement(n.Data) {
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		p.flushList()
		if t := textContent(n); t != "" {
			p.doc.Append(&model.Heading{Text: t, Level: int(n.Data[1] - '0')})
		}

	case "p":
		p.flushList()
		if t := textContent(n); t != "" {
			p.doc.Append(&model.Paragraph{Text: t, Style: inlineStyle(n)})
		}

	case "div":
		if hasClass(n, pageBreakClass) {
			p.flushList()
			p.doc.Append(p.breakMarker(n))
			return
		}
		if isBlockContainer(n) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.walk(c)
			}
			return
		}
		p.flushList()
		if t := textContent(n); t != "" {
			p.doc.Append(&model.Paragraph{Text: t})
		}

	case "ul", "ol":
		nested := p.inList
		if !nested {
			p.inList = true
			p.listOrdered = n.Data == "ol"
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c)
		}
		if !nested {
			p.flushList()
		}

	case "li":
		if !p.inList {
			return
		}
		if t := directTextContent(n); t != "" {
			p.listItems = append(p.listItems, model.ListItem{Text: t, Level: p.listLevel})
		}
		p.listLevel++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				p.walk(c)
			}
		}
		p.listLevel--

	case "table":
		p.flushList()
		if rows := tableRows(n); len(rows) > 0 {
			p.doc.Append(&model.Table{Rows: rows})
		}

	case "img":
		p.flushList()
		if img := imageNode(n); img != nil {
			p.doc.Append(img)
		}

	case "blockquote", "pre":
		p.flushList()
		if t := textContent(n); t != "" {
			p.doc.Append(&model.Paragraph{Text: t})
		}

	case "article", "section", "main", "header", "footer", "aside", "nav":
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c)
		}

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c)
		}
	}
}

func (p *importer) flushList() {
	if p.inList && len(p.listItems) > 0 {
		p.doc.Append(&model.List{Items: p.listItems, Ordered: p.listOrdered})
	}
	p.inList = false
	p.listItems = nil
	p.listLevel = 0
}

// breakMarker rebuilds a manual page-break node from its saved element,
// keeping the persisted marker ID when the document carries one.
func (p *importer) breakMarker(n *html.Node) *model.PageBreak {
	pb := model.NewPageBreak()
	if id := attr(n, "data-break-id"); id != "" {
		if parsed, err := uuid.Parse(id); err == nil {
			pb.ID = parsed
		}
	}
	return pb
}

// tableRows flattens a table element to cell text, walking thead and
// tbody sections as well as direct tr children.
func tableRows(tableNode *html.Node) [][]string {
	var rows [][]string
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					if row := tableRow(tr); len(row) > 0 {
						rows = append(rows, row)
					}
				}
			}
		case "tr":
			if row := tableRow(c); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func tableRow(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, textContent(c))
		}
	}
	return row
}

// imageNode builds an Image from an img element. Inline data URIs are
// decoded so the measurer can read intrinsic dimensions; external
// sources keep only the declared attributes.
func imageNode(n *html.Node) *model.Image {
	img := &model.Image{AltText: attr(n, "alt")}

	if w, err := strconv.ParseFloat(attr(n, "width"), 64); err == nil && w > 0 {
		img.Width = w
	}
	if h, err := strconv.ParseFloat(attr(n, "height"), 64); err == nil && h > 0 {
		img.Height = h
	}

	src := attr(n, "src")
	if strings.HasPrefix(src, "data:") {
		if idx := strings.Index(src, ","); idx >= 0 && strings.Contains(src[:idx], "base64") {
			if data, err := base64.StdEncoding.DecodeString(src[idx+1:]); err == nil {
				img.Data = data
			}
		}
	}

	if img.Data == nil && img.Width == 0 && img.Height == 0 && img.AltText == "" {
		return nil
	}
	return img
}

// explicitDirection returns the dir attribute from html or body, lowercased.
func explicitDirection(root *html.Node) string {
	for _, tag := range []string{"html", "body"} {
		if el := findElement(root, tag); el != nil {
			if dir := strings.ToLower(attr(el, "dir")); dir != "" {
				return dir
			}
		}
	}
	return ""
}

func titleOf(root *html.Node) string {
	if el := findElement(root, "title"); el != nil {
		return textContent(el)
	}
	return ""
}

// inlineStyle reports bold/italic when the paragraph's entire content
// sits inside a single styling element.
func inlineStyle(n *html.Node) model.TextStyle {
	var style model.TextStyle
	only := onlyElementChild(n)
	for only != nil {
		switch only.Data {
		case "b", "strong":
			style.Bold = true
		case "i", "em":
			style.Italic = true
		default:
			return style
		}
		only = onlyElementChild(only)
	}
	return style
}

// onlyElementChild returns n's single element child when n has no
// non-whitespace text of its own.
func onlyElementChild(n *html.Node) *html.Node {
	var el *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if el != nil {
				return nil
			}
			el = c
		}
	}
	return el
}

func skipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6",
				"blockquote", "pre", "article", "section", "img":
				return true
			}
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent extracts the flattened text of a node and its
// descendants, with br elements becoming newlines.
func textContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.TrimSpace(collapseSpaces(b.String()))
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		if skipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// directTextContent extracts a list item's own text, excluding nested
// block elements so nested lists do not duplicate into their parent.
func directTextContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "ul", "ol", "div", "p", "table", "blockquote":
			default:
				b.WriteString(textContent(c))
			}
		}
	}
	return strings.TrimSpace(collapseSpaces(b.String()))
}

// collapseSpaces folds runs of spaces and tabs while keeping newlines,
// which the measurer treats as explicit line breaks.
func collapseSpaces(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			space = true
		case '\n':
			b.WriteRune('\n')
			space = false
		default:
			if space && b.Len() > 0 {
				b.WriteRune(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
