package model

import "github.com/google/uuid"

// NodeType identifies the concrete type of a block node.
type NodeType int

const (
	NodeUnknown NodeType = iota
	NodeParagraph
	NodeHeading
	NodeList
	NodeTable
	NodeImage
	NodePageBreak
)

// String returns a human-readable node type name.
func (nt NodeType) String() string {
	switch nt {
	case NodeParagraph:
		return "Paragraph"
	case NodeHeading:
		return "Heading"
	case NodeList:
		return "List"
	case NodeTable:
		return "Table"
	case NodeImage:
		return "Image"
	case NodePageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Node is the interface for all block-level content nodes.
type Node interface {
	Type() NodeType
}

// TextNode is implemented by nodes that carry flowable text.
type TextNode interface {
	Node
	GetText() string
}

// TextStyle carries the inline styling pagination cares about (it affects
// measured height through bold/size variations the measurer may model).
type TextStyle struct {
	Bold   bool
	Italic bool
}

// Paragraph is a paragraph of body text.
type Paragraph struct {
	Text  string
	Style TextStyle
}

func (p *Paragraph) Type() NodeType  { return NodeParagraph }
func (p *Paragraph) GetText() string { return p.Text }

// Heading is a section heading.
type Heading struct {
	Text  string
	Level int // 1-6
}

func (h *Heading) Type() NodeType  { return NodeHeading }
func (h *Heading) GetText() string { return h.Text }

// ListItem is a single item inside a List.
type ListItem struct {
	Text  string
	Level int
}

// List is an ordered or unordered list.
type List struct {
	Items   []ListItem
	Ordered bool
}

func (l *List) Type() NodeType { return NodeList }

// GetText concatenates the item texts.
func (l *List) GetText() string {
	var text string
	for _, item := range l.Items {
		text += item.Text + "\n"
	}
	return text
}

// Table is a grid of cell text. Rows are atomic for break purposes: a page
// boundary never lands inside a row.
type Table struct {
	Rows [][]string
}

func (t *Table) Type() NodeType { return NodeTable }

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the widest row's cell count.
func (t *Table) ColumnCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Image is an embedded image. Width and Height are intrinsic pixel dimensions
// when known; zero means the measurer must decode Data to size the block.
type Image struct {
	Data    []byte
	AltText string
	Width   float64
	Height  float64
}

func (i *Image) Type() NodeType { return NodeImage }

// PageBreak is a page-break marker embedded in the content tree. Manual
// markers are user-inserted and travel with the document; PageNumber records
// the page the break ended on at the last pagination pass.
type PageBreak struct {
	ID         uuid.UUID
	PageNumber int
	Manual     bool
}

func (b *PageBreak) Type() NodeType { return NodePageBreak }

// NewPageBreak creates a manual page-break marker with a fresh ID.
func NewPageBreak() *PageBreak {
	return &PageBreak{
		ID:     uuid.New(),
		Manual: true,
	}
}
