package model

import (
	"github.com/google/uuid"

	"github.com/waraq/waraq/text"
)

// Document is an ordered sequence of block nodes plus the metadata the
// pagination engine needs. It is the flowed content the engine measures and
// breaks into pages.
type Document struct {
	Title     string
	Direction text.Direction
	Nodes     []Node
}

// NewDocument creates an empty document with LTR direction.
func NewDocument() *Document {
	return &Document{
		Direction: text.LTR,
		Nodes:     make([]Node, 0),
	}
}

// Append adds a node at the end of the document.
func (d *Document) Append(n Node) {
	d.Nodes = append(d.Nodes, n)
}

// InsertAt inserts a node before index i. Out-of-range indices clamp to the
// document bounds.
func (d *Document) InsertAt(i int, n Node) {
	if i < 0 {
		i = 0
	}
	if i > len(d.Nodes) {
		i = len(d.Nodes)
	}
	d.Nodes = append(d.Nodes, nil)
	copy(d.Nodes[i+1:], d.Nodes[i:])
	d.Nodes[i] = n
}

// RemoveAt removes the node at index i. It reports whether a node was removed.
func (d *Document) RemoveAt(i int) bool {
	if i < 0 || i >= len(d.Nodes) {
		return false
	}
	d.Nodes = append(d.Nodes[:i], d.Nodes[i+1:]...)
	return true
}

// Len returns the number of block nodes.
func (d *Document) Len() int { return len(d.Nodes) }

// ManualBreaks returns all manual page-break nodes in document order together
// with their node indices.
func (d *Document) ManualBreaks() []BreakRef {
	var refs []BreakRef
	for i, n := range d.Nodes {
		if pb, ok := n.(*PageBreak); ok && pb.Manual {
			refs = append(refs, BreakRef{Index: i, Break: pb})
		}
	}
	return refs
}

// BreakRef pairs a page-break node with its current position in the tree.
type BreakRef struct {
	Index int
	Break *PageBreak
}

// FindBreak returns the node index of the manual break with the given ID, or
// -1 when the marker no longer exists in the tree.
func (d *Document) FindBreak(id uuid.UUID) int {
	for i, n := range d.Nodes {
		if pb, ok := n.(*PageBreak); ok && pb.ID == id {
			return i
		}
	}
	return -1
}

// RemoveBreak removes the manual break with the given ID. It reports whether
// the marker was found.
func (d *Document) RemoveBreak(id uuid.UUID) bool {
	i := d.FindBreak(id)
	if i < 0 {
		return false
	}
	return d.RemoveAt(i)
}

// DetectDirection recomputes the document's dominant direction from its text
// content and returns it. Documents with no strong directional text keep
// their current direction.
func (d *Document) DetectDirection() text.Direction {
	ltr, rtl := 0, 0
	for _, n := range d.Nodes {
		tn, ok := n.(TextNode)
		if !ok {
			continue
		}
		switch text.DetectDirection(tn.GetText()) {
		case text.LTR:
			ltr++
		case text.RTL:
			rtl++
		}
	}
	if ltr == 0 && rtl == 0 {
		return d.Direction
	}
	if rtl > ltr {
		d.Direction = text.RTL
	} else {
		d.Direction = text.LTR
	}
	return d.Direction
}

// IsRTL reports whether the document's dominant direction is right-to-left.
func (d *Document) IsRTL() bool { return d.Direction == text.RTL }

// Stats summarizes the document's block structure.
type Stats struct {
	ParagraphCount int
	HeadingCount   int
	ListCount      int
	TableCount     int
	ImageCount     int
	BreakCount     int
}

// Stats counts nodes by type.
func (d *Document) Stats() Stats {
	var s Stats
	for _, n := range d.Nodes {
		switch n.Type() {
		case NodeParagraph:
			s.ParagraphCount++
		case NodeHeading:
			s.HeadingCount++
		case NodeList:
			s.ListCount++
		case NodeTable:
			s.TableCount++
		case NodeImage:
			s.ImageCount++
		case NodePageBreak:
			s.BreakCount++
		}
	}
	return s
}
