// Package model provides the content-tree representation consumed by the
// pagination engine.
//
// The editor's rich-text surface owns editing semantics (selection, undo,
// inline formatting); this package models only what pagination needs: an
// ordered sequence of block-level nodes with enough structure to measure
// heights, find break candidates, and carry manual page-break markers.
//
// # Nodes
//
// All block content implements the [Node] interface. The concrete types are:
//
//   - [Paragraph] - body text
//   - [Heading] - headings (levels 1-6)
//   - [List] - ordered or unordered lists
//   - [Table] - tables as rows of cell text
//   - [Image] - embedded images with optional intrinsic size
//   - [PageBreak] - a page-break marker
//
// Exhaustive switching on [Node.Type] replaces duck-typed shape checks when
// measuring heights or slicing pages.
//
// # Page Breaks
//
// Manual page breaks are real tree nodes created with [NewPageBreak]; they
// persist with the document and are removed only by explicit user action (or
// pruned when the content around them is deleted). Automatic page boundaries
// are never stored here - they exist only as derived pixel positions.
package model
