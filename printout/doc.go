// Package printout prepares paginated output for print and export.
//
// [SlicePages] is the print compositor: it converts break positions
// into per-page vertical slices of the content surface, each described
// by a negative translateY and a fixed height so that only that page's
// band of content shows. It performs no pagination of its own; the
// positions it consumes come from the break model.
//
// [Exporter] writes a paginated document to PDF, honoring the page
// geometry and right-to-left direction of the layout.
package printout
