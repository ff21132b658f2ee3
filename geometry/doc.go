// Package geometry converts physical page configuration (size, orientation,
// margins in millimeters) into pixel-space dimensions under zoom, including
// the right-to-left margin inversion required for RTL documents.
//
// # Units
//
// All physical values are stored in millimeters. Pixel conversion uses a fixed
// 96 DPI constant (1mm = 3.7795275591px) so geometry is deterministic across
// environments:
//
//	px := geometry.MmToPx(210, 1.0) // A4 width at 100% zoom
//
// Display-unit toggling between millimeters and inches rounds only the value
// shown to the user; the stored millimeter value keeps full precision.
//
// # Resolution
//
// [ResolvePageDimensions] maps a [PageLayout] to unscaled pixel dimensions,
// and [ResolveContentDimensions] applies zoom and margins:
//
//	pd := geometry.ResolvePageDimensions(layout)
//	cd := geometry.ResolveContentDimensions(pd, layout.Margins, zoom)
//	avail := cd.AvailableHeight()
//
// Invalid input (non-finite custom sizes, non-positive zoom) falls back to A4
// portrait defaults rather than propagating NaN downstream.
//
// # RTL Inversion
//
// RTL content anchors to the right page edge, so the visual left edge of the
// content box corresponds to the semantic right margin and vice versa.
// [Margins.Padding] gives the padding-style mapping and [RulerHandlePositions]
// gives the visual positions of the left/right ruler handles. Both apply the
// same semantic-to-visual inversion so dragged handles and rendered text
// padding always agree.
package geometry
