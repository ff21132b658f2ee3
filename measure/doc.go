// Package measure estimates the rendered geometry of document content.
//
// The live editor's content surface is the authoritative source of rendered
// heights; this package defines that contract as the [Measurer] interface and
// ships [BlockMeasurer], a headless reference implementation that estimates
// block heights from the content tree alone. The reference measurer keeps the
// pagination pipeline fully testable without a rendering environment, and is
// good enough for print preview when no surface is attached.
//
// # Measurement
//
//	m := measure.NewBlockMeasurer()
//	result, err := m.Measure(doc, cd)
//	// result.Height is the total flowed content height in px
//	// result.Blocks carries per-block tops, heights, and line counts
//
// Per-block line counts feed the paginate package's orphan/widow policy, and
// block tops are the boundary candidates for break-position snapping.
//
// # Images
//
// Image blocks without an explicit intrinsic size are sized by decoding the
// image header. JPEG, PNG, and GIF come from the standard library; BMP, TIFF,
// and WebP decoders are registered from golang.org/x/image. Undecodable
// images fall back to a placeholder height and surface as a warning, not an
// error.
package measure
