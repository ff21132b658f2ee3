// Package paginate computes how flowed content divides into fixed-size pages.
//
// The calculator is pure: given a measured content height and resolved
// content dimensions it produces an [OverflowInfo] describing the page count,
// overflow state, and derived break positions. The caller owns sourcing the
// measurement and scheduling recomputation (debounced for content mutations,
// immediate for geometry changes).
//
//	info := paginate.Compute(measurement.Height, cd)
//	info = paginate.Refine(info, measurement.Blocks, paginate.DefaultSnapConfig())
//
// # Break positions
//
// A break position is a pixel offset from the top of the flowed content at
// which a page boundary occurs. The naive position for break i is
// i*availableHeight + marginTop; [Refine] then snaps each position to a
// nearby block or line boundary under a definite orphan/widow policy:
//
//   - a break inside a text block may only land on a line boundary that
//     leaves at least 2 lines on both sides of the break
//   - atomic blocks (images) are never split; the break snaps to the block's
//     top edge
//   - table blocks split only on row boundaries, subject to the same
//     2-row minimum
//   - a snap is abandoned in favor of the naive position when the candidate
//     boundary is further back than a bounded window (a fraction of the
//     available height)
//
// Degenerate geometry (non-positive available height) yields a single
// non-overflowing page rather than an error.
package paginate
