// Package schedule provides the two timing primitives the pagination
// engine runs on: a trailing-edge [Debouncer] that coalesces bursts of
// content-change notifications into one recomputation, and a
// [FrameThrottle] that limits pointer-drag updates to roughly one per
// display frame.
//
// Both are latest-wins: a newer callback supersedes a pending older
// one, so consumers never observe stale work firing after fresher work
// was scheduled.
package schedule
