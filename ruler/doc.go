// Package ruler turns pointer drags on the margin-ruler handles into
// margin edits.
//
// Handles are named by their screen side. Under RTL page direction the
// horizontal handles cross over: the handle on the screen's left edge
// drags the semantic right margin and vice versa, so the ruler keeps
// matching what the reader sees. Top and bottom are axis-symmetric and
// never invert.
//
// Moves are throttled to roughly one update per display frame; the
// final pointer position always lands on release. The [Controller]
// only emits margin values through its change callback; persisting
// them into the page layout and re-running geometry is the caller's
// job.
package ruler
