// Package nav keeps the logical page index in agreement with the host
// view's scroll offset and caret position.
//
// Three writers compete for the current page: user scrolling, caret
// movement while typing, and explicit navigation (a page badge click or
// keyboard shortcut). The [Synchronizer] arbitrates between them with
// last-writer-wins semantics, using two guards to stop a writer from
// reacting to its own effects:
//
//   - a programmatic-scroll guard, armed by [Synchronizer.ScrollToPage]
//     and held until the scroll settles (an explicit
//     [Synchronizer.ScrollEnded] signal or a bounded timeout), during
//     which scroll-driven detection is suppressed;
//   - a caret guard that rejects re-entrant caret detection while a
//     caret-driven pass is already in flight.
//
// Both guards live on the Synchronizer instance; there is no package
// state. When the document fits a single page all detection is skipped
// and the index is pinned to zero.
package nav
