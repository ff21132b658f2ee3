// Package breaks is the authoritative record of page boundaries.
//
// Two kinds of boundary exist. Manual breaks are user-inserted PageBreak
// nodes that persist in the content tree; automatic boundaries are derived
// from overflow math on every pagination pass and never stored. The [Model]
// reconciles the two into a single ascending break-position list without
// double-counting a boundary that is both, and tracks the document's
// pagination state:
//
//	Unpaginated -> SinglePage <-> MultiPage
//
// A document is MultiPage while any manual marker exists or automatic
// overflow yields more than one page, and returns to SinglePage only when
// both conditions clear.
//
// Manual markers whose node was deleted out from under the model (content
// edited away around them) are orphans; they are pruned silently on the next
// reconciliation pass rather than raising an error.
package breaks
