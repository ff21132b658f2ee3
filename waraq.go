// Package waraq paginates right-to-left rich-text documents.
//
// The engine turns a page layout (size, orientation, margins, zoom) and
// a measured content tree into page geometry: how many pages the
// content needs, where each page boundary falls, and which page the
// reader is currently on. Manual page breaks embedded in the document
// are reconciled with the automatic boundaries on every pass.
//
// Basic usage:
//
//	doc, err := htmldoc.Open("letter.html")
//	if err != nil {
//	    // handle error
//	}
//	engine := waraq.New(doc)
//	engine.Repaginate()
//	fmt.Println("pages:", engine.PageCount())
//
// Content mutations are reported with [Engine.ContentChanged], which
// coalesces bursts of edits into one debounced repagination; geometry
// changes (margins, zoom, page size) repaginate immediately. The
// engine's synchronizer and ruler controller wire scroll, caret, and
// margin-drag events from the host view.
package waraq

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := waraq.Must(htmldoc.Open("letter.html"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
