// Package htmldoc imports HTML content into the pagination document
// model.
//
// The importer flattens an HTML body into the block-level node types
// pagination understands: paragraphs, headings, lists, tables, images,
// and page-break markers (a div carrying the "page-break" class, the
// form editors embed when saving). Inline markup is folded into the
// surrounding block's text; scripts, styles, and other non-content
// elements are dropped.
//
// Direction comes from the dir attribute on html or body when present,
// and is otherwise detected from the text itself.
package htmldoc
