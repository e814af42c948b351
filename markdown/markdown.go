// Package markdown converts the subset of Markdown used in blog Issues
// into HTML fragments: headings, paragraphs, fenced code blocks, tables,
// lists, blockquotes, inline emphasis, code spans, and links.
//
// Conversion is total: malformed input degrades to literal text, it never
// fails. Each call is independent and holds no state.
package markdown

// Result is the outcome of a single conversion.
type Result struct {
	HTML string
	TOC  []Entry
}

// Entry is one heading in the document outline. Anchor matches the id
// attribute the renderer puts on the heading element.
type Entry struct {
	Level  int
	Text   string
	Anchor string
}

// Convert renders source as an HTML fragment and returns it together with
// the document outline.
func Convert(source string) Result {
	blocks := parse(scan(source))
	toc := buildTOC(blocks)
	return Result{
		HTML: renderBlocks(blocks),
		TOC:  toc,
	}
}
