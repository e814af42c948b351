package markdown

import (
	"html"
	"strconv"
	"strings"
)

func renderBlocks(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		blk.render(&b)
	}
	return b.String()
}

func (h *Heading) render(b *strings.Builder) {
	level := strconv.Itoa(h.Level)
	b.WriteString(`<h` + level + ` id="` + html.EscapeString(h.Anchor) + `">`)
	renderSpans(b, h.Spans)
	b.WriteString(`</h` + level + `>`)
}

func (p *Paragraph) render(b *strings.Builder) {
	b.WriteString("<p>")
	renderSpans(b, p.Spans)
	b.WriteString("</p>")
}

func (c *CodeBlock) render(b *strings.Builder) {
	b.WriteString("<pre><code")
	if c.Lang != "" {
		b.WriteString(` class="` + html.EscapeString(c.Lang) + `"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(strings.Join(c.Lines, "\n")))
	b.WriteString("</code></pre>")
}

func (l *List) render(b *strings.Builder) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	b.WriteString("<" + tag + ">")
	for _, item := range l.Items {
		b.WriteString("<li>")
		for _, blk := range item.Blocks {
			// single-line item bodies render tight, without the p wrapper
			if p, ok := blk.(*Paragraph); ok {
				renderSpans(b, p.Spans)
				continue
			}
			blk.render(b)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
}

func (t *Table) render(b *strings.Builder) {
	b.WriteString("<table>")
	renderRow(b, t.Header, "th")
	for _, row := range t.Rows {
		renderRow(b, row, "td")
	}
	b.WriteString("</table>")
}

func renderRow(b *strings.Builder, row Row, tag string) {
	b.WriteString("<tr>")
	for _, cell := range row {
		b.WriteString("<" + tag + ">")
		renderSpans(b, cell)
		b.WriteString("</" + tag + ">")
	}
	b.WriteString("</tr>")
}

func (q *BlockQuote) render(b *strings.Builder) {
	b.WriteString("<blockquote>")
	for _, blk := range q.Blocks {
		blk.render(b)
	}
	b.WriteString("</blockquote>")
}

func (Rule) render(b *strings.Builder) {
	b.WriteString("<hr/>")
}

func renderSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		s.render(b)
	}
}

func (t Text) render(b *strings.Builder) {
	b.WriteString(html.EscapeString(string(t)))
}

func (c CodeSpan) render(b *strings.Builder) {
	b.WriteString("<code>" + html.EscapeString(string(c)) + "</code>")
}

func (e Emphasis) render(b *strings.Builder) {
	b.WriteString("<em>")
	renderSpans(b, e)
	b.WriteString("</em>")
}

func (s Strong) render(b *strings.Builder) {
	b.WriteString("<strong>")
	renderSpans(b, s)
	b.WriteString("</strong>")
}

func (l Link) render(b *strings.Builder) {
	b.WriteString(`<a href="` + html.EscapeString(l.Href) + `">`)
	renderSpans(b, l.Label)
	b.WriteString("</a>")
}

func plainSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		s.plain(b)
	}
}

func (t Text) plain(b *strings.Builder)     { b.WriteString(string(t)) }
func (c CodeSpan) plain(b *strings.Builder) { b.WriteString(string(c)) }
func (e Emphasis) plain(b *strings.Builder) { plainSpans(b, e) }
func (s Strong) plain(b *strings.Builder)   { plainSpans(b, s) }
func (l Link) plain(b *strings.Builder)     { plainSpans(b, l.Label) }

// RenderTOC serializes the outline as nested lists of anchor links, for
// embedding next to the converted document.
func RenderTOC(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	depth := entries[0].Level
	open := 1
	b.WriteString("<ul>")
	for _, e := range entries {
		for depth < e.Level {
			b.WriteString("<ul>")
			open++
			depth++
		}
		for depth > e.Level && open > 1 {
			b.WriteString("</ul>")
			open--
			depth--
		}
		b.WriteString(`<li><a href="#` + html.EscapeString(e.Anchor) + `">` + html.EscapeString(e.Text) + `</a></li>`)
	}
	for ; open > 0; open-- {
		b.WriteString("</ul>")
	}
	return b.String()
}
