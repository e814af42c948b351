package markdown

import "strings"

// Block is a structural element of a document. Container blocks own their
// children exclusively; the tree has no cycles.
type Block interface {
	render(b *strings.Builder)
}

type Heading struct {
	Level  int
	Spans  []Span
	Anchor string
}

type Paragraph struct {
	Spans []Span
}

type CodeBlock struct {
	Lang  string
	Lines []string
}

type List struct {
	Ordered bool
	Items   []ListItem
}

type ListItem struct {
	Blocks []Block
}

type Table struct {
	Header Row
	Rows   []Row
}

type (
	Row  []Cell
	Cell []Span
)

type BlockQuote struct {
	Blocks []Block
}

// Rule is a thematic break.
type Rule struct{}

// parse assembles classified lines into a block tree. Blockquote bodies are
// re-scanned and re-parsed as their own sub-documents.
func parse(lines []line) []Block {
	var blocks []Block

	i := 0
	for i < len(lines) {
		ln := lines[i]
		switch ln.kind {
		case lineBlank, lineTableSep, lineCode:
			i++

		case lineHeading:
			blocks = append(blocks, &Heading{Level: ln.level, Spans: Inline(ln.text)})
			i++

		case lineFence:
			cb := &CodeBlock{Lang: ln.lang}
			i++
			for i < len(lines) && lines[i].kind == lineCode {
				cb.Lines = append(cb.Lines, lines[i].text)
				i++
			}
			// closing fence, absent when input ended inside the block
			if i < len(lines) && lines[i].kind == lineFence {
				i++
			}
			blocks = append(blocks, cb)

		case lineRule:
			blocks = append(blocks, Rule{})
			i++

		case lineTableRow:
			var t *Table
			t, i = parseTable(lines, i)
			blocks = append(blocks, t)

		case lineListItem:
			var l *List
			l, i = parseList(lines, i, ln.indent, ln.ordered)
			blocks = append(blocks, l)

		case lineQuote:
			start := i
			for i < len(lines) && lines[i].kind == lineQuote {
				i++
			}
			body := make([]string, 0, i-start)
			for _, q := range lines[start:i] {
				body = append(body, q.text)
			}
			blocks = append(blocks, &BlockQuote{Blocks: parse(scan(strings.Join(body, "\n")))})

		default:
			start := i
			for i < len(lines) && lines[i].kind == lineText {
				i++
			}
			parts := make([]string, 0, i-start)
			for _, t := range lines[start:i] {
				parts = append(parts, t.text)
			}
			blocks = append(blocks, &Paragraph{Spans: Inline(strings.Join(parts, " "))})
		}
	}

	return blocks
}

func parseTable(lines []line, i int) (*Table, int) {
	t := &Table{Header: splitRow(lines[i].text)}
	i++
	if i < len(lines) && lines[i].kind == lineTableSep {
		i++
	}
	for i < len(lines) && lines[i].kind == lineTableRow {
		row := splitRow(lines[i].text)
		for len(row) < len(t.Header) {
			row = append(row, Cell(nil))
		}
		t.Rows = append(t.Rows, row)
		i++
	}
	return t, i
}

func splitRow(s string) Row {
	parts := strings.Split(strings.Trim(s, "|"), "|")
	row := make(Row, 0, len(parts))
	for _, p := range parts {
		row = append(row, Cell(Inline(strings.TrimSpace(p))))
	}
	return row
}

// parseList consumes consecutive items at the same indentation. A deeper
// indented item opens a nested list inside the current item; a dedent or a
// marker type change closes the list.
func parseList(lines []line, i, indent int, ordered bool) (*List, int) {
	list := &List{Ordered: ordered}

	for i < len(lines) && lines[i].kind == lineListItem {
		ln := lines[i]
		if ln.indent < indent {
			break
		}

		if ln.indent == indent {
			if ln.ordered != ordered {
				break
			}
			list.Items = append(list.Items, ListItem{Blocks: []Block{
				&Paragraph{Spans: Inline(ln.text)},
			}})
			i++
			continue
		}

		var nested *List
		nested, i = parseList(lines, i, ln.indent, ln.ordered)
		if len(list.Items) == 0 {
			list.Items = append(list.Items, ListItem{})
		}
		last := &list.Items[len(list.Items)-1]
		last.Blocks = append(last.Blocks, nested)
	}

	return list, i
}
