package markdown

import "strings"

// Span is a structural unit within a block's text. render writes HTML,
// plain writes the text content without markup.
type Span interface {
	render(b *strings.Builder)
	plain(b *strings.Builder)
}

type (
	Text     string
	CodeSpan string
	Emphasis []Span
	Strong   []Span
)

type Link struct {
	Href  string
	Label []Span
}

// Inline splits text into spans. The whole input is covered: anything that
// does not resolve as a code span, link, strong, or emphasis run stays
// literal text, so malformed delimiters never fail.
func Inline(text string) []Span {
	return inline(text, false)
}

func inline(text string, inLink bool) []Span {
	var spans []Span
	lit := 0 // start of the pending literal run

	flush := func(end int) {
		if lit < end {
			spans = append(spans, Text(text[lit:end]))
		}
	}

	i := 0
	for i < len(text) {
		if sp, n := matchCode(text[i:]); n > 0 {
			flush(i)
			spans = append(spans, sp)
			i += n
			lit = i
			continue
		}
		if !inLink {
			if sp, n := matchLink(text[i:]); n > 0 {
				flush(i)
				spans = append(spans, sp)
				i += n
				lit = i
				continue
			}
		}
		if sp, n := matchStrong(text[i:], inLink); n > 0 {
			flush(i)
			spans = append(spans, sp)
			i += n
			lit = i
			continue
		}
		if sp, n := matchEmphasis(text[i:], inLink); n > 0 {
			flush(i)
			spans = append(spans, sp)
			i += n
			lit = i
			continue
		}
		i++
	}
	flush(len(text))

	return spans
}

// matchCode consumes a single-backtick code span. Content is kept verbatim
// and never reinterpreted.
func matchCode(s string) (Span, int) {
	if s[0] != '`' {
		return nil, 0
	}
	end := strings.IndexByte(s[1:], '`')
	if end < 1 {
		return nil, 0
	}
	return CodeSpan(s[1 : 1+end]), end + 2
}

// matchLink consumes a [label](href) link. The label is inline-processed
// with links disabled; the href is taken literally.
func matchLink(s string) (Span, int) {
	if s[0] != '[' {
		return nil, 0
	}
	close := strings.IndexByte(s, ']')
	if close < 0 || close+1 >= len(s) || s[close+1] != '(' {
		return nil, 0
	}
	end := strings.IndexByte(s[close+1:], ')')
	if end < 0 {
		return nil, 0
	}
	return Link{
		Href:  s[close+2 : close+1+end],
		Label: inline(s[1:close], true),
	}, close + end + 2
}

func matchStrong(s string, inLink bool) (Span, int) {
	if len(s) < 5 {
		return nil, 0
	}
	d := s[0]
	if (d != '*' && d != '_') || s[1] != d {
		return nil, 0
	}
	close := strings.Index(s[2:], s[:2])
	if close < 1 {
		return nil, 0
	}
	return Strong(inline(s[2:2+close], inLink)), close + 4
}

func matchEmphasis(s string, inLink bool) (Span, int) {
	d := s[0]
	if d != '*' && d != '_' {
		return nil, 0
	}
	close := strings.IndexByte(s[1:], d)
	if close < 1 {
		return nil, 0
	}
	return Emphasis(inline(s[1:1+close], inLink)), close + 2
}
