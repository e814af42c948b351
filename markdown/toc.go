package markdown

import (
	"strconv"
	"strings"
	"unicode"
)

// buildTOC collects headings in document order, including headings nested
// inside blockquotes, and assigns each a unique anchor. The anchor is also
// written back onto the heading node so the renderer and the outline agree.
func buildTOC(blocks []Block) []Entry {
	var entries []Entry
	seen := map[string]int{}
	collectHeadings(blocks, &entries, seen)
	return entries
}

func collectHeadings(blocks []Block, entries *[]Entry, seen map[string]int) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *Heading:
			var b strings.Builder
			plainSpans(&b, v.Spans)
			text := b.String()

			base := Slug(text)
			if base == "" {
				base = "section"
			}
			anchor := base
			n := seen[base]
			for n > 0 {
				anchor = base + "-" + strconv.Itoa(n)
				if seen[anchor] == 0 {
					break
				}
				n++
			}
			seen[base] = n + 1
			if anchor != base {
				seen[anchor]++
			}

			v.Anchor = anchor
			*entries = append(*entries, Entry{
				Level:  v.Level,
				Text:   text,
				Anchor: anchor,
			})

		case *BlockQuote:
			collectHeadings(v.Blocks, entries, seen)
		}
	}
}

// Slug derives a URL-fragment-safe identifier: letters and digits are kept
// lower-cased, every other run of characters collapses to a single hyphen.
// Text with nothing to keep yields the empty string; callers choose their
// own placeholder.
func Slug(text string) string {
	var b strings.Builder
	pending := false
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
