package markdown

import "strings"

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineText
	lineHeading
	lineFence
	lineCode
	lineListItem
	lineQuote
	lineTableRow
	lineTableSep
	lineRule
)

// line is a single classified input line. text holds the content with the
// block marker already stripped, except for lineCode, which is verbatim.
type line struct {
	kind    lineKind
	text    string
	level   int    // heading level, 1-6
	lang    string // language hint on an opening fence
	ordered bool   // list marker type
	indent  int    // spaces before a list marker
}

// scan classifies source line by line. Fence tracking is the only state
// carried across lines: inside an open fence every line is raw until a
// closing fence of the same character and length, or end of input.
func scan(source string) []line {
	raw := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	var lines []line
	var fenceChar byte
	var fenceLen int
	inFence := false
	inTable := false

	for i, s := range raw {
		trimmed := strings.TrimSpace(s)

		if inFence {
			if c, n := fenceOf(trimmed); c == fenceChar && n == fenceLen && n == len(trimmed) {
				inFence = false
				lines = append(lines, line{kind: lineFence})
				continue
			}
			lines = append(lines, line{kind: lineCode, text: s})
			continue
		}

		if inTable {
			switch {
			case isTableSep(trimmed):
				lines = append(lines, line{kind: lineTableSep})
				continue
			case strings.Contains(trimmed, "|"):
				lines = append(lines, line{kind: lineTableRow, text: trimmed})
				continue
			}
			inTable = false
		}

		if trimmed == "" {
			lines = append(lines, line{kind: lineBlank})
			continue
		}

		if c, n := fenceOf(trimmed); n >= 3 {
			inFence = true
			fenceChar, fenceLen = c, n
			lines = append(lines, line{kind: lineFence, lang: strings.TrimSpace(trimmed[n:])})
			continue
		}

		if trimmed[0] == '#' {
			n := 0
			for n < len(trimmed) && trimmed[n] == '#' {
				n++
			}
			if n < len(trimmed) && (trimmed[n] == ' ' || trimmed[n] == '\t') {
				level := n
				if level > 6 {
					level = 6
				}
				lines = append(lines, line{kind: lineHeading, level: level, text: strings.TrimSpace(trimmed[n:])})
				continue
			}
		}

		if strings.Contains(trimmed, "|") && i+1 < len(raw) && isTableSep(strings.TrimSpace(raw[i+1])) {
			inTable = true
			lines = append(lines, line{kind: lineTableRow, text: trimmed})
			continue
		}

		if text, ordered, ok := listItem(trimmed); ok {
			indent := len(s) - len(strings.TrimLeft(s, " "))
			lines = append(lines, line{kind: lineListItem, text: text, ordered: ordered, indent: indent})
			continue
		}

		if trimmed[0] == '>' {
			lines = append(lines, line{kind: lineQuote, text: strings.TrimPrefix(trimmed[1:], " ")})
			continue
		}

		if isRuleLine(trimmed) {
			lines = append(lines, line{kind: lineRule})
			continue
		}

		lines = append(lines, line{kind: lineText, text: trimmed})
	}

	return lines
}

// fenceOf reports the fence character and run length opening s, or (0, 0)
// if s does not begin with at least three backticks or tildes.
func fenceOf(s string) (byte, int) {
	if len(s) < 3 || (s[0] != '`' && s[0] != '~') {
		return 0, 0
	}
	c := s[0]
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0
	}
	return c, n
}

// listItem strips a list marker from s: "-", "*" or "+" followed by
// whitespace, or digits followed by "." and whitespace.
func listItem(s string) (text string, ordered, ok bool) {
	if s[0] == '-' || s[0] == '*' || s[0] == '+' {
		if len(s) > 1 && (s[1] == ' ' || s[1] == '\t') {
			return strings.TrimSpace(s[1:]), false, true
		}
		return "", false, false
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n+1 >= len(s) || s[n] != '.' {
		return "", false, false
	}
	if s[n+1] != ' ' && s[n+1] != '\t' {
		return "", false, false
	}
	return strings.TrimSpace(s[n+2:]), true, true
}

// isTableSep matches header separator rows such as "|---|:---:|".
func isTableSep(s string) bool {
	if !strings.Contains(s, "-") {
		return false
	}
	cells := strings.Split(strings.Trim(s, "|"), "|")
	for _, c := range cells {
		c = strings.TrimSpace(c)
		c = strings.TrimPrefix(c, ":")
		c = strings.TrimSuffix(c, ":")
		if c == "" || strings.Count(c, "-") != len(c) {
			return false
		}
	}
	return true
}

// isRuleLine matches thematic breaks: three or more of the same "-", "*",
// or "_" character and nothing else.
func isRuleLine(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}
