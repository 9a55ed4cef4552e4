package chunker

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	linePara
	lineTable
)

// classifyLine tags a single line (terminator included) as blank, tabular,
// or ordinary paragraph text.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineBlank
	}
	if isTableLine(trimmed) {
		return lineTable
	}
	return linePara
}

// isTableLine recognizes markdown pipe tables and ASCII grid rules.
func isTableLine(trimmed string) bool {
	if strings.HasPrefix(trimmed, "|") {
		return true
	}
	if strings.HasPrefix(trimmed, "+") && strings.Trim(trimmed, "+-") == "" && len(trimmed) > 2 {
		return true
	}
	return false
}

// Segmentize partitions text into paragraph and table segments. Boundaries
// are blank-line runs and the edges of table blocks; blank lines attach to
// the preceding segment (leading blanks to the first) so the segments cover
// every byte of the input with no gaps or overlaps. Whitespace-only input
// yields no segments.
func Segmentize(text string) []Segment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var segs []Segment
	var raw strings.Builder
	start := 0
	kind := lineBlank
	sawBlank := false

	closeSegment := func() {
		if kind == lineBlank {
			return
		}
		content := raw.String()
		segs = append(segs, Segment{
			Start: start,
			Raw:   content,
			Text:  strings.TrimSpace(content),
			Table: kind == lineTable,
		})
		raw.Reset()
		kind = lineBlank
		sawBlank = false
	}

	pos := 0
	for pos < len(text) {
		end := len(text)
		if nl := strings.IndexByte(text[pos:], '\n'); nl >= 0 {
			end = pos + nl + 1
		}
		line := text[pos:end]

		switch lk := classifyLine(line); lk {
		case lineBlank:
			if kind == lineBlank && raw.Len() == 0 {
				start = pos
			}
			raw.WriteString(line)
			if kind != lineBlank {
				sawBlank = true
			}
		default:
			if kind != lineBlank && (sawBlank || lk != kind) {
				closeSegment()
			}
			if kind == lineBlank && raw.Len() == 0 {
				start = pos
			}
			raw.WriteString(line)
			kind = lk
			sawBlank = false
		}
		pos = end
	}
	closeSegment()

	return segs
}
