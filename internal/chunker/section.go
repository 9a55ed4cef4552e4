package chunker

import (
	"regexp"
	"strings"
)

// PreambleSection labels text that appears before the first recognized
// heading (title block, author list, and so on).
const PreambleSection = "Preamble"

// maxHeadingLen filters out body lines that happen to start with a section
// keyword; real headings are short.
const maxHeadingLen = 100

// headingPatterns recognize the usual section headings of a research paper,
// with optional markdown hashes and numeric prefixes ("3.1 Experiments").
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(abstract|introduction|related\s+work|background)\b`),
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(method(?:ology)?|approach|proposed\s+(?:method|framework|model))\b`),
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(experiment(?:s|al)?(?:\s+(?:setup|results))?|results|evaluation)\b`),
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(discussion|analysis|ablation(?:\s+stud(?:y|ies))?)\b`),
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(conclusion(?:s)?|summary|future\s+work)\b`),
	regexp.MustCompile(`(?i)^(?:#{1,3}\s*)?(?:\d+(?:\.\d+)*\.?\s+)?(appendix|supplementary|references|acknowledg(?:e)?ments?)\b`),
}

var (
	headingNumberRe = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s*`)
	headingPunctRe  = regexp.MustCompile(`[^\w\s]`)
)

// headingRules map heading keywords to priorities. The table is ordered:
// the first keyword contained in the normalized heading wins.
var headingRules = []struct {
	keyword  string
	priority Priority
}{
	{"abstract", P0},
	{"conclusion", P0},
	{"summary", P0},
	{"method", P1},
	{"approach", P1},
	{"experiment", P1},
	{"result", P1},
	{"evaluation", P1},
	{"introduction", P2},
	{"related work", P2},
	{"background", P2},
	{"discussion", P2},
	{"analysis", P2},
	{"ablation", P2},
	{"appendix", P3},
	{"supplementary", P3},
	{"references", P3},
	{"acknowledg", P3},
}

// SectionMark records a recognized heading and its byte offset in the text.
type SectionMark struct {
	Offset int
	Name   string
}

// ScanSections finds section headings in document order.
func ScanSections(text string) []SectionMark {
	var marks []SectionMark
	pos := 0
	for pos < len(text) {
		end := len(text)
		if nl := strings.IndexByte(text[pos:], '\n'); nl >= 0 {
			end = pos + nl + 1
		}
		line := strings.TrimSpace(text[pos:end])
		if line != "" && len(line) <= maxHeadingLen {
			for _, re := range headingPatterns {
				if re.MatchString(line) {
					marks = append(marks, SectionMark{Offset: pos, Name: line})
					break
				}
			}
		}
		pos = end
	}
	return marks
}

// NormalizeHeading lowercases a heading and strips markdown hashes, section
// numbering, and punctuation so it can be matched against the keyword table.
func NormalizeHeading(heading string) string {
	h := strings.ToLower(strings.TrimSpace(heading))
	h = strings.TrimLeft(h, "# ")
	h = headingNumberRe.ReplaceAllString(h, "")
	h = headingPunctRe.ReplaceAllString(h, "")
	return strings.Join(strings.Fields(h), " ")
}

// ClassifySection assigns a priority to a heading. The first matching rule
// wins; headings that match nothing default to P2.
func ClassifySection(heading string) Priority {
	normalized := NormalizeHeading(heading)
	for _, rule := range headingRules {
		if strings.Contains(normalized, rule.keyword) {
			return rule.priority
		}
	}
	return P2
}

// attachSections attributes each segment to its nearest preceding heading
// (a heading inside the segment counts) and classifies it. Segments before
// the first heading belong to the preamble at the default priority.
func attachSections(segs []Segment, marks []SectionMark) {
	mi := 0
	current := PreambleSection
	priority := P2
	for i := range segs {
		segEnd := segs[i].Start + len(segs[i].Raw)
		for mi < len(marks) && marks[mi].Offset < segEnd {
			current = marks[mi].Name
			priority = ClassifySection(marks[mi].Name)
			mi++
		}
		segs[i].Section = current
		segs[i].Priority = priority
	}
}
