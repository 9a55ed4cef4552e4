package chunker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mwiater/paperchunk/internal/util"
)

// maxContinuityRunes bounds the carry-over prefix so a chunk that happens to
// contain one enormous sentence cannot double in size.
const maxContinuityRunes = 600

// Config controls one chunking pass. It is passed explicitly so concurrent
// runs with different settings cannot interfere.
type Config struct {
	// MaxTokens is the estimated token budget per chunk. Required.
	MaxTokens int
	// OverlapSentences is how many closing sentences of the previous chunk
	// are carried into the next one for continuity. Zero disables carry-over.
	OverlapSentences int
}

// Result is the outcome of chunking one document.
type Result struct {
	Chunks       []Chunk
	SegmentCount int
	SectionCount int
	TotalTokens  int
}

// ChunkText segments the text, classifies each segment by its nearest
// preceding section heading, and greedily packs segments in document order
// into chunks whose estimated size stays within cfg.MaxTokens. A single
// segment larger than the budget becomes its own chunk, flagged over-budget
// rather than split or dropped. Empty input yields zero chunks.
func ChunkText(text string, cfg Config) (*Result, error) {
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("maxTokens must be greater than zero, got %d", cfg.MaxTokens)
	}

	segs := Segmentize(text)
	marks := ScanSections(text)
	attachSections(segs, marks)

	var chunks []Chunk
	var cur *Chunk
	curTokens := 0

	flush := func() {
		if cur == nil {
			return
		}
		cur.Tokens = curTokens
		chunks = append(chunks, *cur)
		cur = nil
		curTokens = 0
	}

	for _, seg := range segs {
		segTokens := EstimateTokens(seg.Raw)

		// An unsplittable segment larger than the whole budget is emitted
		// alone and flagged, never truncated.
		if segTokens > cfg.MaxTokens {
			flush()
			chunks = append(chunks, Chunk{
				Priority:   seg.Priority,
				Text:       seg.Raw,
				Sections:   []string{seg.Section},
				Tokens:     segTokens,
				OverBudget: true,
			})
			continue
		}

		if cur != nil && curTokens+segTokens > cfg.MaxTokens {
			flush()
		}
		if cur == nil {
			cur = &Chunk{Priority: seg.Priority}
		}
		cur.Text += seg.Raw
		if seg.Priority < cur.Priority {
			cur.Priority = seg.Priority
		}
		if n := len(cur.Sections); n == 0 || cur.Sections[n-1] != seg.Section {
			cur.Sections = append(cur.Sections, seg.Section)
		}
		curTokens += segTokens
	}
	flush()

	total := 0
	for i := range chunks {
		chunks[i].Index = i
		total += chunks[i].Tokens
		if i > 0 && cfg.OverlapSentences > 0 {
			chunks[i].Continuity = LastSentences(chunks[i-1].Text, cfg.OverlapSentences)
		}
	}

	return &Result{
		Chunks:       chunks,
		SegmentCount: len(segs),
		SectionCount: len(marks),
		TotalTokens:  total,
	}, nil
}

// LastSentences returns the final n sentences of text, trimmed, for use as
// a continuity carry-over. Fewer sentences than requested returns whatever
// is there; the result is capped so pathological sentences stay bounded.
func LastSentences(text string, n int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || n <= 0 {
		return ""
	}

	starts := []int{0}
	runes := []rune(trimmed)
	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') && unicode.IsSpace(runes[i+1]) {
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) {
				starts = append(starts, j)
			}
			i = j - 1
		}
	}

	from := 0
	if len(starts) > n {
		from = starts[len(starts)-n]
	}
	out := strings.TrimSpace(string(runes[from:]))
	if len([]rune(out)) > maxContinuityRunes {
		out = util.TruncateRunes(out, maxContinuityRunes)
	}
	return out
}
