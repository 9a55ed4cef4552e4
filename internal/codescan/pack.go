package codescan

import (
	"fmt"
	"strings"

	"github.com/mwiater/paperchunk/internal/chunker"
)

// fileSeparator divides files inside one chunk artifact.
var fileSeparator = "\n\n" + strings.Repeat("=", 60) + "\n\n"

// Pack greedily groups the (already priority-sorted) files into chunks.
// Chunks never mix priorities, so output order is priority-major with file
// path order inside each tier. A single file larger than the budget is
// emitted alone and flagged over-budget rather than split.
func Pack(files []File, maxTokens int) ([]chunker.Chunk, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("maxTokens must be greater than zero, got %d", maxTokens)
	}

	var chunks []chunker.Chunk
	var cur *chunker.Chunk
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

	for _, f := range files {
		block := fileBlock(f)
		blockTokens := chunker.EstimateTokens(block)

		if blockTokens > maxTokens {
			flush()
			chunks = append(chunks, chunker.Chunk{
				Priority:   f.Priority,
				Text:       block,
				Sections:   []string{f.RelPath},
				Tokens:     blockTokens,
				OverBudget: true,
			})
			continue
		}

		if cur != nil && (cur.Priority != f.Priority || curTokens+blockTokens > maxTokens) {
			flush()
		}
		if cur == nil {
			cur = &chunker.Chunk{Priority: f.Priority}
		}
		if cur.Text != "" {
			cur.Text += fileSeparator
		}
		cur.Text += block
		cur.Sections = append(cur.Sections, f.RelPath)
		curTokens += blockTokens
	}
	flush()

	for i := range chunks {
		chunks[i].Index = i
	}
	return chunks, nil
}

// fileBlock renders one file with its provenance header.
func fileBlock(f File) string {
	return fmt.Sprintf("# File: %s\n# Priority: %s\n# Lines: %d\n\n%s", f.RelPath, f.Priority, f.Lines, f.Content)
}
