package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mwiater/paperchunk/internal/manifest"
)

func plainSummary(t *testing.T, m *manifest.Manifest, outDir string) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	Summary(&buf, m, outDir)
	return buf.String()
}

func TestSummaryListsChunks(t *testing.T) {
	m := &manifest.Manifest{
		Source:      "paper",
		TotalChunks: 2,
		Chunks: []manifest.ChunkEntry{
			{ID: "id-0", File: "paper_chunk00_P0.txt", Index: 0, Priority: "P0", Tokens: 120, Provenance: []string{"Abstract"}},
			{ID: "id-1", File: "paper_chunk01_P2.txt", Index: 1, Priority: "P2", Tokens: 300, Provenance: []string{"1 Introduction", "2 Related Work", "3 Method"}},
		},
	}

	out := plainSummary(t, m, "./chunks")

	assert.Contains(t, out, "Chunked paper into 2 chunks")
	assert.Contains(t, out, "paper_chunk00_P0.txt")
	assert.Contains(t, out, "Abstract")
	assert.Contains(t, out, "(+1 more)", "long provenance lists are compacted")
	assert.Contains(t, out, "chunks: 2")
	assert.Contains(t, out, "output: ./chunks")
	assert.NotContains(t, out, "over budget")
}

func TestSummaryWarnings(t *testing.T) {
	m := &manifest.Manifest{
		Source:      "paper",
		TotalChunks: 1,
		Chunks: []manifest.ChunkEntry{
			{ID: "id-0", File: "paper_chunk00_P2.txt", Priority: "P2", Tokens: 9000, Provenance: []string{"Preamble"}, OverBudget: true},
		},
		Warnings: []string{"chunk 00 exceeds the token budget (9000 tokens) and was emitted whole"},
	}

	out := plainSummary(t, m, "./chunks")
	assert.Contains(t, out, "over budget")
	assert.Contains(t, out, "warnings: 1")
}

func TestSummarySkipped(t *testing.T) {
	m := &manifest.Manifest{
		Source:       "repo",
		TotalChunks:  0,
		SkippedFiles: []string{"test_model.py", "setup.py"},
	}

	out := plainSummary(t, m, "./code_analysis")
	assert.Contains(t, out, "skipped: 2")
}

func TestProvenanceCompaction(t *testing.T) {
	assert.Equal(t, "", provenance(nil))
	assert.Equal(t, "A", provenance([]string{"A"}))
	assert.Equal(t, "A, B", provenance([]string{"A", "B"}))
	assert.Equal(t, "A, B (+2 more)", provenance([]string{"A", "B", "C", "D"}))
}
