// Package manifest assembles chunk artifacts on disk and the JSON manifest
// that indexes them.
package manifest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mwiater/paperchunk/internal/chunker"
)

// ChunkEntry describes one emitted chunk artifact.
type ChunkEntry struct {
	ID         string   `json:"id"`
	File       string   `json:"file"`
	Index      int      `json:"index"`
	Priority   string   `json:"priority"`
	Tokens     int      `json:"tokens"`
	Provenance []string `json:"provenance"`
	OverBudget bool     `json:"over_budget,omitempty"`
}

// Manifest is the machine-readable index of one chunking run.
type Manifest struct {
	Source               string         `json:"source"`
	TotalChunks          int            `json:"total_chunks"`
	Chunks               []ChunkEntry   `json:"chunks"`
	SkippedFiles         []string       `json:"skipped_files,omitempty"`
	PriorityDistribution map[string]int `json:"priority_distribution,omitempty"`
	Warnings             []string       `json:"warnings,omitempty"`
}

// chunkID derives a stable name-based UUID from the chunk's content, so two
// runs over the same input produce byte-identical manifests.
func chunkID(content string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("paperchunk:"+content)).String()
}

// artifactName builds the deterministic chunk filename:
// {base}_chunk{NN}_{priority}{ext}.
func artifactName(base string, index int, priority chunker.Priority, ext string) string {
	return fmt.Sprintf("%s_chunk%02d_%s%s", base, index, priority, ext)
}

// manifestName builds the manifest filename for a document base name.
func manifestName(base string) string {
	return base + "_manifest.json"
}
