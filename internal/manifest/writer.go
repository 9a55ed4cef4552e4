package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/paperchunk/internal/chunker"
	"github.com/mwiater/paperchunk/internal/logging"
	"github.com/mwiater/paperchunk/internal/util"
)

// continuityMarker prefixes the carried-over sentences so readers (and the
// round-trip property) can tell overlap from original content.
const continuityMarker = "--- continued from previous chunk ---"

// Options configures one write pass.
type Options struct {
	// OutDir is created if absent; existing artifacts with the same names
	// are overwritten.
	OutDir string
	// BaseName is the document's base name, used for all artifact names.
	BaseName string
	// Ext is the chunk artifact extension (".txt" for papers, ".md" for code).
	Ext string
	// ProvenanceLabel names the header line listing chunk origins
	// ("Sections" for papers, "Files" for code).
	ProvenanceLabel string
	// Skipped lists files excluded from chunking (code case).
	Skipped []string
	// PriorityDistribution counts input files per priority (code case).
	PriorityDistribution map[string]int
}

// Write emits one artifact per chunk plus the manifest. Zero chunks still
// produce a manifest reporting a count of zero. Any create or write failure
// is fatal and returned with the offending path; nothing is retried.
func Write(chunks []chunker.Chunk, opts Options) (*Manifest, error) {
	if strings.TrimSpace(opts.BaseName) == "" {
		return nil, fmt.Errorf("base name is required")
	}
	if opts.ProvenanceLabel == "" {
		opts.ProvenanceLabel = "Sections"
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", opts.OutDir, err)
	}

	m := &Manifest{
		Source:               opts.BaseName,
		TotalChunks:          len(chunks),
		Chunks:               make([]ChunkEntry, 0, len(chunks)),
		SkippedFiles:         opts.Skipped,
		PriorityDistribution: opts.PriorityDistribution,
	}

	for _, c := range chunks {
		name := artifactName(opts.BaseName, c.Index, c.Priority, opts.Ext)
		path := filepath.Join(opts.OutDir, name)
		if err := util.WriteFile(path, []byte(renderChunk(c, len(chunks), opts.ProvenanceLabel))); err != nil {
			return nil, fmt.Errorf("write chunk artifact %s: %w", path, err)
		}

		m.Chunks = append(m.Chunks, ChunkEntry{
			ID:         chunkID(c.Text),
			File:       name,
			Index:      c.Index,
			Priority:   c.Priority.String(),
			Tokens:     c.Tokens,
			Provenance: c.Sections,
			OverBudget: c.OverBudget,
		})
		if c.OverBudget {
			m.Warnings = append(m.Warnings,
				fmt.Sprintf("chunk %02d exceeds the token budget (%d tokens) and was emitted whole", c.Index, c.Tokens))
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')
	if err := ValidateManifest(data); err != nil {
		return nil, fmt.Errorf("manifest failed schema validation: %w", err)
	}

	manifestPath := filepath.Join(opts.OutDir, manifestName(opts.BaseName))
	if err := util.WriteFile(manifestPath, data); err != nil {
		return nil, fmt.Errorf("write manifest %s: %w", manifestPath, err)
	}

	logging.L().Info("wrote chunk artifacts",
		"chunks", len(chunks), "dir", opts.OutDir, "manifest", manifestName(opts.BaseName))
	return m, nil
}

// renderChunk builds a chunk artifact: provenance header, optional
// continuity carry-over, then the chunk text verbatim.
func renderChunk(c chunker.Chunk, total int, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== CHUNK %d/%d ===\n", c.Index+1, total)
	fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(c.Sections, ", "))
	fmt.Fprintf(&b, "Estimated tokens: %d\n", c.Tokens)
	fmt.Fprintf(&b, "Priority: %s\n", c.Priority)
	if c.OverBudget {
		b.WriteString("Note: exceeds token budget, emitted whole\n")
	}
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	if c.Continuity != "" {
		fmt.Fprintf(&b, "%s\n%s\n\n", continuityMarker, c.Continuity)
	}
	b.WriteString(c.Text)
	return b.String()
}
