// Package pipeline wires the extraction, chunking, and artifact layers into
// the two end-to-end operations shared by the CLI and the MCP server.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/paperchunk/internal/appconfig"
	"github.com/mwiater/paperchunk/internal/chunker"
	"github.com/mwiater/paperchunk/internal/codescan"
	"github.com/mwiater/paperchunk/internal/logging"
	"github.com/mwiater/paperchunk/internal/manifest"
	"github.com/mwiater/paperchunk/internal/pdftext"
	"github.com/mwiater/paperchunk/internal/util"
)

// CodeMode selects what the code analysis emits.
const (
	ModeSkeleton = "skeleton"
	ModeFull     = "full"
)

// ChunkPaper reads a paper (PDF or plain text), chunks it in document
// order, and writes the chunk artifacts plus manifest into cfg.ChunkDir().
func ChunkPaper(cfg appconfig.Config, inputPath string) (*manifest.Manifest, error) {
	text, err := loadDocument(inputPath)
	if err != nil {
		return nil, err
	}
	logging.L().Info("loaded document",
		"path", inputPath, "bytes", len(text), "tokens", chunker.EstimateTokens(text))

	result, err := chunker.ChunkText(text, chunker.Config{
		MaxTokens:        cfg.PaperBudget(),
		OverlapSentences: cfg.Overlap(),
	})
	if err != nil {
		return nil, err
	}
	logging.L().Info("chunked paper",
		"segments", result.SegmentCount, "sections", result.SectionCount, "chunks", len(result.Chunks))

	return manifest.Write(result.Chunks, manifest.Options{
		OutDir:          cfg.ChunkDir(),
		BaseName:        baseName(inputPath),
		Ext:             ".txt",
		ProvenanceLabel: "Sections",
	})
}

// AnalyzeCode scans a source tree, always writes a skeleton overview, and
// in full mode also packs files into priority-major chunk artifacts. The
// manifest is written in both modes so skipped files are always accounted
// for.
func AnalyzeCode(cfg appconfig.Config, sourceDir, mode string) (*manifest.Manifest, error) {
	if mode == "" {
		mode = ModeSkeleton
	}
	if mode != ModeSkeleton && mode != ModeFull {
		return nil, fmt.Errorf("unknown mode %q (want %q or %q)", mode, ModeSkeleton, ModeFull)
	}

	scan, err := codescan.Scan(sourceDir, cfg.Extensions(), codescan.DefaultRules)
	if err != nil {
		return nil, err
	}
	logging.L().Info("scanned source tree",
		"dir", sourceDir, "files", len(scan.Files), "skipped", len(scan.Skipped))

	outDir := cfg.CodeDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}
	skeletonPath := filepath.Join(outDir, "skeleton.md")
	if err := util.WriteFile(skeletonPath, []byte(codescan.Skeleton(scan))); err != nil {
		return nil, fmt.Errorf("write skeleton %s: %w", skeletonPath, err)
	}

	var chunks []chunker.Chunk
	if mode == ModeFull {
		chunks, err = codescan.Pack(scan.Files, cfg.CodeBudget())
		if err != nil {
			return nil, err
		}
	}

	dist := make(map[string]int, 4)
	for _, f := range scan.Files {
		dist[f.Priority.String()]++
	}

	return manifest.Write(chunks, manifest.Options{
		OutDir:               outDir,
		BaseName:             baseName(sourceDir),
		Ext:                  ".md",
		ProvenanceLabel:      "Files",
		Skipped:              scan.Skipped,
		PriorityDistribution: dist,
	})
}

// loadDocument dispatches on extension: PDFs go through text extraction,
// plain text and markdown are read as-is.
func loadDocument(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdftext.Extract(path)
	case ".txt", ".md", "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document %s: %w", path, err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unsupported document format %q (want .pdf, .txt, or .md): %s", filepath.Ext(path), path)
	}
}

// baseName strips the directory and extension from a path for artifact naming.
func baseName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
