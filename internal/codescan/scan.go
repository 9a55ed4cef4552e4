package codescan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwiater/paperchunk/internal/chunker"
	"github.com/mwiater/paperchunk/internal/logging"
)

// File is one kept source file with its contents and classification.
type File struct {
	RelPath  string
	Content  string
	Lines    int
	Tokens   int
	Priority chunker.Priority
}

// ScanResult holds the classified tree: kept files sorted priority-major
// (path order within a priority) and the relative paths of skipped files.
type ScanResult struct {
	Files   []File
	Skipped []string
}

// Scan walks root, keeps files whose extension is in allowedExts, and
// classifies each against the rule table. Skipped files are recorded but
// their contents never read.
func Scan(root string, allowedExts []string, rules []Rule) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", root)
	}

	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	result := &ScanResult{}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(p))]; !ok {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		outcome := Classify(rel, rules)
		if outcome.Skip {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		raw, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read source file %s: %w", p, err)
		}
		content := string(raw)
		result.Files = append(result.Files, File{
			RelPath:  rel,
			Content:  content,
			Lines:    strings.Count(content, "\n") + 1,
			Tokens:   chunker.EstimateTokens(content),
			Priority: outcome.Priority,
		})
		logging.L().Debug("classified source file", "path", rel, "priority", outcome.Priority)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result.Files, func(i, j int) bool {
		if result.Files[i].Priority != result.Files[j].Priority {
			return result.Files[i].Priority < result.Files[j].Priority
		}
		return result.Files[i].RelPath < result.Files[j].RelPath
	})
	sort.Strings(result.Skipped)

	return result, nil
}
