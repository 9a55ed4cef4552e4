// Package codescan walks a model implementation's source tree, classifies
// files by an ordered filename rule table, and packs whole files into
// priority-major, token-budgeted chunks.
package codescan

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mwiater/paperchunk/internal/chunker"
)

// Outcome is the classification result for one file.
type Outcome struct {
	Priority chunker.Priority
	Skip     bool
}

// Rule pairs a filename glob with its outcome. Rules are evaluated in
// order; the first match wins.
type Rule struct {
	Pattern  string
	Priority chunker.Priority
	Skip     bool
}

// DefaultRules is the ordered classification table for research-code trees.
// Skip entries come first so test scaffolding never reaches a priority
// bucket; files matching nothing default to P3.
var DefaultRules = []Rule{
	{Pattern: "test_*.py", Skip: true},
	{Pattern: "*_test.py", Skip: true},
	{Pattern: "setup.py", Skip: true},
	{Pattern: "__init__.py", Skip: true},
	{Pattern: "modeling_*.py", Priority: chunker.P0},
	{Pattern: "model.py", Priority: chunker.P0},
	{Pattern: "models.py", Priority: chunker.P0},
	{Pattern: "config*.py", Priority: chunker.P1},
	{Pattern: "attention*.py", Priority: chunker.P1},
	{Pattern: "transformer*.py", Priority: chunker.P1},
	{Pattern: "layer*.py", Priority: chunker.P2},
	{Pattern: "module*.py", Priority: chunker.P2},
	{Pattern: "embedding*.py", Priority: chunker.P2},
	{Pattern: "train*.py", Priority: chunker.P3},
	{Pattern: "*_utils.py", Priority: chunker.P3},
	{Pattern: "utils.py", Priority: chunker.P3},
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]struct{}{
	"__pycache__":  {},
	".git":         {},
	".hg":          {},
	"node_modules": {},
}

// Classify runs relPath through the rule table. Patterns match against the
// base filename and, for patterns containing a separator, against the whole
// slash-normalized relative path.
func Classify(relPath string, rules []Rule) Outcome {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)
	for _, rule := range rules {
		target := base
		if containsSlash(rule.Pattern) {
			target = normalized
		}
		if ok, err := doublestar.Match(rule.Pattern, target); err == nil && ok {
			return Outcome{Priority: rule.Priority, Skip: rule.Skip}
		}
	}
	return Outcome{Priority: chunker.P3}
}

func containsSlash(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '/' {
			return true
		}
	}
	return false
}
