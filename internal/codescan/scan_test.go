package codescan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/paperchunk/internal/chunker"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestScanClassifiesAndSorts(t *testing.T) {
	root := writeTree(t, map[string]string{
		"utils.py":         "def helper():\n    pass\n",
		"modeling_bert.py": "class BertModel:\n    pass\n",
		"attention.py":     "class Attention:\n    pass\n",
		"test_bert.py":     "def test_forward():\n    pass\n",
		"README.md":        "# readme\n",
	})

	res, err := Scan(root, []string{".py"}, DefaultRules)
	require.NoError(t, err)

	require.Len(t, res.Files, 3)
	assert.Equal(t, "modeling_bert.py", res.Files[0].RelPath)
	assert.Equal(t, chunker.P0, res.Files[0].Priority)
	assert.Equal(t, "attention.py", res.Files[1].RelPath)
	assert.Equal(t, chunker.P1, res.Files[1].Priority)
	assert.Equal(t, "utils.py", res.Files[2].RelPath)
	assert.Equal(t, chunker.P3, res.Files[2].Priority)

	assert.Equal(t, []string{"test_bert.py"}, res.Skipped)
}

func TestScanPathOrderWithinPriority(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b/model.py": "class B:\n    pass\n",
		"a/model.py": "class A:\n    pass\n",
	})

	res, err := Scan(root, []string{".py"}, DefaultRules)
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.Equal(t, "a/model.py", res.Files[0].RelPath)
	assert.Equal(t, "b/model.py", res.Files[1].RelPath)
}

func TestScanSkipsDirectories(t *testing.T) {
	root := writeTree(t, map[string]string{
		"model.py":                "class M:\n    pass\n",
		"__pycache__/model.py":    "stale\n",
		".git/hooks/model.py":     "hook\n",
		"node_modules/x/utils.py": "js-adjacent\n",
	})

	res, err := Scan(root, []string{".py"}, DefaultRules)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "model.py", res.Files[0].RelPath)
}

func TestScanExtensionFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"model.py": "class M:\n    pass\n",
		"model.go": "package model\n",
	})

	res, err := Scan(root, []string{".go"}, DefaultRules)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "model.go", res.Files[0].RelPath)
}

func TestScanCountsLinesAndTokens(t *testing.T) {
	content := "line one\nline two\nline three\n"
	root := writeTree(t, map[string]string{"model.py": content})

	res, err := Scan(root, []string{".py"}, DefaultRules)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, 4, res.Files[0].Lines)
	assert.Equal(t, chunker.EstimateTokens(content), res.Files[0].Tokens)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), []string{".py"}, DefaultRules)
	require.Error(t, err)
}

func TestScanFileAsRoot(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "model.py")
	require.NoError(t, os.WriteFile(p, []byte("class M:\n    pass\n"), 0o644))

	_, err := Scan(p, []string{".py"}, DefaultRules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
