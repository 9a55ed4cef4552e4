package codescan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwiater/paperchunk/internal/chunker"
)

func TestClassifyDefaultRules(t *testing.T) {
	tests := []struct {
		path string
		want Outcome
	}{
		{"modeling_bert.py", Outcome{Priority: chunker.P0}},
		{"model.py", Outcome{Priority: chunker.P0}},
		{"models.py", Outcome{Priority: chunker.P0}},
		{"configuration_bert.py", Outcome{Priority: chunker.P1}},
		{"config.py", Outcome{Priority: chunker.P1}},
		{"attention.py", Outcome{Priority: chunker.P1}},
		{"transformer_block.py", Outcome{Priority: chunker.P1}},
		{"layers.py", Outcome{Priority: chunker.P2}},
		{"modules.py", Outcome{Priority: chunker.P2}},
		{"embeddings.py", Outcome{Priority: chunker.P2}},
		{"train.py", Outcome{Priority: chunker.P3}},
		{"data_utils.py", Outcome{Priority: chunker.P3}},
		{"utils.py", Outcome{Priority: chunker.P3}},
		{"test_bert.py", Outcome{Skip: true}},
		{"tokenizer_test.py", Outcome{Skip: true}},
		{"setup.py", Outcome{Skip: true}},
		{"__init__.py", Outcome{Skip: true}},
		{"somethingelse.py", Outcome{Priority: chunker.P3}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.path, DefaultRules), "path %q", tc.path)
	}
}

func TestClassifyMatchesBaseName(t *testing.T) {
	// Rules without a separator match the base name regardless of depth.
	assert.Equal(t, Outcome{Priority: chunker.P0}, Classify("src/bert/modeling_bert.py", DefaultRules))
	assert.Equal(t, Outcome{Skip: true}, Classify("tests/test_attention.py", DefaultRules))
}

func TestClassifySkipBeforePriority(t *testing.T) {
	// test_model.py matches both the skip glob and a would-be priority glob
	// further down; skip rules come first so it never gets a priority.
	got := Classify("test_model.py", DefaultRules)
	assert.True(t, got.Skip)
}

func TestClassifyPathPattern(t *testing.T) {
	rules := []Rule{
		{Pattern: "src/**/core.py", Priority: chunker.P0},
	}
	assert.Equal(t, Outcome{Priority: chunker.P0}, Classify("src/deep/nested/core.py", rules))
	assert.Equal(t, Outcome{Priority: chunker.P3}, Classify("other/core.py", rules))
}
