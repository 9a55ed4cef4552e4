package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	assert.Equal(t, DefaultPaperMaxTokens, cfg.PaperBudget())
	assert.Equal(t, DefaultCodeMaxTokens, cfg.CodeBudget())
	assert.Equal(t, DefaultChunkDir, cfg.ChunkDir())
	assert.Equal(t, DefaultCodeDir, cfg.CodeDir())
	assert.Equal(t, []string{".py"}, cfg.Extensions())
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 3, cfg.Retries())
}

func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg := Config{
		ChunkOutputDir:      "/tmp/out",
		PaperMaxTokens:      1200,
		CodeMaxTokens:       900,
		OverlapSentences:    -1,
		CodeExtensions:      []string{".py", ".ipynb"},
		FetchTimeoutSeconds: 5,
		FetchRetries:        1,
	}
	assert.Equal(t, "/tmp/out", cfg.ChunkDir())
	assert.Equal(t, 1200, cfg.PaperBudget())
	assert.Equal(t, 900, cfg.CodeBudget())
	assert.Equal(t, 0, cfg.Overlap(), "negative overlap collapses to zero")
	assert.Equal(t, []string{".py", ".ipynb"}, cfg.Extensions())
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 1, cfg.Retries())
}
