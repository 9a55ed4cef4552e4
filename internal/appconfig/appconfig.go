// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultPaperMaxTokens is the per-chunk token budget for paper text.
	DefaultPaperMaxTokens = 3500
	// DefaultCodeMaxTokens is the per-chunk token budget for source files.
	DefaultCodeMaxTokens = 4000
	// DefaultOverlapSentences is how many sentences are carried across paper
	// chunk boundaries for continuity.
	DefaultOverlapSentences = 2
	// DefaultChunkDir is where paper chunk artifacts land.
	DefaultChunkDir = "./chunks"
	// DefaultCodeDir is where code analysis artifacts land.
	DefaultCodeDir = "./code_analysis"
	// defaultFetchTimeout bounds a single download attempt.
	defaultFetchTimeout = 30 * time.Second
	// defaultFetchRetries is how many times a failed download is retried.
	defaultFetchRetries = 3
)

// Config represents the top-level application configuration. Commands read
// from an explicit snapshot of this struct rather than package globals, so
// repeated runs with different settings cannot interfere.
type Config struct {
	Debug               bool     `json:"debug" mapstructure:"debug"`
	LogFile             string   `json:"logFile,omitempty" mapstructure:"logFile"`
	ChunkOutputDir      string   `json:"chunkOutputDir,omitempty" mapstructure:"chunkOutputDir"`
	CodeOutputDir       string   `json:"codeOutputDir,omitempty" mapstructure:"codeOutputDir"`
	PaperMaxTokens      int      `json:"paperMaxTokens,omitempty" mapstructure:"paperMaxTokens"`
	CodeMaxTokens       int      `json:"codeMaxTokens,omitempty" mapstructure:"codeMaxTokens"`
	OverlapSentences    int      `json:"overlapSentences,omitempty" mapstructure:"overlapSentences"`
	CodeExtensions      []string `json:"codeExtensions,omitempty" mapstructure:"codeExtensions"`
	FetchTimeoutSeconds int      `json:"fetchTimeout,omitempty" mapstructure:"fetchTimeout"`
	FetchRetries        int      `json:"fetchRetries,omitempty" mapstructure:"fetchRetries"`
	ConfigPath          string   `json:"-" mapstructure:"-"`
}

// PaperBudget returns the paper-case token budget, applying the default when unset.
func (c Config) PaperBudget() int {
	if c.PaperMaxTokens <= 0 {
		return DefaultPaperMaxTokens
	}
	return c.PaperMaxTokens
}

// CodeBudget returns the code-case token budget, applying the default when unset.
func (c Config) CodeBudget() int {
	if c.CodeMaxTokens <= 0 {
		return DefaultCodeMaxTokens
	}
	return c.CodeMaxTokens
}

// Overlap returns the continuity sentence count. Negative values collapse to
// zero; zero disables carry-over.
func (c Config) Overlap() int {
	if c.OverlapSentences < 0 {
		return 0
	}
	return c.OverlapSentences
}

// ChunkDir returns the paper output directory, applying the default if not set.
func (c Config) ChunkDir() string {
	if strings.TrimSpace(c.ChunkOutputDir) == "" {
		return DefaultChunkDir
	}
	return c.ChunkOutputDir
}

// CodeDir returns the code-analysis output directory, applying the default if not set.
func (c Config) CodeDir() string {
	if strings.TrimSpace(c.CodeOutputDir) == "" {
		return DefaultCodeDir
	}
	return c.CodeOutputDir
}

// Extensions returns the source file extensions scanned in the code case.
func (c Config) Extensions() []string {
	if len(c.CodeExtensions) == 0 {
		return []string{".py"}
	}
	return c.CodeExtensions
}

// FetchTimeout returns the per-attempt download timeout.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return defaultFetchTimeout
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Retries returns the download retry budget.
func (c Config) Retries() int {
	if c.FetchRetries <= 0 {
		return defaultFetchRetries
	}
	return c.FetchRetries
}
