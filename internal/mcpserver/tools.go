package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mwiater/paperchunk/internal/fetch"
	"github.com/mwiater/paperchunk/internal/manifest"
	"github.com/mwiater/paperchunk/internal/pipeline"
)

// handleChunkPaper handles the chunk_paper tool invocation.
func (s *Server) handleChunkPaper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	path, err := requiredString(args, "path")
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if dir, ok := args["output_dir"].(string); ok && dir != "" {
		cfg.ChunkOutputDir = dir
	}
	if budget, ok := intArg(args, "max_tokens"); ok {
		cfg.PaperMaxTokens = budget
	}
	if overlap, ok := intArg(args, "overlap_sentences"); ok {
		cfg.OverlapSentences = overlap
	}

	m, err := pipeline.ChunkPaper(cfg, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return manifestResult(m, cfg.ChunkDir())
}

// handleAnalyzeCode handles the analyze_code tool invocation.
func (s *Server) handleAnalyzeCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	path, err := requiredString(args, "path")
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if dir, ok := args["output_dir"].(string); ok && dir != "" {
		cfg.CodeOutputDir = dir
	}
	if budget, ok := intArg(args, "max_tokens"); ok {
		cfg.CodeMaxTokens = budget
	}
	mode, _ := args["mode"].(string)

	m, err := pipeline.AnalyzeCode(cfg, path, mode)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return manifestResult(m, cfg.CodeDir())
}

// handleFetchPaper handles the fetch_paper tool invocation.
func (s *Server) handleFetchPaper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	url, err := requiredString(args, "url")
	if err != nil {
		return nil, err
	}
	output, _ := args["output"].(string)

	path, err := fetch.Download(ctx, url, output, s.cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"downloaded": true,
		"path":       path,
	})), nil
}

// manifestResult serializes the written manifest for the tool response.
func manifestResult(m *manifest.Manifest, outDir string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"output_dir": outDir,
		"manifest":   m,
	})), nil
}

// toolArgs extracts the argument map from a tool request.
func toolArgs(request mcp.CallToolRequest) (map[string]interface{}, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid arguments: expected an object")
	}
	return args, nil
}

// requiredString fetches a mandatory string parameter.
func requiredString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return val, nil
}

// intArg fetches an optional integer parameter (JSON numbers decode as float64).
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// formatJSON pretty-prints a tool response payload.
func formatJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
