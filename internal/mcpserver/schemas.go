package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// chunkPaperTool returns the tool definition for chunk_paper.
func chunkPaperTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_paper",
		Description: "Split a research paper (PDF or plain text) into token-budgeted, priority-tagged chunk files plus a manifest",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the paper (.pdf, .txt, or .md)",
				},
				"output_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory for chunk artifacts (default ./chunks)",
				},
				"max_tokens": map[string]interface{}{
					"type":        "integer",
					"description": "Estimated token budget per chunk (default 3500)",
					"minimum":     1,
				},
				"overlap_sentences": map[string]interface{}{
					"type":        "integer",
					"description": "Sentences carried across chunk boundaries for continuity (default 2, 0 disables)",
					"minimum":     0,
				},
			},
			Required: []string{"path"},
		},
	}
}

// analyzeCodeTool returns the tool definition for analyze_code.
func analyzeCodeTool() mcp.Tool {
	return mcp.Tool{
		Name:        "analyze_code",
		Description: "Scan a model source tree, classify files by priority, and emit a skeleton overview plus priority-major source chunks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Source directory to analyze",
				},
				"output_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory for analysis artifacts (default ./code_analysis)",
				},
				"max_tokens": map[string]interface{}{
					"type":        "integer",
					"description": "Estimated token budget per chunk (default 4000)",
					"minimum":     1,
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "skeleton (signatures only) or full (signatures plus source chunks)",
					"enum":        []string{"skeleton", "full"},
					"default":     "skeleton",
				},
			},
			Required: []string{"path"},
		},
	}
}

// fetchPaperTool returns the tool definition for fetch_paper.
func fetchPaperTool() mcp.Tool {
	return mcp.Tool{
		Name:        "fetch_paper",
		Description: "Download a paper PDF from arxiv, OpenReview, or a direct link, validating the PDF signature",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "Paper URL (arxiv abs/pdf pages are normalized to direct PDF links)",
				},
				"output": map[string]interface{}{
					"type":        "string",
					"description": "Output file or directory (default: derived filename in the current directory)",
				},
			},
			Required: []string{"url"},
		},
	}
}
