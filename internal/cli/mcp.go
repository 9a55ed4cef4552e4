// internal/cli/mcp.go
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mwiater/paperchunk/internal/logging"
	"github.com/mwiater/paperchunk/internal/mcpserver"
)

// mcpCmd serves the chunking tools over MCP on stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: "Exposes chunk_paper, analyze_code, and fetch_paper as MCP tools over stdio. " +
		"Meant to be launched by an MCP client, not interactively.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		logging.L().Info("starting MCP server", "name", mcpserver.ServerName, "version", mcpserver.ServerVersion)
		return mcpserver.NewServer(cfg).Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
