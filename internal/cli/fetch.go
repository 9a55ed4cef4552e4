// internal/cli/fetch.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/paperchunk/internal/fetch"
)

var fetchOutput string

// fetchCmd downloads a paper PDF.
var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a paper PDF from arxiv, OpenReview, or a direct link",
	Long: "Normalizes arxiv abs/pdf URLs to direct PDF links, downloads with retries on transient " +
		"failures, and verifies the result carries a PDF signature before keeping it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		path, err := fetch.Download(cmd.Context(), args[0], fetchOutput, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Downloaded: %s\n", path)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output file or directory (default: derived filename in the current directory)")
	rootCmd.AddCommand(fetchCmd)
}
