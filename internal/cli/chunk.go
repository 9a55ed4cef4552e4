// internal/cli/chunk.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/paperchunk/internal/appconfig"
	"github.com/mwiater/paperchunk/internal/pipeline"
	"github.com/mwiater/paperchunk/internal/report"
)

var (
	chunkOutputDir string
	chunkMaxTokens int
	chunkOverlap   int
)

// chunkCmd splits one paper into token-budgeted chunk artifacts.
var chunkCmd = &cobra.Command{
	Use:   "chunk <paper.pdf|paper.txt>",
	Short: "Split a paper into token-budgeted chunks",
	Long: "Extracts the paper text (PDF or plain text), segments it into paragraphs and tables, " +
		"classifies each segment by its section heading, and packs segments in document order " +
		"into chunk files that fit the token budget, plus a JSON manifest.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if cmd.Flags().Changed("output") {
			cfg.ChunkOutputDir = chunkOutputDir
		}
		if cmd.Flags().Changed("max-tokens") {
			cfg.PaperMaxTokens = chunkMaxTokens
		}
		if cmd.Flags().Changed("overlap-sentences") {
			cfg.OverlapSentences = chunkOverlap
		}

		m, err := pipeline.ChunkPaper(cfg, args[0])
		if err != nil {
			return err
		}
		report.Summary(cmd.OutOrStdout(), m, cfg.ChunkDir())
		return nil
	},
}

func init() {
	chunkCmd.Flags().StringVarP(&chunkOutputDir, "output", "o", appconfig.DefaultChunkDir, "output directory for chunk artifacts")
	chunkCmd.Flags().IntVar(&chunkMaxTokens, "max-tokens", appconfig.DefaultPaperMaxTokens, "estimated token budget per chunk")
	chunkCmd.Flags().IntVar(&chunkOverlap, "overlap-sentences", appconfig.DefaultOverlapSentences, "sentences carried across chunk boundaries (0 disables)")
	rootCmd.AddCommand(chunkCmd)
}
