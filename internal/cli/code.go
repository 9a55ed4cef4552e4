// internal/cli/code.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/paperchunk/internal/appconfig"
	"github.com/mwiater/paperchunk/internal/pipeline"
	"github.com/mwiater/paperchunk/internal/report"
)

var (
	codeOutputDir string
	codeMaxTokens int
	codeMode      string
)

// codeCmd analyzes a model implementation's source tree.
var codeCmd = &cobra.Command{
	Use:   "code <source-dir>",
	Short: "Analyze a source tree into a skeleton and priority-major chunks",
	Long: "Walks the source tree, classifies files through the ordered filename rule table " +
		"(tests and scaffolding are skipped), writes a signature skeleton, and in full mode packs " +
		"whole files into priority-major chunk files plus a JSON manifest.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if cmd.Flags().Changed("output") {
			cfg.CodeOutputDir = codeOutputDir
		}
		if cmd.Flags().Changed("max-tokens") {
			cfg.CodeMaxTokens = codeMaxTokens
		}

		m, err := pipeline.AnalyzeCode(cfg, args[0], codeMode)
		if err != nil {
			return err
		}
		report.Summary(cmd.OutOrStdout(), m, cfg.CodeDir())
		return nil
	},
}

func init() {
	codeCmd.Flags().StringVarP(&codeOutputDir, "output", "o", appconfig.DefaultCodeDir, "output directory for analysis artifacts")
	codeCmd.Flags().IntVar(&codeMaxTokens, "max-tokens", appconfig.DefaultCodeMaxTokens, "estimated token budget per chunk")
	codeCmd.Flags().StringVar(&codeMode, "mode", pipeline.ModeSkeleton, "analysis mode: skeleton (signatures only) or full (signatures plus source chunks)")
	rootCmd.AddCommand(codeCmd)
}
