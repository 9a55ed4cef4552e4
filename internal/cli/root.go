// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/paperchunk/internal/appconfig"
	"github.com/mwiater/paperchunk/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "paperchunk",
	Short: "Split research papers and model code into LLM-sized chunks",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set the flag, copy the config value into the
		//    flag so both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(cfg.Debug, cfg.LogFile); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		if cfg.Debug {
			pp.Println(cfg)
		}
		return nil
	},
}

// Execute runs the root command. Cobra has already printed the error by the
// time this returns, so only the exit status is left to set.
func Execute() {
	defer func() { _ = logging.Close() }()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("logFile", "")
	viper.SetDefault("chunkOutputDir", appconfig.DefaultChunkDir)
	viper.SetDefault("codeOutputDir", appconfig.DefaultCodeDir)
	viper.SetDefault("paperMaxTokens", appconfig.DefaultPaperMaxTokens)
	viper.SetDefault("codeMaxTokens", appconfig.DefaultCodeMaxTokens)
	viper.SetDefault("overlapSentences", appconfig.DefaultOverlapSentences)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
