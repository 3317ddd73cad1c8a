package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sneiksus/VINF2025/internal/config"
	"github.com/sneiksus/VINF2025/internal/logger"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
	log *logger.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "peoplemerge",
	Short: "Reconcile a biographical reference table with an article corpus",
	Long: `peoplemerge merges a tab-separated biographical reference table with
facts mined from a MediaWiki XML dump, then optionally builds and queries
a full-text index over the merged output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if configPath != "" {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
		}

		if logLevel != "" {
			cfg.Pipeline.Logging.Level = logLevel
		}

		log = logger.NewLogger(cfg.Pipeline.Logging.Level)

		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
