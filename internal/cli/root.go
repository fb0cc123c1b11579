package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	appConfig *config.Config
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "fxdeals",
	Short:         "Import, deduplicate and store FX deals",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appConfig != nil {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		loc, err := cfg.DealLocation()
		if err != nil {
			return err
		}
		dto.SetDealTimeLocation(loc)

		logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		appConfig = cfg
		appLogger = logger
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

func getConfig() (*config.Config, *slog.Logger) {
	if appConfig == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return appConfig, appLogger
}

func requireDatabaseURL(cfg *config.Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("PGSQL_URL must be set")
	}
	return nil
}
