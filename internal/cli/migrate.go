package cli

import (
	"github.com/SscSPs/fx_deal_system/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := getConfig()
		if err := requireDatabaseURL(cfg); err != nil {
			return err
		}
		return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrationDirection(args[0]), logger)
	},
}
