package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "task-list.com/task-list/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tasks table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadDotEnv()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level, err := config.ParseLogLevel(cfg.DBLogLevel)
		if err != nil {
			return err
		}

		database, err := config.NewDatabase(cfg.DatabaseDSN, level)
		if err != nil {
			return err
		}

		log.Printf("tasks table ready in %s", cfg.DatabaseDSN)
		return config.CloseDatabase(database)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
