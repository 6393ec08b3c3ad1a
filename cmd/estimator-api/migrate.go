package main

import (
	"fmt"

	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/pkg/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var autoMigrate bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, undo, err := setup()
		if err != nil {
			return err
		}
		defer undo()

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			return fmt.Errorf("initializing data store: %w", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if autoMigrate {
			err = s.InitialMigration(cmd.Context())
		} else {
			err = migrations.MigrateStore(db, cfg)
		}
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		zap.S().Info("Db migrated")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&autoMigrate, "auto", false, "Create the tables from the models instead of running the sql migrations")
}
