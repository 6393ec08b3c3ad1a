package main

import (
	"github.com/moveplanner/estimator/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the catalog tables",
	Long:  "Fill the catalog tables from a yaml seed file, or from the default catalog when no file is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, undo, err := setup()
		if err != nil {
			return err
		}
		defer undo()

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		path := seedFile
		if path == "" {
			path = cfg.Service.SeedFile
		}

		if err := service.NewCatalogService(s).Seed(cmd.Context(), path); err != nil {
			return err
		}

		zap.S().Info("Catalog seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to the seed file, defaults to ESTIMATOR_SEED_FILE")
}
