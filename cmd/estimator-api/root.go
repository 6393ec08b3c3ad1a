package main

import (
	"fmt"

	"github.com/moveplanner/estimator/internal/config"
	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
)

var rootCmd = &cobra.Command{
	Use:          "estimator-api",
	Short:        "Move estimator api",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "Path to a dotenv file loaded before reading the configuration")
}

// setup loads the configuration and installs the global logger. The returned
// function flushes the logger.
func setup() (*config.Config, func(), error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg, err := config.New()
	if err != nil {
		return nil, nil, fmt.Errorf("reading configuration: %w", err)
	}

	undo, err := log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	return cfg, undo, nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	zap.S().Info("Initializing data store")
	db, err := store.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing data store: %w", err)
	}
	return store.NewStore(db), nil
}
