package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		pool, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("migrate", zap.Error(err))
			return err
		}
		pool.Close()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
