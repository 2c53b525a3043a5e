package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// app carries what the subcommands share; the pool is opened lazily so
// commands without database access never dial postgres.
type app struct {
	env        string
	configPath string
	cfg        *config.Config
	pool       *pgxpool.Pool
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.env, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) dbPool(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	if a.cfg == nil {
		if err := a.loadConfig(); err != nil {
			return nil, err
		}
	}
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     a.cfg.PostgresHost,
		DBPort:     a.cfg.PostgresPort,
		DBName:     a.cfg.PostgresDBName,
		DBUser:     a.cfg.PostgresUser,
		DBPassword: os.Getenv("GRINDLOG_DB_PASSWORD"),
	})
	if err != nil {
		return nil, fmt.Errorf("db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	a.pool = pool
	return pool, nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "grindlogctl",
		Short: "Operator tooling for the grindlog backend",
		Long: `grindlogctl runs maintenance tasks against the grindlog database.

EXAMPLES:

  $ grindlogctl migrate                      # Create missing tables and indexes
  $ grindlogctl promote ana@example.com      # Grant the admin role
  $ grindlogctl demote ana@example.com       # Back to a regular user
  $ grindlogctl hash-password s3cret         # Print a bcrypt hash
  $ grindlogctl stats                        # Aggregate numbers

CONFIGURATION:

  Connection settings come from the same TOML file as the service (--config,
  --env). The database password is read from GRINDLOG_DB_PASSWORD.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.env, "env", "development", "environment [prod | production | dev | development | test]")
	root.PersistentFlags().StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file")

	root.AddCommand(
		newMigrateCmd(a),
		newRoleCmd(a, "promote"),
		newRoleCmd(a, "demote"),
		newHashPasswordCmd(),
		newStatsCmd(a),
	)
	return root
}
