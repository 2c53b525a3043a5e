package main

import (
	"github.com/ggrinberger/grindlog-sub000/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Apply the embedded schema to the configured database.

Every statement uses IF NOT EXISTS, so running it again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.dbPool(cmd.Context())
			if err != nil {
				return err
			}
			if err := db.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			color.Green("✓ schema applied to %s", a.cfg.PostgresDBName)
			return nil
		},
	}
}
