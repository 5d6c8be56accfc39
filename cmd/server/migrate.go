package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"poadmin/db"
	"poadmin/db/postgres"
)

var downSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPostgres(cmd.Context(), func(pg *postgres.PostgresDB) error {
			return db.MigrateUp(pg.Conn)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		return withPostgres(cmd.Context(), func(pg *postgres.PostgresDB) error {
			return db.MigrateDown(pg.Conn, downSteps)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPostgres(cmd.Context(), func(pg *postgres.PostgresDB) error {
			v, dirty, err := db.MigrationVersion(pg.Conn)
			if err != nil {
				return err
			}
			cmd.Printf("version %d (dirty: %t)\n", v, dirty)
			return nil
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVarP(&downSteps, "steps", "n", 1, "Number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withPostgres(ctx context.Context, fn func(*postgres.PostgresDB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pg := postgres.NewPostgresDB(cfg.PostgresURL, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err := pg.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pg.Disconnect(ctx)
	return fn(pg)
}
