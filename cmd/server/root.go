package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"poadmin/config"
)

var version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "poadmin",
	Short: "Purchase order management API",
	Long: `Purchase order management API.

Serves CRUD, filtered listing and reporting endpoints for purchase order
headers and their item, cost, conversation and file details.

Examples:
  poadmin serve                # Run migrations and start the HTTP server
  poadmin migrate up           # Apply pending migrations
  poadmin migrate down -n 1    # Roll back one migration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadConfig(); err != nil {
			return err
		}
		slog.SetDefault(config.NewLogger(cfg))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
