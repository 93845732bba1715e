package main

import (
	"time"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	var configFile string

	// root command
	rootCmd := &cobra.Command{
		Use:           "bizdesk",
		Short:         "Clients, projects, equipment, expenses and timesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Init(configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "optional YAML config file")

	// command for running the HTTP API
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Serve(cmd.Context())
		},
	}

	// command for creating or updating the tables
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Migrate(cmd.Context())
		},
	}

	// command for minting a session token
	var (
		user  string
		email string
		name  string
		ttl   time.Duration
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Token(cmd.OutOrStdout(), user, email, name, ttl)
		},
	}
	tokenCmd.Flags().StringVar(&user, "user", "", "user id (token subject)")
	tokenCmd.Flags().StringVar(&email, "email", "", "user email")
	tokenCmd.Flags().StringVar(&name, "name", "", "display name")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 0, "lifetime, defaults to token_ttl")
	_ = tokenCmd.MarkFlagRequired("user")

	// command for bulk-loading records
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import records from CSV",
	}
	importClientsCmd := &cobra.Command{
		Use:   "clients [file.csv]",
		Short: "Import clients (name, email, phone, address)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ImportClients(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	importCmd.AddCommand(importClientsCmd)

	// add commands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(importCmd)

	return rootCmd
}
