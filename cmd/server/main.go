package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "acme-store",
		Short: "Acme Store favorites API",
		Long:  `Acme Store serves users, products and per-user favorite products over a JSON HTTP API.`,
		// Running the binary without a subcommand starts the server.
		RunE:         runServe,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:          "serve",
			Short:        "Start the HTTP API server",
			RunE:         runServe,
			SilenceUsage: true,
		},
		&cobra.Command{
			Use:          "seed",
			Short:        "Reset the schema and insert the sample data set",
			RunE:         runSeed,
			SilenceUsage: true,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
