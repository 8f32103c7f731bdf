package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "invoicely",
	Short: "Companies and invoices HTTP API",
	Long: `invoicely serves the companies and invoices API.
Running it without a subcommand is the same as "invoicely serve".
Settings are read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
