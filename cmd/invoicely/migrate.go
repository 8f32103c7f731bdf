package main

import (
	"context"
	"time"

	"github.com/smallbiznis/invoicely/internal/config"
	"github.com/smallbiznis/invoicely/internal/migration"
	"github.com/smallbiznis/invoicely/internal/observability"
	"github.com/smallbiznis/invoicely/internal/seed"
	"github.com/smallbiznis/invoicely/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, conn *gorm.DB, log *zap.Logger) error {
			if err := applyMigrations(conn); err != nil {
				return err
			}
			cmd.Println("Schema is up to date.")
			return nil
		})
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all companies and invoices with fixture data",
	Long: `Replaces the contents of the companies and invoices tables.
Without --file the built-in demo data is used.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fixtures := seed.Default()
		if seedFile != "" {
			loaded, err := seed.Load(seedFile)
			if err != nil {
				return err
			}
			fixtures = loaded
		}

		return withDatabase(cmd.Context(), func(ctx context.Context, conn *gorm.DB, log *zap.Logger) error {
			if err := applyMigrations(conn); err != nil {
				return err
			}
			if err := seed.Apply(ctx, conn, fixtures); err != nil {
				return err
			}
			cmd.Printf("Seeded %d companies and %d invoices.\n", len(fixtures.Companies), len(fixtures.Invoices))
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("invoicely version %s\n", version)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML, JSON or TOML fixture file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyMigrations(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return migration.RunMigrations(sqlDB, conn.Dialector.Name())
}

// withDatabase starts only the config, logging and store modules, runs fn, and stops them.
func withDatabase(ctx context.Context, fn func(context.Context, *gorm.DB, *zap.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		conn *gorm.DB
		log  *zap.Logger
	)
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		fx.Populate(&conn, &log),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx, conn, log)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}
