package migration

import (
	"context"

	"github.com/smallbiznis/invoicely/internal/config"
	"github.com/smallbiznis/invoicely/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err := RunMigrations(sqlDB, conn.Dialector.Name()); err != nil {
			return err
		}
		log.Info("migrations applied", zap.String("dialect", conn.Dialector.Name()))

		if !cfg.SeedOnStart {
			return nil
		}

		fixtures := seed.Default()
		if cfg.SeedFile != "" {
			fixtures, err = seed.Load(cfg.SeedFile)
			if err != nil {
				return err
			}
		}
		if err := seed.Apply(context.Background(), conn, fixtures); err != nil {
			return err
		}
		log.Info("seed fixtures applied",
			zap.Int("companies", len(fixtures.Companies)),
			zap.Int("invoices", len(fixtures.Invoices)),
		)
		return nil
	}),
)
