package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Company is a fixture row of the companies table.
type Company struct {
	Code        string `mapstructure:"code"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// Invoice is a fixture row of the invoices table. Dates use the YYYY-MM-DD layout.
type Invoice struct {
	ID       int64   `mapstructure:"id"`
	CompCode string  `mapstructure:"comp_code"`
	Amt      float64 `mapstructure:"amt"`
	Paid     bool    `mapstructure:"paid"`
	AddDate  string  `mapstructure:"add_date"`
	PaidDate string  `mapstructure:"paid_date"`
}

// Fixtures is the full data set written by Apply.
type Fixtures struct {
	Companies []Company `mapstructure:"companies"`
	Invoices  []Invoice `mapstructure:"invoices"`
}

// Default returns the demo data set.
func Default() Fixtures {
	return Fixtures{
		Companies: []Company{
			{Code: "peachpie", Name: "Peach Pie Co", Description: "The best pies ever"},
			{Code: "shoofly", Name: "ShooFly Pie Co", Description: "The best fruitless pies"},
		},
		Invoices: []Invoice{
			{ID: 1, CompCode: "peachpie", Amt: 33.99, Paid: false, AddDate: "2022-10-11"},
			{ID: 2, CompCode: "peachpie", Amt: 94.47, Paid: true, AddDate: "2022-10-12", PaidDate: "2022-10-03"},
			{ID: 3, CompCode: "shoofly", Amt: 1000.11, Paid: false, AddDate: "2022-10-14"},
		},
	}
}

// Load reads fixtures from a YAML, JSON or TOML file.
func Load(path string) (Fixtures, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Fixtures{}, fmt.Errorf("read seed file: %w", err)
	}

	var fixtures Fixtures
	if err := v.Unmarshal(&fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("decode seed file: %w", err)
	}
	return fixtures, nil
}

// Apply replaces the contents of both tables with fixtures.
func Apply(ctx context.Context, db *gorm.DB, fixtures Fixtures) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM invoices`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM companies`).Error; err != nil {
			return err
		}

		for _, c := range fixtures.Companies {
			if err := tx.Exec(
				`INSERT INTO companies (code, name, description) VALUES (?, ?, ?)`,
				c.Code, c.Name, c.Description,
			).Error; err != nil {
				return fmt.Errorf("seed company %s: %w", c.Code, err)
			}
		}

		for _, inv := range fixtures.Invoices {
			if err := tx.Exec(
				`INSERT INTO invoices (id, comp_code, amt, paid, add_date, paid_date)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				inv.ID, inv.CompCode, inv.Amt, inv.Paid, inv.AddDate, nullableDate(inv.PaidDate),
			).Error; err != nil {
				return fmt.Errorf("seed invoice %d: %w", inv.ID, err)
			}
		}

		if tx.Dialector.Name() == "postgres" && len(fixtures.Invoices) > 0 {
			return tx.Exec(
				`SELECT setval(pg_get_serial_sequence('invoices', 'id'), (SELECT MAX(id) FROM invoices))`,
			).Error
		}
		return nil
	})
}

func nullableDate(value string) any {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}
