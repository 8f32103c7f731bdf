package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/invoicely/internal/dbtest"
	"github.com/smallbiznis/invoicely/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	fixtures := seed.Default()

	require.Len(t, fixtures.Companies, 2)
	require.Len(t, fixtures.Invoices, 3)
	assert.Equal(t, "peachpie", fixtures.Companies[0].Code)
	assert.Equal(t, "2022-10-03", fixtures.Invoices[1].PaidDate)
	assert.Empty(t, fixtures.Invoices[0].PaidDate)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	content := `
companies:
  - code: acme
    name: Acme
    description: Anvils
invoices:
  - id: 7
    comp_code: acme
    amt: 12.5
    paid: true
    add_date: "2023-01-02"
    paid_date: "2023-01-05"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fixtures, err := seed.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []seed.Company{{Code: "acme", Name: "Acme", Description: "Anvils"}}, fixtures.Companies)
	require.Len(t, fixtures.Invoices, 1)
	assert.Equal(t, seed.Invoice{
		ID:       7,
		CompCode: "acme",
		Amt:      12.5,
		Paid:     true,
		AddDate:  "2023-01-02",
		PaidDate: "2023-01-05",
	}, fixtures.Invoices[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyReplacesRows(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	require.NoError(t, seed.Apply(ctx, db, seed.Default()))
	require.NoError(t, seed.Apply(ctx, db, seed.Default()))

	var companies int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM companies`).Scan(&companies).Error)
	assert.Equal(t, int64(2), companies)

	var ids []int64
	require.NoError(t, db.Raw(`SELECT id FROM invoices WHERE paid_date IS NULL ORDER BY id`).Scan(&ids).Error)
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestApplyRequiresDB(t *testing.T) {
	assert.Error(t, seed.Apply(context.Background(), nil, seed.Default()))
}
