package service

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/invoicely/internal/clock"
	"github.com/smallbiznis/invoicely/internal/dbtest"
	"github.com/smallbiznis/invoicely/internal/invoice/domain"
	"github.com/smallbiznis/invoicely/internal/invoice/repository"
	"github.com/smallbiznis/invoicely/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	clock *clock.FakeClock
	svc   domain.Service
}

func setupService(t *testing.T) fixture {
	t.Helper()

	db := dbtest.Open(t)
	require.NoError(t, seed.Apply(context.Background(), db, seed.Default()))

	fake := clock.NewFakeClock(time.Date(2024, 5, 17, 15, 4, 5, 0, time.UTC))
	return fixture{
		db:    db,
		clock: fake,
		svc: New(Params{
			DB:    db,
			Log:   zap.NewNop(),
			Clock: fake,
			Repo:  repository.Provide(),
		}),
	}
}

func amount(v float64) *float64 { return &v }
func flag(v bool) *bool { return &v }

func TestListOrdersByID(t *testing.T) {
	f := setupService(t)

	items, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.InvoiceSummary{
		{ID: 1, CompCode: "peachpie"},
		{ID: 2, CompCode: "peachpie"},
		{ID: 3, CompCode: "shoofly"},
	}, items)
}

func TestGetJoinsCompany(t *testing.T) {
	f := setupService(t)

	detail, err := f.svc.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.ID)
	assert.InDelta(t, 94.47, detail.Amt, 0.001)
	assert.True(t, detail.Paid)
	assert.Equal(t, "2022-10-12", detail.AddDate.String())
	require.True(t, detail.PaidDate.Valid)
	assert.Equal(t, "2022-10-03", detail.PaidDate.Date.String())
	assert.Equal(t, domain.InvoiceCompany{
		Code:        "peachpie",
		Name:        "Peach Pie Co",
		Description: "The best pies ever",
	}, detail.Company)
}

func TestGetUnknownOrMalformedID(t *testing.T) {
	f := setupService(t)

	for _, id := range []string{"99", "abc", "0", "-1", "", "+1", "01", " 1", "1 "} {
		_, err := f.svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
	}
}

func TestCreateUsesStoreDefaults(t *testing.T) {
	f := setupService(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CompCode: "shoofly",
		Amt:      amount(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), inv.ID)
	assert.Equal(t, "shoofly", inv.CompCode)
	assert.InDelta(t, 12.5, inv.Amt, 0.001)
	assert.False(t, inv.Paid)
	assert.False(t, inv.PaidDate.Valid)
	assert.False(t, time.Time(inv.AddDate).IsZero())
}

func TestCreateUnknownCompany(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CompCode: "nope",
		Amt:      amount(1),
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCreateRequiresFields(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{Amt: amount(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidCompanyCode)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{CompCode: "peachpie"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestUpdatePaymentTransitions(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	inv, err := f.svc.Update(ctx, domain.UpdateInvoiceRequest{ID: "1", Amt: amount(33.99), Paid: flag(true)})
	require.NoError(t, err)
	assert.True(t, inv.Paid)
	require.True(t, inv.PaidDate.Valid)
	assert.Equal(t, "2024-05-17", inv.PaidDate.Date.String())

	f.clock.Advance(72 * time.Hour)
	inv, err = f.svc.Update(ctx, domain.UpdateInvoiceRequest{ID: "1", Amt: amount(40), Paid: flag(true)})
	require.NoError(t, err)
	assert.InDelta(t, 40.0, inv.Amt, 0.001)
	require.True(t, inv.PaidDate.Valid)
	assert.Equal(t, "2024-05-17", inv.PaidDate.Date.String())

	inv, err = f.svc.Update(ctx, domain.UpdateInvoiceRequest{ID: "1", Amt: amount(40), Paid: flag(false)})
	require.NoError(t, err)
	assert.False(t, inv.Paid)
	assert.False(t, inv.PaidDate.Valid)
}

func TestUpdateClearsSeededPaidDate(t *testing.T) {
	f := setupService(t)

	inv, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{ID: "2", Amt: amount(94.47), Paid: flag(false)})
	require.NoError(t, err)
	assert.False(t, inv.Paid)
	assert.False(t, inv.PaidDate.Valid)
}

func TestUpdateWithoutPaidKeepsState(t *testing.T) {
	f := setupService(t)

	inv, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{ID: "2", Amt: amount(100)})
	require.NoError(t, err)
	assert.True(t, inv.Paid)
	require.True(t, inv.PaidDate.Valid)
	assert.Equal(t, "2022-10-03", inv.PaidDate.Date.String())
	assert.InDelta(t, 100.0, inv.Amt, 0.001)
}

func TestUpdateUnknownInvoice(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{ID: "42", Amt: amount(1), Paid: flag(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateUnknownInvoiceWithoutAmount(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{ID: "42", Paid: flag(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestUpdateRequiresAmount(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{ID: "1", Paid: flag(true)})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDeleteTwice(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, "3"))
	assert.ErrorIs(t, f.svc.Delete(ctx, "3"), domain.ErrNotFound)

	_, err := f.svc.Get(ctx, "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
