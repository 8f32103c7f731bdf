package server

import (
	"context"

	companydomain "github.com/smallbiznis/invoicely/internal/company/domain"
	invoicedomain "github.com/smallbiznis/invoicely/internal/invoice/domain"
	"github.com/stretchr/testify/mock"
)

type mockCompanyService struct {
	mock.Mock
}

func (m *mockCompanyService) List(ctx context.Context) ([]companydomain.CompanySummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]companydomain.CompanySummary)
	return items, args.Error(1)
}

func (m *mockCompanyService) Get(ctx context.Context, code string) (companydomain.CompanyDetail, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(companydomain.CompanyDetail), args.Error(1)
}

func (m *mockCompanyService) Create(ctx context.Context, req companydomain.CreateCompanyRequest) (companydomain.Company, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(companydomain.Company), args.Error(1)
}

func (m *mockCompanyService) Update(ctx context.Context, req companydomain.UpdateCompanyRequest) (companydomain.Company, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(companydomain.Company), args.Error(1)
}

func (m *mockCompanyService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) List(ctx context.Context) ([]invoicedomain.InvoiceSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]invoicedomain.InvoiceSummary)
	return items, args.Error(1)
}

func (m *mockInvoiceService) Get(ctx context.Context, id string) (invoicedomain.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invoicedomain.InvoiceDetail), args.Error(1)
}

func (m *mockInvoiceService) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(invoicedomain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) Update(ctx context.Context, req invoicedomain.UpdateInvoiceRequest) (invoicedomain.Invoice, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(invoicedomain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ companydomain.Service = (*mockCompanyService)(nil)
	_ invoicedomain.Service = (*mockInvoiceService)(nil)
)
