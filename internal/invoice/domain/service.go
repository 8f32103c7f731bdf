package domain

import (
	"context"
	"errors"
)

type CreateInvoiceRequest struct {
	CompCode string
	Amt      *float64
}

// UpdateInvoiceRequest sets the amount and payment flag. A nil Paid keeps the current flag.
type UpdateInvoiceRequest struct {
	ID   string
	Amt  *float64
	Paid *bool
}

type Service interface {
	List(ctx context.Context) ([]InvoiceSummary, error)
	Get(ctx context.Context, id string) (InvoiceDetail, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	Update(ctx context.Context, req UpdateInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidCompanyCode = errors.New("invalid_comp_code")
	ErrInvalidAmount      = errors.New("invalid_amt")
	ErrNotFound           = errors.New("invoice not found")
	ErrCompanyNotFound    = errors.New("company not found")
)
