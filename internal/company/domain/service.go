package domain

import (
	"context"
	"errors"
)

type CreateCompanyRequest struct {
	Name        string
	Description string
}

// UpdateCompanyRequest changes only the fields that are set.
type UpdateCompanyRequest struct {
	Code        string
	Name        *string
	Description *string
}

type Service interface {
	List(ctx context.Context) ([]CompanySummary, error)
	Get(ctx context.Context, code string) (CompanyDetail, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, code string) error
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrNotFound      = errors.New("company not found")
	ErrDuplicateCode = errors.New("company already exists")
)
