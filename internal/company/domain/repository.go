package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Company, error)
	List(ctx context.Context, db *gorm.DB) ([]CompanySummary, error)
	ListInvoiceIDs(ctx context.Context, db *gorm.DB, code string) ([]int64, error)
	Update(ctx context.Context, db *gorm.DB, code string, name, description *string) error
	Delete(ctx context.Context, db *gorm.DB, code string) (int64, error)
}
