package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, compCode string, amt float64) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Invoice, error)
	FindDetail(ctx context.Context, db *gorm.DB, id int64) (*InvoiceDetail, error)
	List(ctx context.Context, db *gorm.DB) ([]InvoiceSummary, error)
	UpdatePayment(ctx context.Context, db *gorm.DB, id int64, amt float64, paid bool, paidDate NullDate) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
