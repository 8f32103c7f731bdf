package repository

import (
	"context"

	"github.com/smallbiznis/invoicely/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// invoiceRecord carries only the caller-supplied columns so the store fills paid,
// add_date and paid_date from their defaults.
type invoiceRecord struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	CompCode string
	Amt      float64
}

func (invoiceRecord) TableName() string { return "invoices" }

type detailRow struct {
	ID                 int64
	Amt                float64
	Paid               bool
	AddDate            domain.Date
	PaidDate           domain.NullDate
	CompanyCode        string
	CompanyName        string
	CompanyDescription string
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, compCode string, amt float64) (int64, error) {
	record := invoiceRecord{CompCode: compCode, Amt: amt}
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, comp_code, amt, paid, add_date, paid_date
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoices).Error
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, nil
	}
	return &invoices[0], nil
}

func (r *repo) FindDetail(ctx context.Context, db *gorm.DB, id int64) (*domain.InvoiceDetail, error) {
	var rows []detailRow
	err := db.WithContext(ctx).Raw(
		`SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date,
		        c.code AS company_code, c.name AS company_name,
		        COALESCE(c.description, '') AS company_description
		 FROM invoices AS i
		 JOIN companies AS c ON c.code = i.comp_code
		 WHERE i.id = ?`,
		id,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &domain.InvoiceDetail{
		ID:       row.ID,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  row.AddDate,
		PaidDate: row.PaidDate,
		Company: domain.InvoiceCompany{
			Code:        row.CompanyCode,
			Name:        row.CompanyName,
			Description: row.CompanyDescription,
		},
	}, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.InvoiceSummary, error) {
	invoices := []domain.InvoiceSummary{}
	err := db.WithContext(ctx).Raw(
		`SELECT id, comp_code FROM invoices ORDER BY id`,
	).Scan(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) UpdatePayment(ctx context.Context, db *gorm.DB, id int64, amt float64, paid bool, paidDate domain.NullDate) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices SET amt = ?, paid = ?, paid_date = ? WHERE id = ?`,
		amt,
		paid,
		paidDate,
		id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Exec(`DELETE FROM invoices WHERE id = ?`, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
