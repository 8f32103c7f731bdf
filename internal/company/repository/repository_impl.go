package repository

import (
	"context"

	"github.com/smallbiznis/invoicely/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO companies (code, name, description) VALUES (?, ?, ?)`,
		company.Code,
		company.Name,
		company.Description,
	).Error
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).Raw(
		`SELECT code, name, COALESCE(description, '') AS description
		 FROM companies WHERE code = ?`,
		code,
	).Scan(&company).Error
	if err != nil {
		return nil, err
	}
	if company.Code == "" {
		return nil, nil
	}
	return &company, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.CompanySummary, error) {
	companies := []domain.CompanySummary{}
	err := db.WithContext(ctx).Raw(
		`SELECT code, name FROM companies ORDER BY name, code`,
	).Scan(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *repo) ListInvoiceIDs(ctx context.Context, db *gorm.DB, code string) ([]int64, error) {
	ids := []int64{}
	err := db.WithContext(ctx).Raw(
		`SELECT id FROM invoices WHERE comp_code = ? ORDER BY id`,
		code,
	).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, code string, name, description *string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE companies
		 SET name = COALESCE(?, name), description = COALESCE(?, description)
		 WHERE code = ?`,
		name,
		description,
		code,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, code string) (int64, error) {
	result := db.WithContext(ctx).Exec(`DELETE FROM companies WHERE code = ?`, code)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
