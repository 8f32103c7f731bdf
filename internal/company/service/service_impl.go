package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallbiznis/invoicely/internal/company/domain"
	"github.com/smallbiznis/invoicely/internal/observability/metrics"
	"github.com/smallbiznis/invoicely/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("company.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.CompanySummary, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CompanySummary{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, code string) (domain.CompanyDetail, error) {
	code, err := parseCode(code)
	if err != nil {
		return domain.CompanyDetail{}, err
	}

	company, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.CompanyDetail{}, err
	}
	if company == nil {
		return domain.CompanyDetail{}, notFound(code)
	}

	ids, err := s.repo.ListInvoiceIDs(ctx, s.db, code)
	if err != nil {
		return domain.CompanyDetail{}, err
	}
	if ids == nil {
		ids = []int64{}
	}

	return domain.CompanyDetail{Company: *company, Invoices: ids}, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateCompanyRequest) (domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Company{}, domain.ErrInvalidName
	}

	code, err := domain.CodeFromName(name)
	if err != nil {
		return domain.Company{}, err
	}

	company := domain.Company{
		Code:        code,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Insert(ctx, s.db, &company); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Company{}, fmt.Errorf("%w: %s", domain.ErrDuplicateCode, code)
		}
		return domain.Company{}, err
	}

	s.metrics.RecordCompanyCreated(ctx)
	s.log.Info("company created", zap.String("code", code))
	return company, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCompanyRequest) (domain.Company, error) {
	code, err := parseCode(req.Code)
	if err != nil {
		return domain.Company{}, err
	}

	existing, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.Company{}, err
	}
	if existing == nil {
		return domain.Company{}, notFound(code)
	}

	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return domain.Company{}, domain.ErrInvalidName
		}
		name = &trimmed
	}
	var description *string
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		description = &trimmed
	}

	if err := s.repo.Update(ctx, s.db, code, name, description); err != nil {
		return domain.Company{}, err
	}

	company, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.Company{}, err
	}
	if company == nil {
		return domain.Company{}, notFound(code)
	}
	return *company, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	code, err := parseCode(code)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, code)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(code)
	}

	s.metrics.RecordCompanyDeleted(ctx)
	s.log.Info("company deleted", zap.String("code", code))
	return nil
}

// parseCode treats keys that no generated code can equal as missing rows.
func parseCode(value string) (string, error) {
	if value == "" || value != strings.TrimSpace(value) {
		return "", notFound(value)
	}
	return value, nil
}

func notFound(code string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, code)
}
