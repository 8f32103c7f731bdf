package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/smallbiznis/invoicely/internal/clock"
	"github.com/smallbiznis/invoicely/internal/invoice/domain"
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
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	c := p.Clock
	if c == nil {
		c = clock.New()
	}
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		clock:   c,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.InvoiceSummary{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.InvoiceDetail, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}

	item, err := s.repo.FindDetail(ctx, s.db, invoiceID)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	if item == nil {
		return domain.InvoiceDetail{}, notFound(id)
	}
	return *item, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	compCode := strings.TrimSpace(req.CompCode)
	if compCode == "" {
		return domain.Invoice{}, domain.ErrInvalidCompanyCode
	}
	if req.Amt == nil {
		return domain.Invoice{}, domain.ErrInvalidAmount
	}

	id, err := s.repo.Insert(ctx, s.db, compCode, *req.Amt)
	if err != nil {
		if db.IsForeignKeyErr(err) {
			return domain.Invoice{}, fmt.Errorf("%w: %s", domain.ErrCompanyNotFound, compCode)
		}
		return domain.Invoice{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, notFound(strconv.FormatInt(id, 10))
	}

	s.metrics.RecordInvoiceCreated(ctx)
	s.log.Info("invoice created", zap.Int64("invoice_id", id), zap.String("comp_code", compCode))
	return *item, nil
}

// Update sets the amount and payment flag and derives the paid date from the stored one.
// The read and the write are separate statements; concurrent updates resolve last-writer-wins.
func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (domain.Invoice, error) {
	invoiceID, err := parseID(req.ID)
	if err != nil {
		return domain.Invoice{}, err
	}

	current, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if current == nil {
		return domain.Invoice{}, notFound(req.ID)
	}
	if req.Amt == nil {
		return domain.Invoice{}, domain.ErrInvalidAmount
	}

	paid := current.Paid
	if req.Paid != nil {
		paid = *req.Paid
	}
	paidDate, transition := domain.ResolvePaidDate(current.PaidDate, paid, domain.DateOf(s.clock.Now()))

	if err := s.repo.UpdatePayment(ctx, s.db, invoiceID, *req.Amt, paid, paidDate); err != nil {
		return domain.Invoice{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if updated == nil {
		return domain.Invoice{}, notFound(req.ID)
	}

	s.metrics.RecordPaymentTransition(ctx, string(transition))
	s.log.Debug("invoice updated",
		zap.Int64("invoice_id", invoiceID),
		zap.String("transition", string(transition)),
	)
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	invoiceID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, invoiceID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(id)
	}

	s.log.Info("invoice deleted", zap.Int64("invoice_id", invoiceID))
	return nil
}

// parseID treats ids that cannot name a row as missing rows.
// Only the canonical decimal form names a row, so "+1", "01" and " 1" are all missing.
func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != value {
		return 0, notFound(value)
	}
	return id, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}
