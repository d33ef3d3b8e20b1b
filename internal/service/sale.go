package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/repository"
)

var (
	ErrEmptySale         = errors.New("no items in sale")
	ErrInvalidLineItem   = errors.New("invalid line item")
	ErrSaleNotFound      = repository.ErrSaleNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
)

const defaultPaymentMethod = "Cash"

type SaleRepository interface {
	Create(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	FindAll(ctx context.Context) ([]domain.SaleSummary, error)
	FindByID(ctx context.Context, id uint) (domain.Sale, error)
}

type SaleService struct {
	repo SaleRepository
}

func NewSaleService(repo SaleRepository) *SaleService {
	return &SaleService{
		repo: repo,
	}
}

// CreateSale validates the submitted lines, derives the sale total from the
// client-submitted unit prices, and records the sale atomically. The total and
// per-line subtotals are intentionally not re-priced against the catalog.
func (s *SaleService) CreateSale(ctx context.Context, lines []domain.SaleLine, paymentMethod string, referenceNo *string) (domain.Sale, error) {
	if err := validateLines(lines); err != nil {
		return domain.Sale{}, err
	}

	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	items := make([]domain.SaleItem, len(lines))
	total := decimal.Zero
	for i, line := range lines {
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items[i] = domain.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		}
		total = total.Add(subtotal)
	}

	created, err := s.repo.Create(ctx, domain.Sale{
		Total:         total,
		PaymentMethod: paymentMethod,
		ReferenceNo:   referenceNo,
		Items:         items,
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	sales, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sales, nil
}

func (s *SaleService) GetSale(ctx context.Context, id uint) (domain.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sale, nil
}

func validateLines(lines []domain.SaleLine) error {
	if len(lines) == 0 {
		return ErrEmptySale
	}

	for i, line := range lines {
		if line.ProductID == 0 {
			return fmt.Errorf("item %v: missing product id: %w", i, ErrInvalidLineItem)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("item %v: quantity must be positive: %w", i, ErrInvalidLineItem)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("item %v: price must not be negative: %w", i, ErrInvalidLineItem)
		}
	}

	return nil
}
