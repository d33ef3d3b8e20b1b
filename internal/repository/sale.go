package repository

import (
	"context"
	"fmt"

	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/repository/dao"
)

var (
	ErrSaleNotFound      = dao.ErrSaleNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type SaleDAO interface {
	InsertSale(ctx context.Context, sale dao.Sale, items []dao.SaleItem) (dao.Sale, error)
	FindAll(ctx context.Context) ([]dao.SaleSummary, error)
	FindByID(ctx context.Context, id uint) (dao.Sale, error)
}

type SaleRepository struct {
	dao SaleDAO
}

func NewSaleRepository(dao SaleDAO) *SaleRepository {
	return &SaleRepository{
		dao: dao,
	}
}

func (r *SaleRepository) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	daoSale := dao.Sale{
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		ReferenceNo:   sale.ReferenceNo,
	}

	daoItems := make([]dao.SaleItem, len(sale.Items))
	for i, item := range sale.Items {
		daoItems[i] = dao.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}

	created, err := r.dao.InsertSale(ctx, daoSale, daoItems)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.InsertSale -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.SaleSummary, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	summaries := make([]domain.SaleSummary, len(found))
	for i, s := range found {
		summaries[i] = domain.SaleSummary{
			ID:            s.ID,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
			ReferenceNo:   s.ReferenceNo,
			CreatedAt:     s.CreatedAt,
			TotalItems:    s.TotalItems,
		}
	}

	return summaries, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uint) (domain.Sale, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SaleRepository) daoToDomain(s dao.Sale) domain.Sale {
	items := make([]domain.SaleItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = domain.SaleItem{
			ID:           item.ID,
			SaleID:       item.SaleID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			ProductName:  item.Product.Name,
			ProductPrice: item.Product.Price,
		}
	}

	return domain.Sale{
		ID:            s.ID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		ReferenceNo:   s.ReferenceNo,
		CreatedAt:     s.CreatedAt,
		Items:         items,
	}
}
