package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirgo/pos-api/internal/domain"
)

type fakeSaleRepository struct {
	createCalls int
	lastCreated domain.Sale
	createErr   error

	summaries []domain.SaleSummary
	sale      domain.Sale
	findErr   error
}

func (f *fakeSaleRepository) Create(_ context.Context, sale domain.Sale) (domain.Sale, error) {
	f.createCalls++
	f.lastCreated = sale
	if f.createErr != nil {
		return domain.Sale{}, f.createErr
	}

	sale.ID = 1

	return sale, nil
}

func (f *fakeSaleRepository) FindAll(_ context.Context) ([]domain.SaleSummary, error) {
	return f.summaries, f.findErr
}

func (f *fakeSaleRepository) FindByID(_ context.Context, id uint) (domain.Sale, error) {
	if f.findErr != nil {
		return domain.Sale{}, f.findErr
	}

	return f.sale, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSaleService_CreateSale_Validation(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.SaleLine
		wantErr error
	}{
		{
			name:    "nil items",
			lines:   nil,
			wantErr: ErrEmptySale,
		},
		{
			name:    "empty items",
			lines:   []domain.SaleLine{},
			wantErr: ErrEmptySale,
		},
		{
			name: "missing product id",
			lines: []domain.SaleLine{
				{ProductID: 0, Quantity: 1, UnitPrice: price("1.00")},
			},
			wantErr: ErrInvalidLineItem,
		},
		{
			name: "zero quantity",
			lines: []domain.SaleLine{
				{ProductID: 1, Quantity: 0, UnitPrice: price("1.00")},
			},
			wantErr: ErrInvalidLineItem,
		},
		{
			name: "negative quantity",
			lines: []domain.SaleLine{
				{ProductID: 1, Quantity: -2, UnitPrice: price("1.00")},
			},
			wantErr: ErrInvalidLineItem,
		},
		{
			name: "negative price",
			lines: []domain.SaleLine{
				{ProductID: 1, Quantity: 1, UnitPrice: price("-0.01")},
			},
			wantErr: ErrInvalidLineItem,
		},
		{
			name: "second item invalid",
			lines: []domain.SaleLine{
				{ProductID: 1, Quantity: 1, UnitPrice: price("1.00")},
				{ProductID: 2, Quantity: 0, UnitPrice: price("1.00")},
			},
			wantErr: ErrInvalidLineItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSaleRepository{}
			svc := NewSaleService(repo)

			_, err := svc.CreateSale(context.Background(), tt.lines, "", nil)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.createCalls, "no storage call expected on validation failure")
		})
	}
}

func TestSaleService_CreateSale_Total(t *testing.T) {
	repo := &fakeSaleRepository{}
	svc := NewSaleService(repo)

	lines := []domain.SaleLine{
		{ProductID: 1, Quantity: 2, UnitPrice: price("3.50")},
		{ProductID: 2, Quantity: 4, UnitPrice: price("1.25")},
	}

	created, err := svc.CreateSale(context.Background(), lines, "", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.True(t, price("12.00").Equal(created.Total), "got total %v", created.Total)

	require.Len(t, repo.lastCreated.Items, 2)
	assert.True(t, price("7.00").Equal(repo.lastCreated.Items[0].Subtotal))
	assert.True(t, price("5.00").Equal(repo.lastCreated.Items[1].Subtotal))
	assert.Equal(t, uint(1), repo.lastCreated.Items[0].ProductID)
	assert.Equal(t, 4, repo.lastCreated.Items[1].Quantity)
}

func TestSaleService_CreateSale_PaymentDefaults(t *testing.T) {
	repo := &fakeSaleRepository{}
	svc := NewSaleService(repo)

	lines := []domain.SaleLine{
		{ProductID: 1, Quantity: 1, UnitPrice: price("9.99")},
	}

	_, err := svc.CreateSale(context.Background(), lines, "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Cash", repo.lastCreated.PaymentMethod)
	assert.Nil(t, repo.lastCreated.ReferenceNo)

	ref := "INV-001"
	_, err = svc.CreateSale(context.Background(), lines, "Card", &ref)

	require.NoError(t, err)
	assert.Equal(t, "Card", repo.lastCreated.PaymentMethod)
	require.NotNil(t, repo.lastCreated.ReferenceNo)
	assert.Equal(t, "INV-001", *repo.lastCreated.ReferenceNo)
}

func TestSaleService_CreateSale_RepositoryError(t *testing.T) {
	repo := &fakeSaleRepository{createErr: ErrInsufficientStock}
	svc := NewSaleService(repo)

	lines := []domain.SaleLine{
		{ProductID: 1, Quantity: 100, UnitPrice: price("2.00")},
	}

	_, err := svc.CreateSale(context.Background(), lines, "", nil)

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestSaleService_GetSale(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		want := domain.Sale{ID: 5, Total: price("12.00"), PaymentMethod: "Cash"}
		svc := NewSaleService(&fakeSaleRepository{sale: want})

		got, err := svc.GetSale(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewSaleService(&fakeSaleRepository{findErr: ErrSaleNotFound})

		_, err := svc.GetSale(context.Background(), 999999)

		assert.ErrorIs(t, err, ErrSaleNotFound)
	})
}

func TestSaleService_ListSales(t *testing.T) {
	want := []domain.SaleSummary{
		{ID: 2, Total: price("12.00"), TotalItems: 6},
		{ID: 1, Total: price("3.50"), TotalItems: 1},
	}
	svc := NewSaleService(&fakeSaleRepository{summaries: want})

	got, err := svc.ListSales(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewSaleService(&fakeSaleRepository{findErr: errors.New("boom")}).ListSales(context.Background())
	assert.Error(t, err)
}
