package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/repository"
)

type fakeProductRepository struct {
	lastSaved domain.Product
	products  []domain.Product
	err       error
}

func (f *fakeProductRepository) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	f.lastSaved = product
	product.ID = 1

	return product, f.err
}

func (f *fakeProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepository) FindByID(_ context.Context, id uint) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}

	return domain.Product{ID: id}, nil
}

func (f *fakeProductRepository) Update(_ context.Context, product domain.Product) (domain.Product, error) {
	f.lastSaved = product

	return product, f.err
}

func (f *fakeProductRepository) Delete(_ context.Context, id uint) error {
	return f.err
}

func TestProductService_CreateProduct_DefaultCategory(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:  "Americano",
		Price: price("3.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", repo.lastSaved.Category)

	_, err = svc.CreateProduct(context.Background(), domain.Product{
		Name:     "Americano",
		Price:    price("3.50"),
		Category: "Drinks",
	})

	require.NoError(t, err)
	assert.Equal(t, "Drinks", repo.lastSaved.Category)
}

func TestProductService_UpdateProduct_DefaultCategory(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewProductService(repo)

	_, err := svc.UpdateProduct(context.Background(), domain.Product{
		ID:    3,
		Name:  "Americano",
		Price: price("4.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", repo.lastSaved.Category)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{err: repository.ErrProductNotFound})

	err := svc.DeleteProduct(context.Background(), 42)

	assert.ErrorIs(t, err, ErrProductNotFound)
}
