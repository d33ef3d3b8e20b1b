package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/service"
)

type fakeSaleService struct {
	createCalls int
	createErr   error
	getErr      error
	sale        domain.Sale
	summaries   []domain.SaleSummary
}

func (f *fakeSaleService) CreateSale(_ context.Context, lines []domain.SaleLine, paymentMethod string, referenceNo *string) (domain.Sale, error) {
	f.createCalls++
	if f.createErr != nil {
		return domain.Sale{}, f.createErr
	}

	return domain.Sale{ID: 1}, nil
}

func (f *fakeSaleService) ListSales(_ context.Context) ([]domain.SaleSummary, error) {
	return f.summaries, nil
}

func (f *fakeSaleService) GetSale(_ context.Context, id uint) (domain.Sale, error) {
	if f.getErr != nil {
		return domain.Sale{}, f.getErr
	}

	return f.sale, nil
}

func setupSaleRouter(svc SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewSaleHandler(svc)
	router.POST("/api/sales", handler.HandleCreateSale)
	router.GET("/api/sales", handler.HandleListSales)
	router.GET("/api/sales/:id", handler.HandleGetSale)

	return router
}

func TestHandleCreateSale(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeSaleService
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "valid request",
			body:       `{"items":[{"id":1,"quantity":2,"price":3.50},{"id":2,"quantity":4,"price":1.25}],"payment_method":"Cash"}`,
			svc:        &fakeSaleService{},
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "empty items rejected before the service",
			body:       `{"items":[]}`,
			svc:        &fakeSaleService{},
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "missing items rejected before the service",
			body:       `{"payment_method":"Cash"}`,
			svc:        &fakeSaleService{},
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "invalid line item rejected before the service",
			body:       `{"items":[{"id":1,"quantity":0,"price":3.50}]}`,
			svc:        &fakeSaleService{},
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "insufficient stock maps to 400",
			body:       `{"items":[{"id":1,"quantity":100,"price":3.50}]}`,
			svc:        &fakeSaleService{createErr: service.ErrInsufficientStock},
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name:       "unknown product maps to 400",
			body:       `{"items":[{"id":999,"quantity":1,"price":3.50}]}`,
			svc:        &fakeSaleService{createErr: service.ErrProductNotFound},
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name:       "storage failure maps to 500",
			body:       `{"items":[{"id":1,"quantity":1,"price":3.50}]}`,
			svc:        &fakeSaleService{createErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSaleRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantCalls, tt.svc.createCalls)
		})
	}
}

func TestHandleGetSale(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeSaleService{sale: domain.Sale{
			ID:            5,
			Total:         decimal.RequireFromString("12.00"),
			PaymentMethod: "Cash",
		}}
		router := setupSaleRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/sales/5", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"payment_method":"Cash"`)
	})

	t.Run("not found", func(t *testing.T) {
		router := setupSaleRouter(&fakeSaleService{getErr: service.ErrSaleNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/sales/999999", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := setupSaleRouter(&fakeSaleService{})

		req := httptest.NewRequest(http.MethodGet, "/api/sales/abc", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleListSales(t *testing.T) {
	svc := &fakeSaleService{summaries: []domain.SaleSummary{
		{ID: 2, Total: decimal.RequireFromString("12.00"), PaymentMethod: "Cash", TotalItems: 6},
		{ID: 1, Total: decimal.RequireFromString("3.50"), PaymentMethod: "Card", TotalItems: 1},
	}}
	router := setupSaleRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_items":6`)
}
