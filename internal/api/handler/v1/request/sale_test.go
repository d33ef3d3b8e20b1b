package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateSaleRequest_Validate(t *testing.T) {
	item := func(id uint, qty int, price string) SaleItemRequest {
		return SaleItemRequest{
			ID:       id,
			Quantity: qty,
			Price:    decimal.RequireFromString(price),
		}
	}

	tests := []struct {
		name    string
		req     CreateSaleRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: CreateSaleRequest{
				Items:         []SaleItemRequest{item(1, 2, "3.50"), item(2, 4, "1.25")},
				PaymentMethod: "Cash",
			},
			wantErr: false,
		},
		{
			name:    "no items",
			req:     CreateSaleRequest{PaymentMethod: "Cash"},
			wantErr: true,
		},
		{
			name:    "empty items",
			req:     CreateSaleRequest{Items: []SaleItemRequest{}},
			wantErr: true,
		},
		{
			name: "missing product id",
			req: CreateSaleRequest{
				Items: []SaleItemRequest{item(0, 1, "3.50")},
			},
			wantErr: true,
		},
		{
			name: "zero quantity",
			req: CreateSaleRequest{
				Items: []SaleItemRequest{item(1, 0, "3.50")},
			},
			wantErr: true,
		},
		{
			name: "negative price",
			req: CreateSaleRequest{
				Items: []SaleItemRequest{item(1, 1, "-0.01")},
			},
			wantErr: true,
		},
		{
			name: "zero price allowed",
			req: CreateSaleRequest{
				Items: []SaleItemRequest{item(1, 1, "0.00")},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
