package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine is one entry of an incoming sale request: what was sold, how many,
// and at which unit price.
type SaleLine struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// Sale is the header of a recorded checkout. Total is denormalized at creation
// time and never recomputed from the items afterwards.
type Sale struct {
	ID            uint            `json:"id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	ReferenceNo   *string         `json:"reference_no"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []SaleItem      `json:"items,omitempty"`
}

// SaleItem is immutable once created; a sale and its items are written as one
// unit. ProductName and ProductPrice carry the referenced product's current
// catalog values on reads, not the values at the time of the sale.
type SaleItem struct {
	ID           uint            `json:"id"`
	SaleID       uint            `json:"sale_id"`
	ProductID    uint            `json:"product_id"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ProductName  string          `json:"name,omitempty"`
	ProductPrice decimal.Decimal `json:"price,omitempty"`
}

// SaleSummary is one row of the sales listing, with the summed item quantity.
type SaleSummary struct {
	ID            uint            `json:"id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	ReferenceNo   *string         `json:"reference_no"`
	CreatedAt     time.Time       `json:"created_at"`
	TotalItems    int             `json:"total_items"`
}
