package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type SaleItemRequest struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	ReferenceNo   string            `json:"reference_no"`
}

func (req *CreateSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Items,
			validation.Required.Error("no items in sale"),
			validation.By(validateSaleItems)),
		validation.Field(&req.PaymentMethod, validation.Length(0, 30)),
		validation.Field(&req.ReferenceNo, validation.Length(0, 50)),
	)
}

func validateSaleItems(value interface{}) error {
	items, ok := value.([]SaleItemRequest)
	if !ok {
		return fmt.Errorf("invalid sale items")
	}

	for i, item := range items {
		if item.ID < 1 {
			return fmt.Errorf("item %v: missing product id", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %v: quantity must be positive", i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %v: price must not be negative", i)
		}
	}

	return nil
}
