package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errInvalidPrice = errors.New("price must be a non-negative decimal number")

// ProductRequest is shared by create and update. It binds from JSON or from a
// multipart form; the image file itself is read separately from the form.
type ProductRequest struct {
	Name     string `json:"name" form:"name"`
	Price    string `json:"price" form:"price"`
	Stock    int    `json:"stock" form:"stock"`
	Category string `json:"category" form:"category"`
	Image    string `json:"image" form:"-"` // existing filename reference; a multipart file wins over it
}

func (req *ProductRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Required),
		validation.Field(&req.Stock, validation.Min(0)),
		validation.Field(&req.Category, validation.Length(0, 50)),
	)
	if err != nil {
		return err
	}

	if _, err := req.ParsePrice(); err != nil {
		return errInvalidPrice
	}

	return nil
}

func (req *ProductRequest) ParsePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return decimal.Zero, err
	}
	if price.IsNegative() {
		return decimal.Zero, errInvalidPrice
	}

	return price, nil
}
