package application

import (
	"strconv"
	"strings"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/shopspring/decimal"
)

// NewProduct is the parsed add-product form.
type NewProduct struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Type     domain.ProductType
}

// ParseQuantity parses a non-negative base-10 integer.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &domain.ValidationError{Field: "quantity", Message: "Error: Invalid quantity entered. Please enter a numeric value."}
	}
	return n, nil
}

// ParsePrice parses a non-negative decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, &domain.ValidationError{Field: "price", Message: "Error: Invalid price entered. Please enter a numeric value."}
	}
	return d, nil
}

// ParseNewProduct validates the raw add-product fields. Numbers are checked
// before the shipment mode.
func ParseNewProduct(name, qty, price, mode string) (NewProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewProduct{}, &domain.ValidationError{Field: "name", Message: "Enter a product name."}
	}

	q, qErr := ParseQuantity(qty)
	p, pErr := ParsePrice(price)
	if qErr != nil || pErr != nil {
		return NewProduct{}, &domain.ValidationError{Field: "quantity", Message: "Invalid quantity or price."}
	}

	m, ok := domain.ParseShipmentMode(mode)
	if !ok {
		return NewProduct{}, &domain.ValidationError{Field: "mode", Message: "Enter a valid shipment mode (land/sea)"}
	}

	return NewProduct{Name: name, Quantity: q, Price: p, Type: m.ProductType()}, nil
}
