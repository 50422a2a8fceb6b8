package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductType tags a product with the category derived from its shipment mode.
type ProductType string

const (
	ProductTypeGood  ProductType = "good"
	ProductTypeCargo ProductType = "cargo"
)

// ValidProductTypes enumerates all recognized product types.
var ValidProductTypes = []ProductType{ProductTypeGood, ProductTypeCargo}

// ParseProductType resolves a type name case-insensitively.
func ParseProductType(s string) (ProductType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ProductTypeGood):
		return ProductTypeGood, true
	case string(ProductTypeCargo):
		return ProductTypeCargo, true
	}
	return "", false
}

// Label returns the capitalized display name used in product listings.
func (t ProductType) Label() string {
	switch t {
	case ProductTypeGood:
		return "Good"
	case ProductTypeCargo:
		return "Cargo"
	default:
		return "Unknown"
	}
}

// ShipmentMode is the transport a product moves by. It decides the ProductType.
type ShipmentMode string

const (
	ShipmentLand ShipmentMode = "land"
	ShipmentSea  ShipmentMode = "sea"
)

// ParseShipmentMode resolves "land" or "sea" case-insensitively, ignoring
// surrounding whitespace.
func ParseShipmentMode(s string) (ShipmentMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ShipmentLand):
		return ShipmentLand, true
	case string(ShipmentSea):
		return ShipmentSea, true
	}
	return "", false
}

// ProductType maps land to good and sea to cargo.
func (m ShipmentMode) ProductType() ProductType {
	if m == ShipmentSea {
		return ProductTypeCargo
	}
	return ProductTypeGood
}

// Product is a single catalog entry. ID is fixed once assigned.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Type     ProductType     `json:"type"`
}

// ProductPatch describes a partial update. Nil fields are left unchanged.
type ProductPatch struct {
	Name     *string
	Price    *decimal.Decimal
	Quantity *int
	Type     *ProductType
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Quantity == nil && p.Type == nil
}

// Validate rejects negative quantities and prices and unknown types.
func (p ProductPatch) Validate() error {
	if p.Quantity != nil && *p.Quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "Quantity must not be negative."}
	}
	if p.Price != nil && p.Price.IsNegative() {
		return &ValidationError{Field: "price", Message: "Price must not be negative."}
	}
	if p.Type != nil {
		if _, ok := ParseProductType(string(*p.Type)); !ok {
			return &ValidationError{Field: "type", Message: "Unknown product type: " + string(*p.Type)}
		}
	}
	return nil
}
