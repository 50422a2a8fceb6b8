package domain_test

import (
	"testing"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseShipmentMode(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ShipmentMode
		ok   bool
	}{
		{"land", domain.ShipmentLand, true},
		{"SEA", domain.ShipmentSea, true},
		{"  Land ", domain.ShipmentLand, true},
		{"air", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := domain.ParseShipmentMode(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestShipmentMode_ProductType(t *testing.T) {
	assert.Equal(t, domain.ProductTypeGood, domain.ShipmentLand.ProductType())
	assert.Equal(t, domain.ProductTypeCargo, domain.ShipmentSea.ProductType())
}

func TestParseProductType(t *testing.T) {
	got, ok := domain.ParseProductType("Cargo")
	assert.True(t, ok)
	assert.Equal(t, domain.ProductTypeCargo, got)

	_, ok = domain.ParseProductType("widget")
	assert.False(t, ok)
}

func TestProductType_Label(t *testing.T) {
	assert.Equal(t, "Good", domain.ProductTypeGood.Label())
	assert.Equal(t, "Cargo", domain.ProductTypeCargo.Label())
	assert.Equal(t, "Unknown", domain.ProductType("x").Label())
}

func TestProductPatch_Validate(t *testing.T) {
	neg := -3
	negPrice := decimal.NewFromInt(-1)
	bogus := domain.ProductType("widget")

	assert.NoError(t, domain.ProductPatch{}.Validate())
	assert.Error(t, domain.ProductPatch{Quantity: &neg}.Validate())
	assert.Error(t, domain.ProductPatch{Price: &negPrice}.Validate())
	assert.Error(t, domain.ProductPatch{Type: &bogus}.Validate())
}

func TestProductPatch_IsEmpty(t *testing.T) {
	qty := 1
	assert.True(t, domain.ProductPatch{}.IsEmpty())
	assert.False(t, domain.ProductPatch{Quantity: &qty}.IsEmpty())
}
