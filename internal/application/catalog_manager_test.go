package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.February, 25, 9, 0, 0, 0, time.UTC)

func newManager(t *testing.T) (*application.CatalogManager, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	catalog := domain.NewCatalog(domain.WithClock(func() time.Time { return fixedNow }))
	return application.NewCatalogManager(catalog, log), hook
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateProduct_AssignsSequentialIDs(t *testing.T) {
	mgr, _ := newManager(t)

	id1, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)
	id2, err := mgr.CreateProduct("Container", 5, price("5000"), domain.ProductTypeCargo)
	require.NoError(t, err)

	assert.Equal(t, "1", id1)
	assert.Equal(t, "2", id2)

	p, ok := mgr.Catalog().Get("2")
	require.True(t, ok)
	assert.Equal(t, "Container", p.Name)
	assert.Equal(t, domain.ProductTypeCargo, p.Type)
	assert.Equal(t, 25, mgr.Catalog().TotalStock())
}

func TestCreateProduct_DuplicateNameIgnoresCase(t *testing.T) {
	mgr, hook := newManager(t)
	_, err := mgr.CreateProduct("laptop", 3, price("900"), domain.ProductTypeGood)
	require.NoError(t, err)

	_, err = mgr.CreateProduct("Laptop", 5, price("100.0"), domain.ProductTypeGood)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateName))
	assert.Equal(t, "Item already exists: Laptop", err.Error())
	assert.Equal(t, 1, mgr.Catalog().Len())
	assert.Equal(t, 3, mgr.Catalog().TotalStock())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestCreateProduct_FailureDoesNotAdvanceCounter(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	_, err = mgr.CreateProduct("LAPTOP", 1, price("1"), domain.ProductTypeGood)
	require.Error(t, err)
	_, err = mgr.CreateProduct("Broken", -1, price("1"), domain.ProductTypeGood)
	require.Error(t, err)

	id, err := mgr.CreateProduct("Tablet", 15, price("300"), domain.ProductTypeGood)
	require.NoError(t, err)
	assert.Equal(t, "2", id)
}

func TestCreateProduct_Validation(t *testing.T) {
	mgr, _ := newManager(t)

	tests := []struct {
		name  string
		pname string
		qty   int
		price decimal.Decimal
		typ   domain.ProductType
	}{
		{"empty name", "  ", 1, price("1"), domain.ProductTypeGood},
		{"negative qty", "Crate", -1, price("1"), domain.ProductTypeGood},
		{"negative price", "Crate", 1, price("-0.01"), domain.ProductTypeGood},
		{"unknown type", "Crate", 1, price("1"), domain.ProductType("widget")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mgr.CreateProduct(tt.pname, tt.qty, tt.price, tt.typ)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
	assert.Equal(t, 0, mgr.Catalog().Len())
}

func TestCreateProduct_LogsCreation(t *testing.T) {
	mgr, hook := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "product created", entry.Message)
	assert.Equal(t, "1", entry.Data["product_id"])
}

func TestRestockExisting_OverwritesQuantity(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)
	_, err = mgr.CreateProduct("Tablet", 15, price("300"), domain.ProductTypeGood)
	require.NoError(t, err)

	p, err := mgr.RestockExisting("1", 30)
	require.NoError(t, err)

	assert.Equal(t, 30, p.Quantity)
	assert.Equal(t, 45, mgr.Catalog().TotalStock())
}

func TestRestockExisting_UnknownID(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.RestockExisting("9", 30)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRestockExisting_NegativeQuantity(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	_, err = mgr.RestockExisting("1", -4)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, 20, mgr.Catalog().TotalStock())
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	newPrice := price("1299.5")
	res, err := mgr.UpdateProduct("1", application.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Laptop", res.Product.Name)
	assert.Equal(t, 20, res.Product.Quantity)
	assert.Equal(t, domain.ProductTypeGood, res.Product.Type)
	assert.True(t, newPrice.Equal(res.Product.Price))
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "Updated Product ID: 1, Quantity: -1, New Price: 1299.50.", res.Summary())
}

func TestUpdateProduct_ModeMapsToType(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	res, err := mgr.UpdateProduct("1", application.ProductUpdate{Mode: "SEA"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductTypeCargo, res.Product.Type)
	assert.Equal(t, 1, mgr.Catalog().CountByType(domain.ProductTypeCargo))

	res, err = mgr.UpdateProduct("1", application.ProductUpdate{Mode: "land"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductTypeGood, res.Product.Type)
}

func TestUpdateProduct_UnknownModeWarnsAndKeepsType(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	qty := 12
	res, err := mgr.UpdateProduct("1", application.ProductUpdate{Name: "Notebook", Quantity: &qty, Mode: "air"})
	require.NoError(t, err)

	assert.Equal(t, domain.ProductTypeGood, res.Product.Type)
	assert.Equal(t, "Notebook", res.Product.Name)
	assert.Equal(t, 12, res.Product.Quantity)
	assert.Equal(t, []string{"Warning: Unrecognized shipment mode. Type will not be set."}, res.Warnings)
	assert.Equal(t, "Updated Product ID: 1, Quantity: 12, New Name: Notebook.", res.Summary())
	assert.Equal(t, 12, mgr.Catalog().TotalStock())
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.UpdateProduct("5", application.ProductUpdate{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, "Product not found: 5", err.Error())
}

func TestUpdateProduct_InvalidQuantityChangesNothing(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.CreateProduct("Laptop", 20, price("1500"), domain.ProductTypeGood)
	require.NoError(t, err)

	neg := -2
	_, err = mgr.UpdateProduct("1", application.ProductUpdate{Name: "Renamed", Quantity: &neg})
	require.Error(t, err)

	p, _ := mgr.Catalog().Get("1")
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 20, p.Quantity)
}

func TestUpdateResult_SummaryAllFields(t *testing.T) {
	qty := 4
	p := price("10")
	res := application.UpdateResult{
		Product:  domain.Product{ID: "3"},
		NewName:  "Crate",
		NewPrice: &p,
		Quantity: &qty,
		NewType:  domain.ProductTypeCargo,
	}
	assert.Equal(t, "Updated Product ID: 3, Quantity: 4, New Name: Crate, New Price: 10.00, New Type: cargo.", res.Summary())
}
